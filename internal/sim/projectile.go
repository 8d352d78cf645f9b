package sim

import "github.com/vovakirdan/space-garbage/internal/core"

// Shot glyphs by direction of travel.
const (
	glyphVertical = '|'
	glyphLateral  = '-'
)

// Projectile is a plasma shot in flight.
type Projectile struct {
	Row, Col           float64
	RowSpeed, ColSpeed float64
	Glyph              rune
}

// projectileTask moves a shot until it leaves the field or hits garbage.
type projectileTask struct {
	p        *Projectile
	drawn    bool
	drawnRow int
	drawnCol int
}

// Fire launches a shot from (row, col) with the configured gun speed.
func Fire(w *World, row, col float64) *Projectile {
	return FireWithSpeed(w, row, col, w.cfg.Gun.RowSpeed, w.cfg.Gun.ColSpeed)
}

// FireWithSpeed launches a shot from (row, col) moving by the given vector
// every tick. It is first stepped on the tick after the call.
func FireWithSpeed(w *World, row, col, rowSpeed, colSpeed float64) *Projectile {
	glyph := rune(glyphVertical)
	if colSpeed != 0 {
		glyph = glyphLateral
	}
	p := &Projectile{
		Row:      row,
		Col:      col,
		RowSpeed: rowSpeed,
		ColSpeed: colSpeed,
		Glyph:    glyph,
	}
	w.shots++
	w.Launch(&projectileTask{p: p})
	return p
}

func (t *projectileTask) Step(w *World) Status {
	p := t.p
	if t.drawn {
		if !w.ship.covers(t.drawnRow, t.drawnCol) {
			w.surface.Erase(t.drawnRow, t.drawnCol)
		}
		t.drawn = false
	}

	p.Row += p.RowSpeed
	p.Col += p.ColSpeed
	if !w.inField(p.Row, p.Col) {
		return Done
	}

	if o := w.obstacles.HitPoint(p.Row, p.Col); o != nil {
		w.RecordCollision(CollisionEvent{
			Obstacle: o,
			Impactor: ImpactorProjectile,
			Row:      p.Row,
			Col:      p.Col,
		})
		return Done
	}

	row, col := core.CellOf(p.Row), core.CellOf(p.Col)
	if w.ship.covers(row, col) {
		return Continuing
	}
	t.drawnRow, t.drawnCol = row, col
	w.surface.Draw(row, col, p.Glyph, core.StyleBold)
	t.drawn = true
	return Continuing
}
