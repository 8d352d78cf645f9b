package sim

import (
	"github.com/vovakirdan/space-garbage/internal/core"
)

// Obstacle is a piece of falling garbage.
type Obstacle struct {
	ID    int
	Box   core.Box
	Frame core.Frame

	owner *debrisTask // descent task that consumes collisions for this obstacle
}

// Registry holds the currently alive obstacles in spawn order.
type Registry struct {
	items  []*Obstacle
	nextID int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make([]*Obstacle, 0, 32)}
}

// Spawn creates an obstacle sized to frame at (row, col) and adds it.
func (r *Registry) Spawn(row, col float64, frame core.Frame) *Obstacle {
	h, w := frame.Size()
	r.nextID++
	o := &Obstacle{
		ID:    r.nextID,
		Box:   core.NewBox(row, col, float64(h), float64(w)),
		Frame: frame,
	}
	r.items = append(r.items, o)
	return o
}

// Remove deletes o and reports whether it was present.
func (r *Registry) Remove(o *Obstacle) bool {
	for i, it := range r.items {
		if it == o {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether o is alive.
func (r *Registry) Contains(o *Obstacle) bool {
	for _, it := range r.items {
		if it == o {
			return true
		}
	}
	return false
}

// All returns a snapshot of the alive obstacles in spawn order.
func (r *Registry) All() []*Obstacle {
	out := make([]*Obstacle, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of alive obstacles.
func (r *Registry) Len() int {
	return len(r.items)
}

// HitPoint returns the first obstacle containing (row, col), or nil.
func (r *Registry) HitPoint(row, col float64) *Obstacle {
	return HitPoint(r.items, row, col)
}

// HitBox returns the first obstacle overlapping box, or nil.
func (r *Registry) HitBox(box core.Box) *Obstacle {
	return HitBox(r.items, box)
}

// debrisTask moves one obstacle down the field.
type debrisTask struct {
	obstacle *Obstacle
	speed    float64
	drawn    bool
	done     bool
}

// Step erases the previous frame, descends and redraws. The obstacle leaves
// the registry once its top edge reaches the bottom of the field.
func (d *debrisTask) Step(w *World) Status {
	if d.done {
		return Done
	}

	o := d.obstacle
	d.erase(w)

	o.Box.Row += d.speed
	if o.Box.Row >= float64(w.rows) {
		w.obstacles.Remove(o)
		d.done = true
		w.logger.Debug("garbage left the field", "id", o.ID, "tick", w.tick)
		return Done
	}

	core.DrawFrame(w.surface, o.Box.Row, o.Box.Col, o.Frame, core.StyleNormal)
	d.drawn = true
	return Continuing
}

// consume resolves a collision against this task's obstacle.
func (d *debrisTask) consume(w *World, ev CollisionEvent) {
	if d.done {
		return
	}
	d.erase(w)
	d.done = true
	w.destroy(d.obstacle, ev)
}

func (d *debrisTask) erase(w *World) {
	if !d.drawn {
		return
	}
	o := d.obstacle
	core.EraseFrame(w.surface, o.Box.Row, o.Box.Col, o.Frame)
	d.drawn = false
}
