package sim

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-garbage/internal/core"
)

func TestShipStartsCentered(t *testing.T) {
	rig := newRig(t, 20, 40, testConfig())
	s := rig.world.Ship()

	if s.Row != 9 || s.Col != 19 {
		t.Errorf("ship at (%v, %v), expected (9, 19)", s.Row, s.Col)
	}
	if s.State() != ShipFlying {
		t.Errorf("State() = %v, expected flying", s.State())
	}
}

func TestShipStaysPutWithoutInput(t *testing.T) {
	rig := newRig(t, 20, 40, testConfig())
	rig.world.Start()

	rig.ticks(100)

	s := rig.world.Ship()
	if s.Row != 9 || s.Col != 19 {
		t.Errorf("ship drifted to (%v, %v)", s.Row, s.Col)
	}
	if s.RowSpeed != 0 || s.ColSpeed != 0 {
		t.Errorf("ship speed = (%v, %v), expected rest", s.RowSpeed, s.ColSpeed)
	}
}

func TestShipClampedToBorder(t *testing.T) {
	tests := []struct {
		name    string
		action  core.Action
		wantRow float64
		wantCol float64
	}{
		{"up", core.ActionUp, 1, 19},
		{"down", core.ActionDown, 17, 19},
		{"left", core.ActionLeft, 9, 1},
		{"right", core.ActionRight, 9, 37},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rig := newRig(t, 20, 40, testConfig())
			rig.world.Start()

			for i := 0; i < 40; i++ {
				rig.input.Push(tc.action)
				rig.world.Tick()
			}

			s := rig.world.Ship()
			if s.Row != tc.wantRow || s.Col != tc.wantCol {
				t.Errorf("ship at (%v, %v), expected (%v, %v)", s.Row, s.Col, tc.wantRow, tc.wantCol)
			}
		})
	}
}

func TestShipAnimation(t *testing.T) {
	rig := newRig(t, 20, 40, testConfig())
	rig.world.Start()

	expected := []rune{'|', '|', '#', '#', '|', '|'}
	for i, want := range expected {
		rig.world.Tick()
		if got := rig.screen.Get(10, 19).Rune; got != want {
			t.Errorf("tick %d: nozzle %q, expected %q", i+1, got, want)
		}
	}
}

func TestShipExplodesOnContact(t *testing.T) {
	rig := newRig(t, 20, 40, testConfig())
	w := rig.world
	w.Start()
	o := w.Obstacles().Spawn(4, 18, testFrames().Garbage[0])

	explodedAt := 0
	for tick := 1; tick <= 10 && explodedAt == 0; tick++ {
		rig.input.Push(core.ActionUp)
		w.Tick()
		if w.GameOver() {
			explodedAt = tick
		}
	}
	if explodedAt != 3 {
		t.Fatalf("ship exploded at tick %d, expected 3", explodedAt)
	}

	s := w.Ship()
	if s.State() != ShipExploded {
		t.Fatalf("State() = %v, expected exploded", s.State())
	}
	if w.Obstacles().Contains(o) {
		t.Error("obstacle hit by the ship should be destroyed")
	}
	if w.Stats().Destroyed != 1 {
		t.Errorf("Destroyed = %d, expected 1", w.Stats().Destroyed)
	}

	row, col := s.Row, s.Col
	for i := 0; i < 10; i++ {
		rig.input.Push(core.ActionDown)
		w.Tick()
	}
	if s.Row != row || s.Col != col {
		t.Errorf("exploded ship moved from (%v, %v) to (%v, %v)", row, col, s.Row, s.Col)
	}
	if !strings.Contains(rig.screen.Row(10), "GAME OVER") {
		t.Errorf("banner missing, row 10 = %q", rig.screen.Row(10))
	}
}

func TestShipFiresEveryTick(t *testing.T) {
	rig := newRig(t, 20, 40, testConfig())
	rig.world.Start()

	for i := 0; i < 5; i++ {
		rig.input.Push(core.ActionFire)
		rig.input.Push(core.ActionFire)
		rig.world.Tick()
	}

	if got := rig.world.Stats().Shots; got != 5 {
		t.Errorf("Shots = %d, expected one per tick", got)
	}
}

func TestShipGunLockedBeforeUnlockYear(t *testing.T) {
	cfg := testConfig()
	cfg.Gun.UnlockYear = 2020
	rig := newRig(t, 20, 40, cfg)
	rig.world.Start()

	for i := 0; i < 5; i++ {
		rig.input.Push(core.ActionFire)
		rig.world.Tick()
	}

	if got := rig.world.Stats().Shots; got != 0 {
		t.Errorf("Shots = %d before the gun unlocks", got)
	}
}

func TestShipGunCooldown(t *testing.T) {
	cfg := testConfig()
	cfg.Gun.Cooldown = 3
	rig := newRig(t, 20, 40, cfg)
	rig.world.Start()

	var firedOn []int
	for tick := 1; tick <= 7; tick++ {
		before := rig.world.Stats().Shots
		rig.input.Push(core.ActionFire)
		rig.world.Tick()
		if rig.world.Stats().Shots > before {
			firedOn = append(firedOn, tick)
		}
	}

	expected := []int{1, 4, 7}
	if len(firedOn) != len(expected) {
		t.Fatalf("fired on ticks %v, expected %v", firedOn, expected)
	}
	for i := range expected {
		if firedOn[i] != expected[i] {
			t.Errorf("fired on ticks %v, expected %v", firedOn, expected)
			break
		}
	}
}

func TestShotLeavesShipFrameIntact(t *testing.T) {
	rig := newRig(t, 20, 40, testConfig())
	rig.world.Start()

	// The ship spans rows 9-10 and columns 19-20; the shot leaves from row 8.
	rig.input.Push(core.ActionFire)
	rig.world.Tick()

	for tick := 2; tick <= 5; tick++ {
		rig.world.Tick()
		if got := rig.screen.Get(9, 20).Rune; got != '\\' {
			t.Fatalf("tick %d: nose cell = %q, expected '\\\\'", tick, got)
		}
	}
	if got := rig.screen.Get(9, 19).Rune; got != '/' {
		t.Errorf("nose cell = %q, expected '/'", got)
	}
}

func TestShotPassingThroughShipIsNotDrawn(t *testing.T) {
	rig := newRig(t, 20, 40, testConfig())
	rig.world.Start()
	rig.ticks(1)

	FireWithSpeed(rig.world, 11, 20, -1, 0)

	rig.ticks(2) // shot at rows 10 then 9, both under the ship
	if got := rig.screen.Get(10, 20).Rune; got != '#' {
		t.Errorf("tail cell = %q, expected '#'", got)
	}
	if got := rig.screen.Get(9, 20).Rune; got != '\\' {
		t.Errorf("nose cell = %q, expected '\\\\'", got)
	}

	rig.ticks(1)
	if got := rig.screen.Get(8, 20).Rune; got != '|' {
		t.Errorf("shot above the ship = %q, expected '|'", got)
	}
	if got := rig.screen.Get(9, 20).Rune; got != '\\' {
		t.Errorf("nose cell after the shot cleared it = %q", got)
	}
}
