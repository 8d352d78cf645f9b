package sim

import (
	"testing"

	"github.com/vovakirdan/space-garbage/internal/core"
)

func TestHitPointFirstRegisteredWins(t *testing.T) {
	r := NewRegistry()
	frame := core.NewFrame("crate", "###\n###")
	first := r.Spawn(10, 10, frame)
	second := r.Spawn(10.5, 11, frame)

	if got := r.HitPoint(11, 12); got != first {
		t.Errorf("HitPoint() = %v, expected first obstacle", got)
	}
	if got := r.HitPoint(12.2, 13.5); got != second {
		t.Errorf("HitPoint() = %v, expected second obstacle", got)
	}
	if got := r.HitPoint(30, 30); got != nil {
		t.Errorf("HitPoint() = %v, expected nil", got)
	}
}

func TestHitBox(t *testing.T) {
	r := NewRegistry()
	o := r.Spawn(5, 5, core.NewFrame("crate", "###\n###"))

	tests := []struct {
		name string
		box  core.Box
		want *Obstacle
	}{
		{"overlap", core.NewBox(6, 7, 2, 2), o},
		{"touching edge", core.NewBox(7, 5, 2, 2), nil},
		{"far away", core.NewBox(20, 20, 2, 2), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.HitBox(tc.box); got != tc.want {
				t.Errorf("HitBox(%+v) = %v, expected %v", tc.box, got, tc.want)
			}
		})
	}
}

func TestCollisionSetOnePerObstacle(t *testing.T) {
	r := NewRegistry()
	frame := core.NewFrame("crate", "#")
	a := r.Spawn(0, 0, frame)
	b := r.Spawn(5, 5, frame)

	c := newCollisionSet()
	if !c.record(CollisionEvent{Obstacle: a, Impactor: ImpactorProjectile}) {
		t.Fatal("first event should be recorded")
	}
	if c.record(CollisionEvent{Obstacle: a, Impactor: ImpactorShip}) {
		t.Error("second event for the same obstacle should be rejected")
	}
	if !c.record(CollisionEvent{Obstacle: b, Impactor: ImpactorShip}) {
		t.Error("event for another obstacle should be recorded")
	}

	events := c.drain()
	if len(events) != 2 || events[0].Obstacle != a || events[1].Obstacle != b {
		t.Errorf("drain() = %+v, expected events for a then b", events)
	}
	if c.len() != 0 {
		t.Errorf("set should be empty after drain, has %d", c.len())
	}
	if !c.record(CollisionEvent{Obstacle: a}) {
		t.Error("obstacle should be recordable again after drain")
	}
}

func TestImpactorString(t *testing.T) {
	if ImpactorProjectile.String() != "projectile" || ImpactorShip.String() != "ship" {
		t.Errorf("unexpected impactor names: %s, %s", ImpactorProjectile, ImpactorShip)
	}
}
