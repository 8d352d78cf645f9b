package sim

import "github.com/vovakirdan/space-garbage/internal/core"

// HitPoint returns the first obstacle whose box contains (row, col).
// When several overlap the point, the earliest in slice order wins.
func HitPoint(obstacles []*Obstacle, row, col float64) *Obstacle {
	for _, o := range obstacles {
		if o.Box.Contains(row, col) {
			return o
		}
	}
	return nil
}

// HitBox returns the first obstacle whose box overlaps box.
func HitBox(obstacles []*Obstacle, box core.Box) *Obstacle {
	for _, o := range obstacles {
		if o.Box.Intersects(box) {
			return o
		}
	}
	return nil
}

// Impactor identifies what struck an obstacle.
type Impactor int

const (
	ImpactorProjectile Impactor = iota
	ImpactorShip
)

// String returns a human-readable name for the impactor.
func (i Impactor) String() string {
	switch i {
	case ImpactorProjectile:
		return "projectile"
	case ImpactorShip:
		return "ship"
	default:
		return "unknown"
	}
}

// CollisionEvent pairs an impacting entity with the obstacle it hit.
// It lives for the tick it was recorded in.
type CollisionEvent struct {
	Obstacle *Obstacle
	Impactor Impactor
	Row, Col float64 // Impact point
	Tick     uint64
}

// collisionSet holds the pending events of the current tick, at most one
// per obstacle, in the order they were recorded.
type collisionSet struct {
	events []CollisionEvent
	byID   map[int]struct{}
}

func newCollisionSet() *collisionSet {
	return &collisionSet{byID: make(map[int]struct{})}
}

// record adds ev unless its obstacle already has a pending event.
func (c *collisionSet) record(ev CollisionEvent) bool {
	if _, dup := c.byID[ev.Obstacle.ID]; dup {
		return false
	}
	c.byID[ev.Obstacle.ID] = struct{}{}
	c.events = append(c.events, ev)
	return true
}

// drain returns the pending events and empties the set.
func (c *collisionSet) drain() []CollisionEvent {
	events := c.events
	c.events = nil
	clear(c.byID)
	return events
}

func (c *collisionSet) len() int {
	return len(c.events)
}
