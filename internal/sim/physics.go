package sim

import (
	"math"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
)

// stopThreshold is the speed below which an axis snaps to rest.
const stopThreshold = 0.1

// Physics is the velocity model for anything steered by impulses.
type Physics struct {
	Limit        float64 // Maximum speed magnitude per axis
	Fading       float64 // Multiplier applied to the speed every tick
	Acceleration float64 // Speed change per tick of held impulse
}

// NewPhysics builds the ship velocity model from config.
func NewPhysics(cfg config.ShipConfig) Physics {
	return Physics{
		Limit:        cfg.MaxSpeed,
		Fading:       cfg.Fading,
		Acceleration: cfg.Acceleration,
	}
}

// UpdateVelocity returns the velocity after one tick of the given impulses.
// Axes are independent. Only the sign of an impulse matters.
func (p Physics) UpdateVelocity(rowV, colV float64, rowImpulse, colImpulse int) (float64, float64) {
	return p.axis(rowV, rowImpulse), p.axis(colV, colImpulse)
}

func (p Physics) axis(v float64, impulse int) float64 {
	limit := math.Abs(p.Limit)

	v *= p.Fading
	v += float64(core.Sign(impulse)) * p.Acceleration
	v = core.ClampF(v, -limit, limit)

	if math.Abs(v) < stopThreshold {
		return 0
	}
	return v
}
