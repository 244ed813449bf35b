// Package physics implements the craft's velocity easing.
package physics

import (
	"math"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// Easing is a bounded first-order filter: pressing a direction nudges the
// speed one step towards it, releasing decays it one step towards zero.
type Easing struct {
	Limit float64 // Maximum absolute speed
	Step  float64 // Change per tick
}

// UpdateSpeed returns the speed for the next tick given the pressed
// direction (-1, 0 or 1). The result is always within [-Limit, Limit] and
// decay never overshoots zero.
func (e Easing) UpdateSpeed(speed float64, direction int) float64 {
	switch {
	case direction > 0:
		speed += e.Step
	case direction < 0:
		speed -= e.Step
	case speed > 0:
		speed = math.Max(0, speed-e.Step)
	case speed < 0:
		speed = math.Min(0, speed+e.Step)
	}
	return core.ClampF(speed, -e.Limit, e.Limit)
}

// UpdateVelocity applies UpdateSpeed to both axes.
func (e Easing) UpdateVelocity(rowSpeed, colSpeed float64, c core.Controls) (float64, float64) {
	return e.UpdateSpeed(rowSpeed, c.RowDir), e.UpdateSpeed(colSpeed, c.ColDir)
}
