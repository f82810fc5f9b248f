package training

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a sports walking session. Height is in cm.
type SportsWalking struct {
	Base
	Height int
}

// NewSportsWalking returns a sports walking session.
func NewSportsWalking(action int, duration, weight float64, height int) SportsWalking {
	return SportsWalking{
		Base:   Base{Action: action, Duration: duration, Weight: weight},
		Height: height,
	}
}

func (w SportsWalking) TypeName() string { return "SportsWalking" }

func (w SportsWalking) Distance() float64 {
	return distance(w.Action, LenStep)
}

func (w SportsWalking) MeanSpeed() float64 {
	return meanSpeed(w.Distance(), w.Duration)
}

// SpentCalories returns
// (0.035 * weight + floor(speed^2 / height) * 0.029 * weight) * minutes.
//
// The speed/height term is floor-divided, not divided.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.Weight +
		floorDiv(speed*speed, float64(w.Height))*walkingSpeedHeightMultiplier*w.Weight) *
		(w.Duration * MinInH)
}

// floorDiv divides x by y rounding toward negative infinity. The quotient is
// derived from fmod so that it agrees with x - mod(x, y) being an exact
// multiple of y, matching floor division on IEEE doubles. y must be non-zero.
func floorDiv(x, y float64) float64 {
	mod := math.Mod(x, y)
	div := (x - mod) / y
	if mod != 0 && (y < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, x/y)
	}
	fl := math.Floor(div)
	if div-fl > 0.5 {
		fl++
	}
	return fl
}
