package training

const (
	SwimmingLenStep = 1.38 // metres covered by one stroke

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swimming session. LengthPool is in metres, CountPool is
// the number of pool lengths swum.
type Swimming struct {
	Base
	LengthPool int
	CountPool  int
}

// NewSwimming returns a swimming session.
func NewSwimming(action int, duration, weight float64, lengthPool, countPool int) Swimming {
	return Swimming{
		Base:       Base{Action: action, Duration: duration, Weight: weight},
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

func (s Swimming) TypeName() string { return "Swimming" }

func (s Swimming) Distance() float64 {
	return distance(s.Action, SwimmingLenStep)
}

// MeanSpeed is derived from the pool geometry, not from strokes.
func (s Swimming) MeanSpeed() float64 {
	return float64(s.LengthPool) * float64(s.CountPool) / MInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}
