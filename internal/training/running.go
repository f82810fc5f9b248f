package training

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running is a running session.
type Running struct {
	Base
}

// NewRunning returns a running session.
func NewRunning(action int, duration, weight float64) Running {
	return Running{Base{Action: action, Duration: duration, Weight: weight}}
}

func (r Running) TypeName() string { return "Running" }

func (r Running) Distance() float64 {
	return distance(r.Action, LenStep)
}

func (r Running) MeanSpeed() float64 {
	return meanSpeed(r.Distance(), r.Duration)
}

// SpentCalories returns (18 * speed - 20) * weight / 1000 * minutes.
func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.Weight / MInKm * (r.Duration * MinInH)
}
