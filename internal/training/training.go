// Package training computes distance, mean speed and spent calories for
// running, sports walking and swimming sessions and renders a summary.
package training

const (
	LenStep = 0.65 // metres covered by one step
	MInKm   = 1000 // metres in a kilometre
	MinInH  = 60   // minutes in an hour
)

// Training is the capability set shared by every workout variant.
//
// There is no base implementation of SpentCalories: a type without its own
// calorie formula does not satisfy Training.
type Training interface {
	TypeName() string
	Hours() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64
}

// Base holds the sensor readings common to all variants.
type Base struct {
	Action   int     // steps or strokes
	Duration float64 // hours
	Weight   float64 // kg
}

// Hours returns the workout duration in hours.
func (b Base) Hours() float64 {
	return b.Duration
}

// distance is the default distance formula, in km.
func distance(action int, lenStep float64) float64 {
	return float64(action) * lenStep / MInKm
}

// meanSpeed is the default mean speed formula, in km/h.
func meanSpeed(distance, duration float64) float64 {
	return distance / duration
}

// ShowTrainingInfo builds the summary record for t.
func ShowTrainingInfo(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.TypeName(),
		Duration:     t.Hours(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
