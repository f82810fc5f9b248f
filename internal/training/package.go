package training

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrUnknownTrainingType is returned for a type code outside the registry.
	ErrUnknownTrainingType = errors.New("unrecognized training type")
	// ErrArityMismatch is returned when the data length does not match the variant.
	ErrArityMismatch = errors.New("wrong number of data fields")
	// ErrInvalidField is returned when a data value cannot be used by the variant.
	ErrInvalidField = errors.New("invalid data field")
	// ErrNonFiniteResult is returned when valid inputs overflow a derived metric.
	ErrNonFiniteResult = errors.New("derived metric is not finite")
)

// UnknownTypeError carries the rejected type code.
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTrainingType, e.Code)
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownTrainingType }

// ArityError reports a data slice of the wrong length.
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s for %s: want %d, got %d", ErrArityMismatch, e.Code, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArityMismatch }

// FieldError reports a single unusable data value.
type FieldError struct {
	Code   string
	Field  string
	Value  float64
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s for %s: %g %s", ErrInvalidField, e.Field, e.Code, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidField }

// ResultError reports a distance, speed or calorie value that overflowed.
type ResultError struct {
	Code   string
	Metric string
	Value  float64
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s: %s for %s is %g", ErrNonFiniteResult, e.Metric, e.Code, e.Value)
}

func (e *ResultError) Unwrap() error { return ErrNonFiniteResult }

// field describes one positional data value.
type field struct {
	name     string
	integer  bool
	positive bool // strictly greater than zero
}

var (
	fieldAction     = field{name: "action", integer: true}
	fieldDuration   = field{name: "duration", positive: true}
	fieldWeight     = field{name: "weight"}
	fieldHeight     = field{name: "height", integer: true, positive: true}
	fieldLengthPool = field{name: "length_pool", integer: true}
	fieldCountPool  = field{name: "count_pool", integer: true}
)

type constructor struct {
	name   string
	fields []field
	build  func(data []float64) Training
}

var registry = map[string]constructor{
	"SWM": {
		name:   "Swimming",
		fields: []field{fieldAction, fieldDuration, fieldWeight, fieldLengthPool, fieldCountPool},
		build: func(d []float64) Training {
			return NewSwimming(int(d[0]), d[1], d[2], int(d[3]), int(d[4]))
		},
	},
	"RUN": {
		name:   "Running",
		fields: []field{fieldAction, fieldDuration, fieldWeight},
		build: func(d []float64) Training {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	"WLK": {
		name:   "SportsWalking",
		fields: []field{fieldAction, fieldDuration, fieldWeight, fieldHeight},
		build: func(d []float64) Training {
			return NewSportsWalking(int(d[0]), d[1], d[2], int(d[3]))
		},
	},
}

// ReadPackage builds the training selected by workoutType from positional
// sensor data.
func ReadPackage(workoutType string, data []float64) (Training, error) {
	c, ok := registry[workoutType]
	if !ok {
		return nil, &UnknownTypeError{Code: workoutType}
	}

	if len(data) != len(c.fields) {
		return nil, &ArityError{Code: workoutType, Want: len(c.fields), Got: len(data)}
	}

	for i, f := range c.fields {
		if reason := f.check(data[i]); reason != "" {
			return nil, &FieldError{Code: workoutType, Field: f.name, Value: data[i], Reason: reason}
		}
	}

	t := c.build(data)
	if err := checkResults(workoutType, t); err != nil {
		return nil, err
	}
	return t, nil
}

// checkResults rejects trainings whose inputs are individually valid but
// whose derived metrics overflow, e.g. a vanishing duration.
func checkResults(code string, t Training) error {
	metrics := []struct {
		name  string
		value float64
	}{
		{"distance", t.Distance()},
		{"speed", t.MeanSpeed()},
		{"calories", t.SpentCalories()},
	}
	for _, m := range metrics {
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) {
			return &ResultError{Code: code, Metric: m.name, Value: m.value}
		}
	}
	return nil
}

// check returns why v is unusable for f, or "" when it is valid.
func (f field) check(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "is not finite"
	case f.positive && v <= 0:
		return "must be positive"
	case v < 0:
		return "must not be negative"
	case f.integer && (v != math.Trunc(v) || v > math.MaxInt32):
		return "must be a whole number"
	}
	return ""
}

// TypeInfo describes a registered training type.
type TypeInfo struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Types lists the registered training types ordered by code.
func Types() []TypeInfo {
	out := make([]TypeInfo, 0, len(registry))
	for code, c := range registry {
		names := make([]string, len(c.fields))
		for i, f := range c.fields {
			names[i] = f.name
		}
		out = append(out, TypeInfo{Code: code, Name: c.name, Fields: names})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
