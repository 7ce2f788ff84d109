package models

import (
	"fmt"
	"math"
)

const (
	MinWeight  = -5.0
	MaxWeight  = 5.0
	WeightStep = 0.5
)

// Weights is the user's slider configuration for the opening selector.
// The zero value is the default configuration.
type Weights struct {
	Effectiveness float64 `json:"effectiveness"`
	Aggressivity  float64 `json:"aggressivity"`
	Volatility    float64 `json:"volatility"`
	Popularity    float64 `json:"popularity"`
}

// IsZero reports whether every weight is exactly zero.
func (w Weights) IsZero() bool {
	return w.Effectiveness == 0 && w.Aggressivity == 0 && w.Volatility == 0 && w.Popularity == 0
}

// Validate checks that each weight lies in [MinWeight, MaxWeight] on a WeightStep grid.
func (w Weights) Validate() error {
	named := []struct {
		name  string
		value float64
	}{
		{"effectiveness", w.Effectiveness},
		{"aggressivity", w.Aggressivity},
		{"volatility", w.Volatility},
		{"popularity", w.Popularity},
	}
	for _, n := range named {
		if math.IsNaN(n.value) || n.value < MinWeight || n.value > MaxWeight {
			return fmt.Errorf("%s weight %v out of range [%v, %v]", n.name, n.value, MinWeight, MaxWeight)
		}
		if steps := n.value / WeightStep; steps != math.Trunc(steps) {
			return fmt.Errorf("%s weight %v is not a multiple of %v", n.name, n.value, WeightStep)
		}
	}
	return nil
}
