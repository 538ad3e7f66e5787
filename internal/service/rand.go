package service

import "math/rand/v2"

// Rand supplies the randomness for damage rolls and title draws. Tests
// inject a fixed sequence; production uses the process-wide PRNG.
type Rand interface {
	Float64() float64
}

type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }

// NewRand returns the production randomness source.
func NewRand() Rand { return systemRand{} }
