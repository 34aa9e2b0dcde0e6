// Package die holds the state of a single six-sided die and the mapping
// from a face value to the image resource that shows it.
package die

import "math/rand/v2"

const (
	// Faces is the number of sides on the die.
	Faces = 6
	// InitialValue is the face shown when a session starts.
	InitialValue = 1
)

// Source produces random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewSource returns a deterministic PCG source for a non-zero seed,
// or the process-wide generator when seed is 0.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return globalSource{}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// State is the current face value of the die.
type State struct {
	value int
}

// New returns the state a session starts with.
func New() State {
	return State{value: InitialValue}
}

// Value returns the current face value, always in 1..6.
func (s State) Value() int {
	return s.value
}

// Roll returns a new state with a value drawn uniformly from 1..6.
// The previous value has no influence on the draw.
func (s State) Roll(src Source) State {
	return State{value: src.IntN(Faces) + 1}
}

// Face returns the resource key and label for the current value.
func (s State) Face() Face {
	return FaceFor(s.value)
}
