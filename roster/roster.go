// Package roster holds the participant labels shown above the lanes.
//
// A Roster is a value: With and Resize return a new Roster and leave the
// receiver untouched, so a roster handed to a renderer can never change
// underneath it. Labels are presentation only; tracing never reads them.
package roster

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange indicates an index outside [0, Len()).
var ErrOutOfRange = errors.New("roster: index out of range")

// Roster is an immutable ordered sequence of optional participant names.
type Roster struct {
	names []string
}

// New returns a roster of n empty names. Negative n yields an empty roster.
func New(n int) Roster {
	if n < 0 {
		n = 0
	}
	return Roster{names: make([]string, n)}
}

// FromNames returns a roster holding a copy of names.
func FromNames(names []string) Roster {
	out := make([]string, len(names))
	copy(out, names)
	return Roster{names: out}
}

// Len returns the number of slots.
func (r Roster) Len() int { return len(r.names) }

// Name returns the raw name at i, which may be empty.
func (r Roster) Name(i int) (string, error) {
	if i < 0 || i >= len(r.names) {
		return "", fmt.Errorf("Name: i=%d not in [0,%d): %w", i, len(r.names), ErrOutOfRange)
	}
	return r.names[i], nil
}

// Label returns the display label for slot i: the name when set, otherwise
// the 1-based slot number. Out-of-range slots also fall back to the number.
func (r Roster) Label(i int) string {
	if i >= 0 && i < len(r.names) && r.names[i] != "" {
		return r.names[i]
	}
	return strconv.Itoa(i + 1)
}

// Labels returns the display label of every slot.
func (r Roster) Labels() []string {
	out := make([]string, len(r.names))
	for i := range r.names {
		out[i] = r.Label(i)
	}
	return out
}

// Names returns a copy of the raw names.
func (r Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// With returns a new roster with slot i set to name.
func (r Roster) With(i int, name string) (Roster, error) {
	if i < 0 || i >= len(r.names) {
		return r, fmt.Errorf("With: i=%d not in [0,%d): %w", i, len(r.names), ErrOutOfRange)
	}
	out := r.Names()
	out[i] = name
	return Roster{names: out}, nil
}

// Resize returns a fresh roster of n empty names. Names are not carried
// over: a new lane count starts a new draw.
func (r Roster) Resize(n int) Roster {
	return New(n)
}
