package trace

import "errors"

// ErrOutOfRange indicates a start lane outside [0, L). The tracer never
// clamps: a bad start lane is a caller bug and is surfaced as such.
var ErrOutOfRange = errors.New("trace: start lane out of range")

// ErrNilLadder indicates a nil *ladder.Ladder was passed in.
var ErrNilLadder = errors.New("trace: ladder is nil")

// Point is one coordinate the token visits. Lane is the lane index; Row is
// measured in rows from the top, with r+0.5 marking the mid-row crossing
// point and r+1 the end of row r.
type Point struct {
	Lane float64
	Row  float64
}

// Path is the ordered sequence of points visited from top to bottom.
// Each Path returned by Trace is freshly allocated and owned by the caller.
type Path []Point
