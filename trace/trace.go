package trace

import (
	"fmt"

	"github.com/katalvlaran/amidakuji/ladder"
)

// Trace computes the path of a token dropped at lane start.
//
// Algorithm:
//  1. lane := start; emit (start, 0).
//  2. For r = 0..R−1:
//     if lane > 0 and a rung joins lane−1/lane at r: lane−−
//     else if lane < L−1 and a rung joins lane/lane+1 at r: lane++
//     emit (lane, r+0.5) then (lane, r+1).
//  3. Return the points; the last Lane is the result.
//
// The mid-row point is always emitted, repeating the lane when no rung was
// crossed, so every Path has exactly 1 + 2·R points.
//
// Returns ErrOutOfRange (wrapped) when start is not in [0, L).
// Complexity: O(R) time, O(1) extra space besides the output.
func Trace(l *ladder.Ladder, start int) (Path, error) {
	if l == nil {
		return nil, ErrNilLadder
	}
	lanes := l.Lanes()
	if start < 0 || start >= lanes {
		return nil, fmt.Errorf("Trace: start=%d not in [0,%d): %w", start, lanes, ErrOutOfRange)
	}

	rows := l.Rows()
	path := make(Path, 0, 1+2*rows)
	lane := start
	path = append(path, Point{Lane: float64(lane), Row: 0})
	for r := 0; r < rows; r++ {
		lane = step(l, r, lane)
		path = append(path,
			Point{Lane: float64(lane), Row: float64(r) + 0.5},
			Point{Lane: float64(lane), Row: float64(r + 1)},
		)
	}

	return path, nil
}

// Result returns only the final lane for start, skipping the path.
// Complexity: O(R) time, O(1) space.
func Result(l *ladder.Ladder, start int) (int, error) {
	if l == nil {
		return 0, ErrNilLadder
	}
	lanes := l.Lanes()
	if start < 0 || start >= lanes {
		return 0, fmt.Errorf("Result: start=%d not in [0,%d): %w", start, lanes, ErrOutOfRange)
	}
	lane := start
	for r := 0; r < l.Rows(); r++ {
		lane = step(l, r, lane)
	}
	return lane, nil
}

// Outcomes returns the result lane for every start lane: out[s] is where a
// token dropped at lane s ends up. A nil ladder yields nil.
// Complexity: O(L·R) time, O(L) space.
func Outcomes(l *ladder.Ladder) []int {
	if l == nil {
		return nil
	}
	out := make([]int, l.Lanes())
	for s := range out {
		lane := s
		for r := 0; r < l.Rows(); r++ {
			lane = step(l, r, lane)
		}
		out[s] = lane
	}
	return out
}

// IsPermutation reports whether outcomes maps lanes one-to-one onto
// 0..len(outcomes)-1.
func IsPermutation(outcomes []int) bool {
	seen := make([]bool, len(outcomes))
	for _, v := range outcomes {
		if v < 0 || v >= len(outcomes) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// step applies row r to lane. Left is checked first; HasRung is false
// outside the ladder, which keeps lane 0 from moving left and lane L−1
// from moving right.
func step(l *ladder.Ladder, r, lane int) int {
	switch {
	case lane > 0 && l.HasRung(r, lane-1):
		return lane - 1
	case lane < l.Lanes()-1 && l.HasRung(r, lane):
		return lane + 1
	default:
		return lane
	}
}
