// SPDX-License-Identifier: MIT
// Package: amidakuji/ladder
//
// generate.go - random rung layout.
//
// Model:
//   - Each of the R×(L−1) cells holds a rung independently with probability p.
//   - Trial order is row-major: r asc, then c asc.
//   - With WithExclusiveRungs a cell right of a rung is skipped (no trial).
//
// Contract:
//   - lanes ≥ MinLanes (else ErrInvalidLaneCount).
//   - rows ≥ 0 (else ErrInvalidRowCount).
//   - rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(R×L) Bernoulli trials. Space: O(R×L) for the result.

package ladder

import "fmt"

// Generate samples a new Ladder with the given lane and row counts.
// lanes == 1 yields rows rows of zero columns.
func Generate(lanes, rows int, opts ...Option) (*Ladder, error) {
	if lanes < MinLanes {
		return nil, fmt.Errorf("%s: lanes=%d < min=%d: %w",
			methodGenerate, lanes, MinLanes, ErrInvalidLaneCount)
	}
	if rows < 0 {
		return nil, fmt.Errorf("%s: rows=%d: %w", methodGenerate, rows, ErrInvalidRowCount)
	}

	cfg := newGenConfig(opts...)
	p := cfg.probability
	rng := cfg.rng
	if rng == nil && p > minProbability && p < maxProbability {
		return nil, fmt.Errorf("%s: p=%.3f: %w", methodGenerate, p, ErrNeedRandSource)
	}

	cols := lanes - 1
	cells := make([][]bool, rows)
	var r, c int
	for r = 0; r < rows; r++ {
		row := make([]bool, cols)
		for c = 0; c < cols; c++ {
			if cfg.exclusive && c > 0 && row[c-1] {
				continue
			}
			switch {
			case rng == nil:
				// p is exactly 0 or 1 here.
				row[c] = p == maxProbability
			default:
				row[c] = rng.Float64() < p
			}
		}
		cells[r] = row
	}

	return &Ladder{lanes: lanes, cells: cells}, nil
}
