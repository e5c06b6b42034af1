// SPDX-License-Identifier: MIT
// Package: amidakuji/ladder
//
// errors.go - sentinel errors for the ladder package.
//
// Callers branch with errors.Is; implementations attach method context with
// %w. Option constructors panic on meaningless input, Generate never does.

package ladder

import "errors"

// ErrInvalidLaneCount indicates a lane count below MinLanes.
var ErrInvalidLaneCount = errors.New("ladder: lane count out of range")

// ErrInvalidRowCount indicates a negative row count.
var ErrInvalidRowCount = errors.New("ladder: row count must be non-negative")

// ErrNeedRandSource indicates that stochastic sampling (0 < p < 1) was
// requested without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("ladder: rng is required")

// ErrNonRectangular indicates that a row passed to FromRows does not have
// exactly lanes-1 cells.
var ErrNonRectangular = errors.New("ladder: every row must have lanes-1 cells")
