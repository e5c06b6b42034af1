// Package ladder generates and holds the rung layout of an amidakuji
// (ghost-leg) board.
//
// What:
//
//   - Ladder is an immutable R×(L−1) table of rungs over L vertical lanes.
//     Cell (r, c) set means a rung joins lane c and lane c+1 at row r.
//   - Generate samples every cell independently with probability p
//     (DefaultProbability = 0.4) using an injected, seedable *rand.Rand.
//   - FromRows builds a Ladder from a fixed layout (tests, replays).
//
// Determinism:
//
//   - Trials run in row-major order (r asc, c asc), so a fixed seed and fixed
//     options always produce the same Ladder.
//   - DeriveRand yields independent reproducible streams, one per regeneration.
//
// Options:
//
//   - WithSeed / WithRand: RNG source. Required whenever 0 < p < 1.
//   - WithProbability: per-cell rung probability in [0,1].
//   - WithExclusiveRungs: never place rungs on adjacent columns of one row.
//
// Errors:
//
//   - ErrInvalidLaneCount: lanes < MinLanes.
//   - ErrInvalidRowCount: rows < 0.
//   - ErrNeedRandSource: stochastic sampling requested without an RNG.
//   - ErrNonRectangular: FromRows input does not match lanes-1 columns.
//
// Complexity:
//
//   - Generate: O(R×L) time and memory.
//   - HasRung, Lanes, Rows: O(1).
package ladder
