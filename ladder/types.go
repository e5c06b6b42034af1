package ladder

// Domain constants. Values are part of the public contract.
const (
	// MinLanes is the smallest lane count Generate accepts. A single lane is
	// the degenerate board: rows exist but no rung can be placed.
	MinLanes = 1

	// DefaultProbability is the chance that any one cell holds a rung.
	DefaultProbability = 0.4

	// DefaultRowsPerLane is the density multiplier used by DefaultRows.
	DefaultRowsPerLane = 3

	minProbability = 0.0
	maxProbability = 1.0
)

// Method tags prefixed to wrapped errors.
const (
	methodGenerate = "Generate"
	methodFromRows = "FromRows"
)

// Ladder is an immutable rung layout over Lanes() vertical lanes and Rows()
// horizontal slots. cells[r][c] reports a rung between lane c and lane c+1.
// A Ladder is safe for concurrent readers; nothing mutates it after
// construction.
type Ladder struct {
	lanes int
	cells [][]bool
}

// DefaultRows returns the recommended row count for the given lane count
// (DefaultRowsPerLane rows per lane). Non-positive lane counts yield 0.
func DefaultRows(lanes int) int {
	if lanes <= 0 {
		return 0
	}
	return lanes * DefaultRowsPerLane
}
