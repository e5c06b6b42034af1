package ladder

import "fmt"

// FromRows builds a Ladder over lanes lanes from a fixed layout.
// It deep-copies rows so later edits to the input cannot leak in.
// Returns ErrInvalidLaneCount if lanes < MinLanes and ErrNonRectangular if any
// row does not have exactly lanes-1 cells. Zero rows is valid.
// Complexity: O(R×L) time and memory.
func FromRows(lanes int, rows [][]bool) (*Ladder, error) {
	if lanes < MinLanes {
		return nil, fmt.Errorf("%s: lanes=%d < min=%d: %w",
			methodFromRows, lanes, MinLanes, ErrInvalidLaneCount)
	}
	cols := lanes - 1
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				methodFromRows, r, len(row), cols, ErrNonRectangular)
		}
		cells[r] = make([]bool, cols)
		copy(cells[r], row)
	}

	return &Ladder{lanes: lanes, cells: cells}, nil
}

// Lanes returns the number of vertical lanes L.
func (l *Ladder) Lanes() int { return l.lanes }

// Rows returns the number of rung rows R.
func (l *Ladder) Rows() int { return len(l.cells) }

// Columns returns the number of rung columns, L-1.
func (l *Ladder) Columns() int { return l.lanes - 1 }

// InBounds reports whether (r, c) addresses a cell of the ladder.
// Complexity: O(1).
func (l *Ladder) InBounds(r, c int) bool {
	return r >= 0 && r < len(l.cells) && c >= 0 && c < l.lanes-1
}

// HasRung reports whether a rung joins lane c and lane c+1 at row r.
// Cells outside the ladder never hold a rung.
// Complexity: O(1).
func (l *Ladder) HasRung(r, c int) bool {
	if !l.InBounds(r, c) {
		return false
	}
	return l.cells[r][c]
}

// Row returns a copy of row r, or nil if r is out of range.
func (l *Ladder) Row(r int) []bool {
	if r < 0 || r >= len(l.cells) {
		return nil
	}
	out := make([]bool, len(l.cells[r]))
	copy(out, l.cells[r])
	return out
}

// Cells returns a deep copy of the whole layout, indexed [row][column].
func (l *Ladder) Cells() [][]bool {
	out := make([][]bool, len(l.cells))
	for r := range l.cells {
		out[r] = l.Row(r)
	}
	return out
}

// RungCount returns the number of rungs on the ladder.
func (l *Ladder) RungCount() int {
	n := 0
	for _, row := range l.cells {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// HasAdjacentRungs reports whether any row holds rungs on two neighbouring
// columns, the layout in which a lane could move either way.
func (l *Ladder) HasAdjacentRungs() bool {
	for _, row := range l.cells {
		for c := 1; c < len(row); c++ {
			if row[c-1] && row[c] {
				return true
			}
		}
	}
	return false
}

// Equal reports whether two ladders have the same dimensions and rungs.
func (l *Ladder) Equal(o *Ladder) bool {
	if l == nil || o == nil {
		return l == o
	}
	if l.lanes != o.lanes || len(l.cells) != len(o.cells) {
		return false
	}
	for r := range l.cells {
		for c := range l.cells[r] {
			if l.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}
