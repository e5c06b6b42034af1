// Package render draws a game view as plain text.
//
// The board is laid out on a fixed cell width per lane:
//
//	 Aoi Ren   3
//	   |---*   |
//	   |   |---*
//	   1   2 [3]
//
// A '*' replaces the lane glyph where the selected token sits at the end of
// each row; the footer brackets the winning slot.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/amidakuji/ladder"
	"github.com/katalvlaran/amidakuji/roster"
	"github.com/katalvlaran/amidakuji/trace"
)

const (
	cellWidth = 4
	laneGlyph = '|'
	rungGlyph = '-'
	tokenMark = '*'
)

// Board writes the ladder with labels above and result slots below. path may
// be nil; when set it must belong to l.
func Board(w io.Writer, l *ladder.Ladder, r roster.Roster, path trace.Path) error {
	var b strings.Builder
	lanes := l.Lanes()

	for i := 0; i < lanes; i++ {
		b.WriteString(fitLabel(r.Label(i)))
	}
	b.WriteByte('\n')

	for row := 0; row < l.Rows(); row++ {
		token := -1
		if lane, ok := path.LaneAt(row + 1); ok {
			token = lane
		}
		b.WriteString(boardRow(l, row, token))
		b.WriteByte('\n')
	}

	winner := -1
	if len(path) > 0 {
		winner = path.End()
	}
	for i := 0; i < lanes; i++ {
		slot := fmt.Sprintf("%d", i+1)
		if i == winner {
			slot = "[" + slot + "]"
		}
		b.WriteString(lipgloss.PlaceHorizontal(cellWidth, lipgloss.Right, slot))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Path writes one "lane row" pair per line.
func Path(w io.Writer, path trace.Path) error {
	var b strings.Builder
	for _, pt := range path {
		fmt.Fprintf(&b, "%g %g\n", pt.Lane, pt.Row)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Outcomes writes one "label -> slot" line per start lane.
func Outcomes(w io.Writer, r roster.Roster, outcomes []int) error {
	var b strings.Builder
	for start, end := range outcomes {
		fmt.Fprintf(&b, "%s -> %d\n", r.Label(start), end+1)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// boardRow draws one rung row. token is the lane to mark, or -1.
func boardRow(l *ladder.Ladder, row, token int) string {
	lanes := l.Lanes()
	line := []byte(strings.Repeat(" ", lanes*cellWidth))
	for lane := 0; lane < lanes; lane++ {
		at := lane*cellWidth + cellWidth - 1
		if lane == token {
			line[at] = tokenMark
		} else {
			line[at] = laneGlyph
		}
		if l.HasRung(row, lane) {
			for k := 1; k < cellWidth; k++ {
				line[at+k] = rungGlyph
			}
		}
	}
	return strings.TrimRight(string(line), " ")
}

// fitLabel right-aligns s in a lane cell of cellWidth terminal columns.
// Labels are cut to cellWidth-1 columns so neighbours stay separated; a wide
// rune that would cross that limit is dropped whole.
func fitLabel(s string) string {
	var b strings.Builder
	width := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if width+w > cellWidth-1 {
			break
		}
		b.WriteRune(r)
		width += w
	}
	return lipgloss.PlaceHorizontal(cellWidth, lipgloss.Right, b.String())
}
