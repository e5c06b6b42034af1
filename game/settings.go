package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/amidakuji/ladder"
)

// Classic board defaults: 5 lanes out of 2..10, three rows per
// lane and a 40% rung chance.
const (
	DefaultLanes    = 5
	DefaultMinLanes = 2
	DefaultMaxLanes = 10
)

// ErrInvalidSettings indicates inconsistent Settings (window, rows,
// probability or participant count).
var ErrInvalidSettings = errors.New("game: invalid settings")

// Settings configures a Session.
type Settings struct {
	// Lanes is the initial lane count, within [MinLanes, MaxLanes].
	Lanes int
	// MinLanes and MaxLanes bound every lane-count change.
	MinLanes int
	MaxLanes int
	// Rows fixes the row count. 0 means RowsPerLane × lanes.
	Rows int
	// RowsPerLane is the density multiplier used when Rows is 0.
	RowsPerLane int
	// Probability is the per-cell rung chance in [0,1].
	Probability float64
	// Seed drives every generation. 0 picks a time-based seed at New.
	Seed int64
	// ExclusiveRungs forbids adjacent rungs in a row.
	ExclusiveRungs bool
	// Participants are the initial names, at most Lanes of them.
	Participants []string
}

// DefaultSettings returns the classic board settings with a
// time-based seed.
func DefaultSettings() Settings {
	return Settings{
		Lanes:       DefaultLanes,
		MinLanes:    DefaultMinLanes,
		MaxLanes:    DefaultMaxLanes,
		RowsPerLane: ladder.DefaultRowsPerLane,
		Probability: ladder.DefaultProbability,
	}
}

// Validate reports the first inconsistency in s.
func (s Settings) Validate() error {
	if s.MinLanes < 2 || s.MaxLanes < s.MinLanes {
		return fmt.Errorf("lane window [%d,%d]: %w", s.MinLanes, s.MaxLanes, ErrInvalidSettings)
	}
	if err := s.checkLanes(s.Lanes); err != nil {
		return err
	}
	if s.Rows < 0 || s.RowsPerLane < 0 || (s.Rows == 0 && s.RowsPerLane == 0) {
		return fmt.Errorf("rows=%d rows_per_lane=%d: %w", s.Rows, s.RowsPerLane, ErrInvalidSettings)
	}
	if math.IsNaN(s.Probability) || s.Probability < 0 || s.Probability > 1 {
		return fmt.Errorf("probability=%g: %w", s.Probability, ErrInvalidSettings)
	}
	if len(s.Participants) > s.Lanes {
		return fmt.Errorf("%d participants for %d lanes: %w", len(s.Participants), s.Lanes, ErrInvalidSettings)
	}
	return nil
}

// RowsFor returns the row count used for a board of the given lane count.
func (s Settings) RowsFor(lanes int) int {
	if s.Rows > 0 {
		return s.Rows
	}
	return s.RowsPerLane * lanes
}

func (s Settings) checkLanes(n int) error {
	if n < s.MinLanes || n > s.MaxLanes {
		return fmt.Errorf("lanes=%d not in [%d,%d]: %w", n, s.MinLanes, s.MaxLanes, ladder.ErrInvalidLaneCount)
	}
	return nil
}
