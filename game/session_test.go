package game_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/katalvlaran/amidakuji/game"
	"github.com/katalvlaran/amidakuji/internal/ctxlog"
	"github.com/katalvlaran/amidakuji/ladder"
	"github.com/katalvlaran/amidakuji/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSession builds a seeded session whose logs go to a buffer.
func newSession(t *testing.T, mutate func(*game.Settings)) (*game.Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	settings := game.DefaultSettings()
	settings.Seed = 7
	if mutate != nil {
		mutate(&settings)
	}
	s, err := game.New(ctx, settings)
	require.NoError(t, err)
	return s, &buf
}

func TestNew_Defaults(t *testing.T) {
	s, logs := newSession(t, nil)

	assert.Equal(t, 5, s.Lanes())
	l := s.Ladder()
	require.NotNil(t, l)
	assert.Equal(t, 5, l.Lanes())
	assert.Equal(t, 15, l.Rows())
	assert.Equal(t, uint64(0), s.Generation())
	assert.NotEqual(t, uuid.Nil, s.GridID())
	assert.Equal(t, int64(7), s.Seed())

	_, ok := s.Selection()
	assert.False(t, ok)
	_, ok = s.Result()
	assert.False(t, ok)

	assert.Contains(t, logs.String(), "Session started.")
	assert.Contains(t, logs.String(), "Ladder installed.")
}

func TestNew_TimeSeed(t *testing.T) {
	settings := game.DefaultSettings()
	s, err := game.New(context.Background(), settings)
	require.NoError(t, err)
	assert.NotZero(t, s.Seed())
}

func TestNew_InvalidSettings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*game.Settings)
		err    error
	}{
		{"LanesBelowWindow", func(s *game.Settings) { s.Lanes = 1 }, ladder.ErrInvalidLaneCount},
		{"LanesAboveWindow", func(s *game.Settings) { s.Lanes = 11 }, ladder.ErrInvalidLaneCount},
		{"BadWindow", func(s *game.Settings) { s.MinLanes, s.MaxLanes = 6, 4 }, game.ErrInvalidSettings},
		{"WindowBelowTwo", func(s *game.Settings) { s.MinLanes = 1 }, game.ErrInvalidSettings},
		{"NegativeRows", func(s *game.Settings) { s.Rows = -1 }, game.ErrInvalidSettings},
		{"NoRowPolicy", func(s *game.Settings) { s.RowsPerLane = 0 }, game.ErrInvalidSettings},
		{"Probability", func(s *game.Settings) { s.Probability = 1.2 }, game.ErrInvalidSettings},
		{"ProbabilityNaN", func(s *game.Settings) { s.Probability = math.NaN() }, game.ErrInvalidSettings},
		{"TooManyNames", func(s *game.Settings) { s.Lanes = 2; s.Participants = []string{"a", "b", "c"} }, game.ErrInvalidSettings},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := game.DefaultSettings()
			tc.mutate(&settings)
			_, err := game.New(context.Background(), settings)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_Participants(t *testing.T) {
	s, _ := newSession(t, func(st *game.Settings) {
		st.Participants = []string{"Aoi", "", "Ren"}
	})
	assert.Equal(t, []string{"Aoi", "2", "Ren", "4", "5"}, s.Roster().Labels())
}

func TestSelect_MatchesTrace(t *testing.T) {
	s, _ := newSession(t, nil)
	for start := 0; start < s.Lanes(); start++ {
		sel, err := s.Select(start)
		require.NoError(t, err)

		want, err := trace.Trace(s.Ladder(), start)
		require.NoError(t, err)
		if diff := cmp.Diff(want, sel.Path); diff != "" {
			t.Fatalf("Select(%d) path mismatch (-want +got):\n%s", start, diff)
		}
		assert.Equal(t, s.GridID(), sel.GridID)
		assert.Equal(t, start, sel.Start)

		res, ok := s.Result()
		require.True(t, ok)
		assert.Equal(t, want.End(), res)
		assert.Equal(t, s.Outcomes()[start], res)
	}
}

func TestSelect_OutOfRange(t *testing.T) {
	s, _ := newSession(t, nil)
	_, err := s.Select(5)
	assert.ErrorIs(t, err, trace.ErrOutOfRange)
	_, err = s.Select(-1)
	assert.ErrorIs(t, err, trace.ErrOutOfRange)
	_, ok := s.Selection()
	assert.False(t, ok, "failed selection must not be recorded")
}

// TestSelect_OwnsPath: mutating a returned path never reaches the session.
func TestSelect_OwnsPath(t *testing.T) {
	s, _ := newSession(t, nil)
	sel, err := s.Select(2)
	require.NoError(t, err)
	sel.Path[0].Lane = 99

	stored, ok := s.Selection()
	require.True(t, ok)
	assert.Equal(t, 2.0, stored.Path[0].Lane)

	stored.Path[0].Lane = 42
	again, _ := s.Selection()
	assert.Equal(t, 2.0, again.Path[0].Lane)
}

// TestRegenerate_InvalidatesSelection covers the discard-not-patch rule.
func TestRegenerate_InvalidatesSelection(t *testing.T) {
	s, _ := newSession(t, func(st *game.Settings) { st.Participants = []string{"Aoi"} })
	oldID := s.GridID()
	sel, err := s.Select(0)
	require.NoError(t, err)
	assert.False(t, s.Stale(sel))

	require.NoError(t, s.Regenerate())
	assert.NotEqual(t, oldID, s.GridID())
	assert.Equal(t, uint64(1), s.Generation())
	assert.True(t, s.Stale(sel))
	_, ok := s.Selection()
	assert.False(t, ok)
	assert.Equal(t, "Aoi", s.Label(0), "regenerate keeps names")
	assert.Equal(t, 5, s.Ladder().Lanes())
}

func TestSetLanes(t *testing.T) {
	s, _ := newSession(t, func(st *game.Settings) { st.Participants = []string{"Aoi", "Ren"} })
	sel, err := s.Select(1)
	require.NoError(t, err)

	require.NoError(t, s.SetLanes(8))
	assert.Equal(t, 8, s.Lanes())
	assert.Equal(t, 8, s.Ladder().Lanes())
	assert.Equal(t, 24, s.Ladder().Rows())
	assert.Equal(t, 8, s.Roster().Len())
	assert.Equal(t, "1", s.Label(0), "lane change starts a new roster")
	assert.True(t, s.Stale(sel))
	_, ok := s.Selection()
	assert.False(t, ok)
}

func TestSetLanes_Rejects(t *testing.T) {
	s, _ := newSession(t, nil)
	before := s.GridID()
	for _, n := range []int{0, 1, 11} {
		assert.ErrorIs(t, s.SetLanes(n), ladder.ErrInvalidLaneCount, "n=%d", n)
	}
	assert.Equal(t, before, s.GridID(), "failed change must not touch the ladder")
	assert.Equal(t, 5, s.Lanes())
}

func TestFixedRows(t *testing.T) {
	s, _ := newSession(t, func(st *game.Settings) { st.Rows = 4 })
	assert.Equal(t, 4, s.Ladder().Rows())
	require.NoError(t, s.SetLanes(9))
	assert.Equal(t, 4, s.Ladder().Rows())
}

// TestReplay: two sessions with the same seed build identical ladders for
// every generation.
func TestReplay(t *testing.T) {
	a, _ := newSession(t, nil)
	b, _ := newSession(t, nil)
	for i := 0; i < 4; i++ {
		assert.True(t, a.Ladder().Equal(b.Ladder()), "generation %d", i)
		require.NoError(t, a.Regenerate())
		require.NoError(t, b.Regenerate())
	}
}

func TestRename(t *testing.T) {
	s, _ := newSession(t, nil)
	before := s.Roster()
	require.NoError(t, s.Rename(3, "Mio"))
	assert.Equal(t, "Mio", s.Label(3))
	assert.Equal(t, "4", before.Label(3), "earlier roster values are unaffected")

	err := s.Rename(5, "x")
	assert.Error(t, err)
}

func TestView(t *testing.T) {
	ids := []uuid.UUID{uuid.MustParse("00000000-0000-0000-0000-000000000001")}
	settings := game.DefaultSettings()
	settings.Seed = 3
	s, err := game.New(context.Background(), settings, game.WithIDFunc(func() uuid.UUID { return ids[0] }))
	require.NoError(t, err)

	v := s.View()
	assert.Equal(t, ids[0], v.GridID)
	assert.Nil(t, v.Selection)
	assert.Same(t, s.Ladder(), v.Ladder)

	_, err = s.Select(4)
	require.NoError(t, err)
	v = s.View()
	require.NotNil(t, v.Selection)
	assert.Equal(t, 4, v.Selection.Start)

	s.ClearSelection()
	assert.Nil(t, s.View().Selection)
}

func TestStale_FixedIDs(t *testing.T) {
	fixed := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	settings := game.DefaultSettings()
	settings.Seed = 9
	s, err := game.New(context.Background(), settings, game.WithIDFunc(func() uuid.UUID { return fixed }))
	require.NoError(t, err)

	sel, err := s.Select(1)
	require.NoError(t, err)
	assert.False(t, s.Stale(sel))

	require.NoError(t, s.Regenerate())
	assert.Equal(t, fixed, s.GridID())
	assert.True(t, s.Stale(sel), "same ID, newer generation")

	sel, err = s.Select(1)
	require.NoError(t, err)
	require.NoError(t, s.SetLanes(4))
	assert.True(t, s.Stale(sel))
}

// TestConcurrentUse hammers the session from several goroutines; run with
// -race to check locking.
func TestConcurrentUse(t *testing.T) {
	s, _ := newSession(t, nil)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				switch (w + i) % 4 {
				case 0:
					_ = s.Regenerate()
				case 1:
					_, _ = s.Select(i % 5)
				case 2:
					_ = s.View()
				default:
					_ = s.Outcomes()
				}
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 5, s.Ladder().Lanes())
}
