package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/amidakuji/internal/ctxlog"
	"github.com/katalvlaran/amidakuji/ladder"
	"github.com/katalvlaran/amidakuji/roster"
	"github.com/katalvlaran/amidakuji/trace"
)

// Selection is a traced start lane on a specific ladder.
type Selection struct {
	// GridID identifies the ladder the path was traced on.
	GridID uuid.UUID
	// Generation is the session generation of that ladder.
	Generation uint64
	Start      int
	Path       trace.Path
}

// Result returns the lane the selection ends on.
func (s Selection) Result() int { return s.Path.End() }

// View is a consistent snapshot of a session for rendering.
type View struct {
	GridID     uuid.UUID
	Generation uint64
	Ladder     *ladder.Ladder
	Roster     roster.Roster
	// Selection is nil when no lane is selected.
	Selection *Selection
}

// Option customizes a Session.
type Option func(*Session)

// WithIDFunc overrides grid ID generation (uuid.New by default).
// Panics on nil.
func WithIDFunc(fn func() uuid.UUID) Option {
	if fn == nil {
		panic("game: WithIDFunc(nil)")
	}
	return func(s *Session) {
		s.newID = fn
	}
}

// Session holds the state of one draw.
type Session struct {
	mu       sync.RWMutex
	settings Settings
	seed     int64
	logger   *slog.Logger
	newID    func() uuid.UUID

	lanes      int
	grid       *ladder.Ladder
	gridID     uuid.UUID
	generation uint64
	roster     roster.Roster
	selection  *Selection
}

// New validates settings and builds the first ladder. The logger is taken
// from ctx (see ctxlog).
func New(ctx context.Context, settings Settings, opts ...Option) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		settings: settings,
		seed:     settings.Seed,
		logger:   ctxlog.FromContext(ctx),
		newID:    uuid.New,
		lanes:    settings.Lanes,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}

	r := roster.New(settings.Lanes)
	for i, name := range settings.Participants {
		var err error
		if r, err = r.With(i, name); err != nil {
			return nil, err
		}
	}
	s.roster = r

	grid, err := s.build(settings.Lanes, 0)
	if err != nil {
		return nil, err
	}
	s.install(grid, 0)
	s.logger.Info("Session started.", "seed", s.seed, "lanes", s.lanes, "rows", grid.Rows())
	return s, nil
}

// build samples generation gen for the given lane count. Callers hold mu
// or own s exclusively.
func (s *Session) build(lanes int, gen uint64) (*ladder.Ladder, error) {
	opts := []ladder.Option{
		ladder.WithRand(ladder.DeriveRand(s.seed, gen)),
		ladder.WithProbability(s.settings.Probability),
	}
	if s.settings.ExclusiveRungs {
		opts = append(opts, ladder.WithExclusiveRungs())
	}
	grid, err := ladder.Generate(lanes, s.settings.RowsFor(lanes), opts...)
	if err != nil {
		return nil, fmt.Errorf("game: generation %d: %w", gen, err)
	}
	return grid, nil
}

// install swaps in a new ladder and drops the selection. Callers hold mu.
func (s *Session) install(grid *ladder.Ladder, gen uint64) {
	s.grid = grid
	s.gridID = s.newID()
	s.generation = gen
	s.selection = nil
	s.logger.Debug("Ladder installed.",
		"grid_id", s.gridID, "generation", gen,
		"lanes", grid.Lanes(), "rows", grid.Rows(), "rungs", grid.RungCount())
}

// Seed returns the resolved seed; New with the same seed replays the session.
func (s *Session) Seed() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seed
}

// Settings returns the settings the session was created with.
func (s *Session) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.settings
	out.Participants = append([]string(nil), s.settings.Participants...)
	return out
}

// Lanes returns the current lane count.
func (s *Session) Lanes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lanes
}

// Ladder returns the current ladder. Ladders are immutable.
func (s *Session) Ladder() *ladder.Ladder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid
}

// GridID returns the identifier of the current ladder.
func (s *Session) GridID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gridID
}

// Generation returns how many times the ladder has been replaced.
func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// SetLanes changes the lane count. It rebuilds the ladder, resets the
// roster to n empty names and clears the selection. On error nothing
// changes.
func (s *Session) SetLanes(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settings.checkLanes(n); err != nil {
		return err
	}
	gen := s.generation + 1
	grid, err := s.build(n, gen)
	if err != nil {
		return err
	}
	s.lanes = n
	s.roster = s.roster.Resize(n)
	s.install(grid, gen)
	return nil
}

// Regenerate replaces the ladder with a fresh one of the same lane count.
// The roster is kept; the selection is cleared.
func (s *Session) Regenerate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen := s.generation + 1
	grid, err := s.build(s.lanes, gen)
	if err != nil {
		return err
	}
	s.install(grid, gen)
	return nil
}

// Select traces start on the current ladder and records it as the
// selection. The returned Selection owns its Path.
func (s *Session) Select(start int) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := trace.Trace(s.grid, start)
	if err != nil {
		return Selection{}, err
	}
	sel := Selection{
		GridID:     s.gridID,
		Generation: s.generation,
		Start:      start,
		Path:       path,
	}
	stored := sel
	stored.Path = path.Clone()
	s.selection = &stored
	s.logger.Debug("Lane selected.", "grid_id", s.gridID, "start", start, "result", path.End())
	return sel, nil
}

// ClearSelection drops the current selection, if any.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = nil
}

// Selection returns a copy of the current selection.
func (s *Session) Selection() (Selection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selection == nil {
		return Selection{}, false
	}
	out := *s.selection
	out.Path = s.selection.Path.Clone()
	return out, true
}

// Result returns the lane the current selection ends on.
func (s *Session) Result() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selection == nil {
		return 0, false
	}
	return s.selection.Result(), true
}

// Stale reports whether sel was traced on a ladder that has since been
// replaced. Both the grid ID and the generation must match, so a custom
// ID function that repeats IDs still detects replacement.
func (s *Session) Stale(sel Selection) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sel.GridID != s.gridID || sel.Generation != s.generation
}

// Outcomes returns the result lane of every start lane on the current ladder.
func (s *Session) Outcomes() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return trace.Outcomes(s.grid)
}

// Roster returns the current participant roster.
func (s *Session) Roster() roster.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster
}

// Label returns the display label of lane i.
func (s *Session) Label(i int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster.Label(i)
}

// Rename sets the participant name of lane i.
func (s *Session) Rename(i int, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.roster.With(i, name)
	if err != nil {
		return err
	}
	s.roster = r
	return nil
}

// View returns a consistent snapshot for rendering.
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := View{
		GridID:     s.gridID,
		Generation: s.generation,
		Ladder:     s.grid,
		Roster:     s.roster,
	}
	if s.selection != nil {
		sel := *s.selection
		sel.Path = s.selection.Path.Clone()
		v.Selection = &sel
	}
	return v
}
