package viz

import (
	"log/slog"

	"github.com/katalvlaran/lvlplan/core"
)

// InitEvent records one InitSearch emission.
type InitEvent struct {
	Start, Goal core.State
}

// ExpansionEvent records one node expansion's outcome.
type ExpansionEvent struct {
	Valid   []core.Edge
	Invalid []core.Collision
}

// Recorder is a core.Observer that appends every event to in-memory
// slices, in emission order.
type Recorder struct {
	Inits      []InitEvent
	Expansions []ExpansionEvent
	Paths      [][]core.Edge
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// InitSearch implements core.Observer.
func (r *Recorder) InitSearch(start, goal core.State) {
	r.Inits = append(r.Inits, InitEvent{Start: start, Goal: goal})
}

// Expansion implements core.Observer.
func (r *Recorder) Expansion(valid []core.Edge, invalid []core.Collision) {
	r.Expansions = append(r.Expansions, ExpansionEvent{Valid: valid, Invalid: invalid})
}

// FinalPath implements core.Observer.
func (r *Recorder) FinalPath(edges []core.Edge) {
	r.Paths = append(r.Paths, edges)
}

// Clear drops every recorded event.
func (r *Recorder) Clear() {
	r.Inits = nil
	r.Expansions = nil
	r.Paths = nil
}

// SlogSink is a core.Observer that summarizes search events onto a
// log/slog logger: init and final-path events at Info, per-expansion
// events at Debug (expansions are high-frequency).
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink wraps the given logger; nil selects slog.Default().
func NewSlogSink(l *slog.Logger) *SlogSink {
	if l == nil {
		l = slog.Default()
	}

	return &SlogSink{log: l}
}

// InitSearch implements core.Observer.
func (s *SlogSink) InitSearch(start, goal core.State) {
	s.log.Info("search initialized",
		"start_x", start[0], "start_y", start[1],
		"goal_x", goal[0], "goal_y", goal[1])
}

// Expansion implements core.Observer.
func (s *SlogSink) Expansion(valid []core.Edge, invalid []core.Collision) {
	s.log.Debug("node expanded", "valid", len(valid), "invalid", len(invalid))
}

// FinalPath implements core.Observer.
func (s *SlogSink) FinalPath(edges []core.Edge) {
	s.log.Info("path reconstructed", "edges", len(edges))
}
