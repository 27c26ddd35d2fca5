package fs

import (
	"context"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	Collation     string `json:"collation"`
	WatcherActive bool   `json:"watcher_active"`
	Streets       int    `json:"streets"`
	Notes         int    `json:"notes"`
	StreetNotes   int    `json:"street_notes"`
	Sectors       int    `json:"sectors"`
	Assignments   int    `json:"assignments"`
}

// State implements introspection.Introspectable. Counts reflect the current
// on-disk document; a load failure reports zeroes rather than failing.
func (s *Store) State() any {
	state := StoreState{
		Path:      s.Path,
		Collation: s.config.Collation,
	}
	if state.Collation == "" {
		state.Collation = DefaultCollation
	}

	s.mu.RLock()
	state.WatcherActive = s.watcherActive
	s.mu.RUnlock()

	if doc, err := s.Load(context.Background()); err == nil {
		state.Streets = len(doc.Streets)
		state.Notes = len(doc.Notes)
		state.StreetNotes = len(doc.StreetNotes)
		state.Sectors = len(doc.Sectors)
		state.Assignments = len(doc.StreetSectors)
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "json-file-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
