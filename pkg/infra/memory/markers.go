package memory

import "sync"

// MarkerStore is an in-memory record of builds that already produced an
// in-progress notification. The CI runner delivers a single build's
// lifecycle events sequentially, so one mutex covers the cross-build access.
type MarkerStore struct {
	mu     sync.Mutex
	marked map[string]struct{}
}

// NewMarkerStore creates an empty marker store.
func NewMarkerStore() *MarkerStore {
	return &MarkerStore{marked: make(map[string]struct{})}
}

// TryMark records the marker for the build and reports whether it was newly
// set. Markers are never removed.
func (s *MarkerStore) TryMark(buildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.marked[buildID]; ok {
		return false
	}
	s.marked[buildID] = struct{}{}
	return true
}
