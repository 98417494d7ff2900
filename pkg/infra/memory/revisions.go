package memory

import (
	"sync"

	"github.com/m-mizutani/herald/pkg/domain/model"
)

// RevisionStore keeps the revision each build checked out, keyed by build
// identity. It stands in for the revision action a CI runner attaches to a
// build: recorded at checkout, read again at completion.
type RevisionStore struct {
	mu   sync.RWMutex
	revs map[string]model.Revision
}

// NewRevisionStore creates an empty revision store.
func NewRevisionStore() *RevisionStore {
	return &RevisionStore{revs: make(map[string]model.Revision)}
}

// Record associates the revision with the build, replacing any earlier one.
func (s *RevisionStore) Record(build *model.Build, rev model.Revision) {
	if rev == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revs[build.Identity()] = rev
}

// Revision returns the recorded revision for the build, or nil.
func (s *RevisionStore) Revision(build *model.Build) model.Revision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revs[build.Identity()]
}
