package repository

import (
	"sync"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// RefreshJobStore tracks catalog refresh jobs in memory. Jobs are transient
// operational state, so they do not survive a restart.
type RefreshJobStore struct {
	mu   sync.RWMutex
	jobs map[string]models.RefreshJob
}

// NewRefreshJobStore constructs an empty job store.
func NewRefreshJobStore() *RefreshJobStore {
	return &RefreshJobStore{jobs: make(map[string]models.RefreshJob)}
}

// Put stores or replaces a job snapshot.
func (s *RefreshJobStore) Put(job models.RefreshJob) {
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()
}

// Get returns a copy of the job with the given ID.
func (s *RefreshJobStore) Get(id string) (models.RefreshJob, bool) {
	s.mu.RLock()
	job, ok := s.jobs[id]
	s.mu.RUnlock()
	return job, ok
}

// Update applies a mutation to the stored job under the lock.
func (s *RefreshJobStore) Update(id string, apply func(*models.RefreshJob)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return false
	}
	apply(&job)
	s.jobs[id] = job
	return true
}

// Active reports whether any job for the term is pending or running. Used to
// reject a second concurrent refresh of the same term.
func (s *RefreshJobStore) Active(term string) (models.RefreshJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, job := range s.jobs {
		if job.Term == term && (job.Status == models.RefreshPending || job.Status == models.RefreshRunning) {
			return job, true
		}
	}
	return models.RefreshJob{}, false
}
