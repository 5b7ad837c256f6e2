package models

import "time"

// RefreshStatus tracks the lifecycle of a catalog refresh job.
type RefreshStatus string

const (
	RefreshPending  RefreshStatus = "PENDING"
	RefreshRunning  RefreshStatus = "RUNNING"
	RefreshComplete RefreshStatus = "COMPLETE"
	RefreshFailed   RefreshStatus = "FAILED"
)

// RefreshJob records progress of one catalog scrape across subject pages.
type RefreshJob struct {
	ID             string        `json:"id"`
	Term           string        `json:"term"`
	Status         RefreshStatus `json:"status"`
	SubjectsTotal  int           `json:"subjects_total"`
	SubjectsDone   int           `json:"subjects_done"`
	SectionsStored int           `json:"sections_stored"`
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     *time.Time    `json:"finished_at,omitempty"`
	LastError      string        `json:"last_error,omitempty"`
}
