package dto

import "github.com/campusbuild/schedule-builder-api/internal/models"

// TermResponse describes the term the catalog currently serves.
type TermResponse struct {
	Term   string `json:"term"`
	Label  string `json:"label"`
	Season string `json:"season"`
	Year   int    `json:"year"`
}

// CourseListResponse lists the selectable courses of a term.
type CourseListResponse struct {
	Term    string                `json:"term"`
	Courses []models.CourseOption `json:"courses"`
}

// InstructorListResponse lists the instructor names of a term.
type InstructorListResponse struct {
	Term        string   `json:"term"`
	Instructors []string `json:"instructors"`
}

// RefreshRequest optionally pins a refresh to an explicit term slug instead of
// the current one.
type RefreshRequest struct {
	Term string `json:"term" validate:"omitempty"`
}
