package dto

import (
	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// CustomSlotInput is one excluded day/time block in a generation request.
// Times are 24-hour "HH:MM".
type CustomSlotInput struct {
	Day   string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// GenerateSchedulesRequest carries the course selection and exclusion
// constraints for one generation run.
type GenerateSchedulesRequest struct {
	Courses             []string          `json:"courses" validate:"required,min=1,dive,required"`
	ExcludedInstructors []string          `json:"excluded_instructors" validate:"omitempty,dive,required"`
	ExcludedTimeRanges  []string          `json:"excluded_time_ranges" validate:"omitempty,dive,required"`
	ExcludedDays        []string          `json:"excluded_days" validate:"omitempty,dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	ExcludedCustomSlots []CustomSlotInput `json:"excluded_custom_slots" validate:"omitempty,dive"`
	Page                int               `json:"page" validate:"omitempty,min=1"`
}

// ToCriteria converts the request into engine selection criteria.
func (r GenerateSchedulesRequest) ToCriteria() models.SelectionCriteria {
	slots := make([]models.CustomSlot, 0, len(r.ExcludedCustomSlots))
	for _, slot := range r.ExcludedCustomSlots {
		slots = append(slots, models.CustomSlot{Day: slot.Day, Start: slot.Start, End: slot.End})
	}
	return models.SelectionCriteria{
		Courses:             r.Courses,
		ExcludedInstructors: r.ExcludedInstructors,
		ExcludedTimeRanges:  r.ExcludedTimeRanges,
		ExcludedDays:        r.ExcludedDays,
		ExcludedCustomSlots: slots,
	}
}

// SchedulesResponse is one page of generated schedule patterns.
type SchedulesResponse struct {
	Term           string                      `json:"term"`
	Fingerprint    string                      `json:"fingerprint"`
	OnlineSections map[string][]models.Section `json:"online_sections,omitempty"`
	Groups         []models.PatternGroup       `json:"groups"`
	TotalValid     int                         `json:"total_valid"`
	TotalUnique    int                         `json:"total_unique"`
	Pagination     models.Pagination           `json:"pagination"`
}

// FingerprintResponse reports the cache key a request maps to and whether a
// generated result is already stored under it.
type FingerprintResponse struct {
	Term        string `json:"term"`
	Fingerprint string `json:"fingerprint"`
	Cached      bool   `json:"cached"`
}

// ExportScheduleRequest asks for a PDF rendering of one chosen schedule.
type ExportScheduleRequest struct {
	Term     string                   `json:"term" validate:"required"`
	Schedule []models.RenderedSection `json:"schedule" validate:"required,min=1,dive"`
}
