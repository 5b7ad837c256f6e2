package models

// CustomSlot is a user-defined day plus 24-hour time range to exclude.
type CustomSlot struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// SelectionCriteria carries one request's course selection and exclusion
// constraints. Never mutated after construction.
type SelectionCriteria struct {
	Courses             []string     `json:"courses"`
	ExcludedInstructors []string     `json:"excluded_instructors"`
	ExcludedTimeRanges  []string     `json:"excluded_time_ranges"`
	ExcludedDays        []string     `json:"excluded_days"`
	ExcludedCustomSlots []CustomSlot `json:"excluded_custom_slots"`
}
