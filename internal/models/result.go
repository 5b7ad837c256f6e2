package models

// RenderedSection is the display projection of a Section inside a generated
// schedule, optionally annotated with an instructor rating.
type RenderedSection struct {
	CourseCode  string            `json:"course_code"`
	CourseTitle string            `json:"course_title"`
	Units       string            `json:"units"`
	SectionID   string            `json:"section_id"`
	MeetingType MeetingType       `json:"meeting_type"`
	Days        []string          `json:"days"`
	Times       string            `json:"times"`
	Location    string            `json:"location"`
	Instructor  string            `json:"instructor"`
	Rating      *InstructorRating `json:"rating,omitempty"`
}

// SignatureSlot is one (day, time window) occurrence in a weekly pattern. A
// day meeting twice appears twice with different times.
type SignatureSlot struct {
	Day   string `json:"day"`
	Times string `json:"times"`
}

// PatternGroup buckets distinct schedules that share a weekly day/time layout.
type PatternGroup struct {
	Signature []SignatureSlot     `json:"signature"`
	Schedules [][]RenderedSection `json:"schedules"`
}

// SchedulesResult is the finished output of one generation request. It is the
// unit stored in the result cache; a cache hit must round-trip it unchanged.
type SchedulesResult struct {
	Term           string               `json:"term"`
	OnlineSections map[string][]Section `json:"online_sections,omitempty"`
	Groups         []PatternGroup       `json:"groups"`
	TotalValid     int                  `json:"total_valid"`
	TotalUnique    int                  `json:"total_unique"`
}

// InstructorRating is a third-party rating annotation, cached separately from
// schedule results.
type InstructorRating struct {
	Instructor string  `json:"instructor"`
	Score      float64 `json:"score"`
	Count      int     `json:"count"`
	Source     string  `json:"source,omitempty"`
}
