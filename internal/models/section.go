package models

// MeetingType classifies the pedagogical role of a section.
type MeetingType string

const (
	MeetingLecture      MeetingType = "LECTURE"
	MeetingLab          MeetingType = "LAB"
	MeetingSeminar      MeetingType = "SEMINAR"
	MeetingActivity     MeetingType = "ACTIVITY"
	MeetingSupplemental MeetingType = "SUPPLEMENTAL"
	MeetingOnline       MeetingType = "ONLINE"
	MeetingUnspecified  MeetingType = ""
)

// Availability reflects the seat indicator published next to a section.
type Availability string

const (
	SeatsAvailable  Availability = "SEATS_AVAILABLE"
	ReserveCapacity Availability = "RESERVE_CAPACITY"
	NoSeats         Availability = "NO_SEATS"
)

// Section is one schedulable offering of a course. Immutable once fetched from
// the catalog.
type Section struct {
	CourseCode   string       `db:"course_code" json:"course_code"`
	CourseTitle  string       `db:"course_title" json:"course_title"`
	Units        string       `db:"units" json:"units"`
	SectionID    string       `db:"section_id" json:"section_id"`
	MeetingType  MeetingType  `db:"meeting_type" json:"meeting_type"`
	Days         []string     `db:"-" json:"days"`
	Times        string       `db:"times" json:"times"`
	Location     string       `db:"location" json:"location"`
	Instructor   string       `db:"instructor" json:"instructor"`
	Availability Availability `db:"availability" json:"availability"`
	Notes        string       `db:"notes" json:"notes"`
}

// SectionFilter describes query params for listing catalog sections.
type SectionFilter struct {
	Term        string
	CourseCodes []string
}
