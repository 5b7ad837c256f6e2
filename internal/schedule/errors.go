package schedule

import (
	"fmt"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// NoSectionsError signals that a selected course has zero open sections,
// online or in person. Fatal to the whole request.
type NoSectionsError struct {
	CourseCode string
}

func (e *NoSectionsError) Error() string {
	return fmt.Sprintf("no available sections for %s", e.CourseCode)
}

// MissingMeetingTypeError signals that a course's open in-person sections do
// not cover every meeting type the catalog requires for it, so no complete
// combination exists.
type MissingMeetingTypeError struct {
	CourseCode  string
	MeetingType models.MeetingType
}

func (e *MissingMeetingTypeError) Error() string {
	return fmt.Sprintf("course %s has no available %s sections", e.CourseCode, e.MeetingType)
}

// TooManyCombinationsError aborts enumeration when the combination space
// exceeds the configured cap.
type TooManyCombinationsError struct {
	Size  int64
	Limit int
}

func (e *TooManyCombinationsError) Error() string {
	return fmt.Sprintf("combination space of %d exceeds limit %d", e.Size, e.Limit)
}
