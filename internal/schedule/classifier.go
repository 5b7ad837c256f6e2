package schedule

import (
	"strings"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// onlineMarkers are the note phrases that identify a section with no meeting
// times as an online offering. Matched case-insensitively as substrings.
var onlineMarkers = []string{
	"online-no meet times",
	"no-meet times",
	"online no meet times",
}

// Classified splits a term's sections for the selected courses into the
// online bucket and the in-person bucket keyed by course and meeting type.
// Sections without open seats are dropped entirely.
type Classified struct {
	Online   map[string][]models.Section
	InPerson map[string]map[models.MeetingType][]models.Section
}

// Classify filters sections down to the selected course codes and buckets
// them for enumeration.
func Classify(sections []models.Section, selectedCourses []string) Classified {
	selected := make(map[string]struct{}, len(selectedCourses))
	for _, code := range selectedCourses {
		selected[code] = struct{}{}
	}

	out := Classified{
		Online:   make(map[string][]models.Section),
		InPerson: make(map[string]map[models.MeetingType][]models.Section),
	}

	for _, sec := range sections {
		if _, ok := selected[sec.CourseCode]; !ok {
			continue
		}
		if sec.Availability != models.SeatsAvailable {
			continue
		}

		if hasMeetingTime(sec.Times) {
			byType := out.InPerson[sec.CourseCode]
			if byType == nil {
				byType = make(map[models.MeetingType][]models.Section)
				out.InPerson[sec.CourseCode] = byType
			}
			byType[sec.MeetingType] = append(byType[sec.MeetingType], sec)
			continue
		}

		if isOnline(sec.Notes) {
			if sec.MeetingType == models.MeetingUnspecified {
				// Synthetic label for display only; the catalog row stays as is.
				sec.MeetingType = models.MeetingOnline
			}
			out.Online[sec.CourseCode] = append(out.Online[sec.CourseCode], sec)
		}
	}

	return out
}

func hasMeetingTime(times string) bool {
	t := strings.ToLower(strings.TrimSpace(times))
	return t != "" && t != "na"
}

func isOnline(notes string) bool {
	n := strings.ToLower(notes)
	for _, marker := range onlineMarkers {
		if strings.Contains(n, marker) {
			return true
		}
	}
	return false
}
