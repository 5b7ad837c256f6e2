package schedule

import (
	"sort"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// sectionList is one (course, meeting type) axis of the Cartesian product.
type sectionList struct {
	courseCode  string
	meetingType models.MeetingType
	sections    []models.Section
}

// Enumerator lazily walks the Cartesian product of one section per required
// meeting type per course. Axes are ordered by (course code, meeting type) so
// enumeration order is stable across calls with identical input; the full
// product is never materialized.
type Enumerator struct {
	lists []sectionList
}

// NewEnumerator derives the required meeting types per course from the
// in-person bucket and lays out the product axes. A required type with no
// sections aborts the whole request via MissingMeetingTypeError.
func NewEnumerator(inPerson map[string]map[models.MeetingType][]models.Section) (*Enumerator, error) {
	codes := make([]string, 0, len(inPerson))
	for code := range inPerson {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var lists []sectionList
	for _, code := range codes {
		byType := inPerson[code]
		types := make([]string, 0, len(byType))
		for mt := range byType {
			types = append(types, string(mt))
		}
		sort.Strings(types)
		for _, mt := range types {
			secs := byType[models.MeetingType(mt)]
			if len(secs) == 0 {
				return nil, &MissingMeetingTypeError{CourseCode: code, MeetingType: models.MeetingType(mt)}
			}
			lists = append(lists, sectionList{
				courseCode:  code,
				meetingType: models.MeetingType(mt),
				sections:    secs,
			})
		}
	}

	return &Enumerator{lists: lists}, nil
}

// Size returns the total number of combinations, capped at the given limit.
// A second return of false means the product exceeds the limit.
func (e *Enumerator) Size(limit int64) (int64, bool) {
	size := int64(1)
	for _, list := range e.lists {
		size *= int64(len(list.sections))
		if limit > 0 && size > limit {
			return size, false
		}
	}
	if len(e.lists) == 0 {
		return 0, true
	}
	return size, true
}

// Each invokes fn for every combination in deterministic order. The slice
// passed to fn is reused between calls; callers keeping a combination must
// copy it. fn returning false stops the walk.
func (e *Enumerator) Each(fn func(combination []models.Section) bool) {
	if len(e.lists) == 0 {
		return
	}

	indexes := make([]int, len(e.lists))
	combination := make([]models.Section, len(e.lists))

	for {
		for i, list := range e.lists {
			combination[i] = list.sections[indexes[i]]
		}
		if !fn(combination) {
			return
		}

		// Odometer increment, rightmost axis fastest.
		pos := len(indexes) - 1
		for pos >= 0 {
			indexes[pos]++
			if indexes[pos] < len(e.lists[pos].sections) {
				break
			}
			indexes[pos] = 0
			pos--
		}
		if pos < 0 {
			return
		}
	}
}
