package schedule

import (
	"strings"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// ConflictFree reports whether no two sections in the combination collide.
// Sections without a meeting time are never subjected to conflict checks.
func ConflictFree(combination []models.Section) bool {
	for i := 0; i < len(combination); i++ {
		if !hasMeetingTime(combination[i].Times) {
			continue
		}
		for j := i + 1; j < len(combination); j++ {
			if !hasMeetingTime(combination[j].Times) {
				continue
			}
			if Overlaps(combination[i].Days, combination[i].Times, combination[j].Days, combination[j].Times) {
				return false
			}
		}
	}
	return true
}

// PassesExclusions reports whether no section in the combination matches any
// of the user's exclusion constraints. Checks short-circuit on the first
// match; the pass/fail outcome is order-independent.
func PassesExclusions(combination []models.Section, criteria models.SelectionCriteria) bool {
	excludedInstructors := make(map[string]struct{}, len(criteria.ExcludedInstructors))
	for _, name := range criteria.ExcludedInstructors {
		excludedInstructors[strings.TrimSpace(name)] = struct{}{}
	}
	excludedDays := make(map[string]struct{}, len(criteria.ExcludedDays))
	for _, day := range criteria.ExcludedDays {
		excludedDays[day] = struct{}{}
	}

	for _, sec := range combination {
		if _, ok := excludedInstructors[strings.TrimSpace(sec.Instructor)]; ok {
			return false
		}
		for _, rng := range criteria.ExcludedTimeRanges {
			if overlapsBareRange(sec.Times, rng) {
				return false
			}
		}
		for _, day := range sec.Days {
			if _, ok := excludedDays[day]; ok {
				return false
			}
		}
		for _, slot := range criteria.ExcludedCustomSlots {
			if matchesCustomSlot(sec, slot) {
				return false
			}
		}
	}
	return true
}

// overlapsBareRange tests the section's window against a course-independent
// excluded range; the range applies on every day the section meets, so only
// the clock interval matters. Parse failure on either side means no match.
func overlapsBareRange(sectionTimes, excludedRange string) bool {
	win, ok := ParseTimeWindow(sectionTimes)
	if !ok {
		return false
	}
	excluded, ok := ParseTimeWindow(excludedRange)
	if !ok {
		return false
	}
	return windowsOverlap(win, excluded)
}

// matchesCustomSlot checks a day-specific excluded range: the slot's day must
// be one of the section's days and the windows must overlap. Slot times are
// 24-hour form, section times 12-hour; ParseTimeWindow handles both.
func matchesCustomSlot(sec models.Section, slot models.CustomSlot) bool {
	dayMatch := false
	for _, day := range sec.Days {
		if day == slot.Day {
			dayMatch = true
			break
		}
	}
	if !dayMatch {
		return false
	}
	win, ok := ParseTimeWindow(sec.Times)
	if !ok {
		return false
	}
	excluded, ok := ParseTimeWindow(slot.Start + "-" + slot.End)
	if !ok {
		return false
	}
	return windowsOverlap(win, excluded)
}
