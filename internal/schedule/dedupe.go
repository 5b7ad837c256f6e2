package schedule

import (
	"sort"
	"strings"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// Group is a bucket of deduplicated combinations sharing one weekly pattern.
type Group struct {
	Signature    []models.SignatureSlot
	Combinations [][]models.Section
}

// CanonicalKey identifies a combination by the set of sections it contains.
// Two combinations with equal keys are the literal same schedule. Day order
// inside a section is irrelevant, so days are sorted before keying.
func CanonicalKey(combination []models.Section) string {
	parts := make([]string, 0, len(combination))
	for _, sec := range combination {
		days := append([]string(nil), sec.Days...)
		sort.Strings(days)
		parts = append(parts, sec.CourseCode+"|"+sec.SectionID+"|"+strings.Join(days, " ")+"|"+strings.TrimSpace(sec.Times))
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

// Signature computes the weekly day/time pattern of a combination: one
// (day, times) entry per day occurrence of every section with a meeting time.
// A day meeting twice stays as two entries.
func Signature(combination []models.Section) []models.SignatureSlot {
	var slots []models.SignatureSlot
	for _, sec := range combination {
		if !hasMeetingTime(sec.Times) {
			continue
		}
		times := strings.TrimSpace(sec.Times)
		for _, day := range sec.Days {
			slots = append(slots, models.SignatureSlot{Day: day, Times: times})
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Day != slots[j].Day {
			return slots[i].Day < slots[j].Day
		}
		return slots[i].Times < slots[j].Times
	})
	return slots
}

// SignatureKey flattens a signature into a sortable string so groups can be
// ordered lexicographically for stable pagination.
func SignatureKey(slots []models.SignatureSlot) string {
	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		parts = append(parts, slot.Day+"|"+slot.Times)
	}
	return strings.Join(parts, ";")
}

// renderKey captures exactly the fields a combination displays with. Two
// combinations differing only in hidden fields (e.g. section number) render
// identically and collapse within a group.
func renderKey(combination []models.Section) string {
	parts := make([]string, 0, len(combination))
	for _, sec := range combination {
		days := append([]string(nil), sec.Days...)
		sort.Strings(days)
		parts = append(parts, strings.Join([]string{
			sec.CourseCode,
			string(sec.MeetingType),
			sec.Units,
			strings.Join(days, " "),
			strings.TrimSpace(sec.Times),
			sec.Location,
			strings.TrimSpace(sec.Instructor),
		}, "|"))
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

// DedupeAndGroup collapses identical combinations by canonical key, keeping
// the first seen, then buckets survivors by weekly signature. Groups come
// back ordered by ascending signature. Returns the count before dedup and
// the count after.
func DedupeAndGroup(combinations [][]models.Section) (groups []Group, totalValid, totalUnique int) {
	totalValid = len(combinations)

	seen := make(map[string]struct{}, len(combinations))
	unique := make([][]models.Section, 0, len(combinations))
	for _, comb := range combinations {
		key := CanonicalKey(comb)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, comb)
	}
	totalUnique = len(unique)

	byKey := make(map[string]*Group)
	rendered := make(map[string]map[string]struct{})
	var keys []string
	for _, comb := range unique {
		sig := Signature(comb)
		key := SignatureKey(sig)
		grp, ok := byKey[key]
		if !ok {
			grp = &Group{Signature: sig}
			byKey[key] = grp
			rendered[key] = make(map[string]struct{})
			keys = append(keys, key)
		}
		rk := renderKey(comb)
		if _, dup := rendered[key][rk]; dup {
			continue
		}
		rendered[key][rk] = struct{}{}
		grp.Combinations = append(grp.Combinations, comb)
	}

	sort.Strings(keys)
	groups = make([]Group, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, *byKey[key])
	}
	return groups, totalValid, totalUnique
}
