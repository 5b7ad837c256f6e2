package schedule

import (
	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// Result is the raw engine output before rendering and pagination.
type Result struct {
	Online      map[string][]models.Section
	Groups      []Group
	TotalValid  int
	TotalUnique int
}

// Engine runs the full combination pipeline: classify, enumerate, filter,
// deduplicate, group. It is pure and safe for concurrent use.
type Engine struct {
	maxCombinations int
}

// NewEngine builds an engine. maxCombinations <= 0 disables the cap.
func NewEngine(maxCombinations int) *Engine {
	return &Engine{maxCombinations: maxCombinations}
}

// Generate produces every conflict-free, exclusion-passing weekly timetable
// for the criteria. An empty selection or zero surviving combinations is a
// valid result with empty groups, not an error; NoSectionsError and
// MissingMeetingTypeError are fatal to the request.
func (e *Engine) Generate(sections []models.Section, criteria models.SelectionCriteria) (*Result, error) {
	classified := Classify(sections, criteria.Courses)

	for _, code := range criteria.Courses {
		_, online := classified.Online[code]
		_, inPerson := classified.InPerson[code]
		if !online && !inPerson {
			return nil, &NoSectionsError{CourseCode: code}
		}
	}

	result := &Result{Online: classified.Online}
	if len(classified.InPerson) == 0 {
		return result, nil
	}

	enum, err := NewEnumerator(classified.InPerson)
	if err != nil {
		return nil, err
	}
	if e.maxCombinations > 0 {
		if size, ok := enum.Size(int64(e.maxCombinations)); !ok {
			return nil, &TooManyCombinationsError{Size: size, Limit: e.maxCombinations}
		}
	}

	// Conflict and exclusion checks are interleaved into the product walk so
	// rejected combinations are never retained.
	var valid [][]models.Section
	enum.Each(func(combination []models.Section) bool {
		if !ConflictFree(combination) {
			return true
		}
		if !PassesExclusions(combination, criteria) {
			return true
		}
		kept := make([]models.Section, len(combination))
		copy(kept, combination)
		valid = append(valid, kept)
		return true
	})

	result.Groups, result.TotalValid, result.TotalUnique = DedupeAndGroup(valid)
	return result, nil
}
