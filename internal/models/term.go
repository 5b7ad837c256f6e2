package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Season is the academic season of a term.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonFall   Season = "Fall"
)

// Term identifies one registration term of the catalog.
type Term struct {
	Season Season `json:"season"`
	Year   int    `json:"year"`
}

// Slug renders the term the way catalog URLs and database rows spell it,
// e.g. "Fall_2025".
func (t Term) Slug() string {
	return fmt.Sprintf("%s_%d", t.Season, t.Year)
}

// Label renders the term for display, e.g. "Fall 2025".
func (t Term) Label() string {
	return fmt.Sprintf("%s %d", t.Season, t.Year)
}

// ParseTermSlug parses a "Fall_2025" style slug.
func ParseTermSlug(slug string) (Term, error) {
	parts := strings.SplitN(slug, "_", 2)
	if len(parts) != 2 {
		return Term{}, fmt.Errorf("invalid term slug %q", slug)
	}
	season := Season(parts[0])
	if season != SeasonSpring && season != SeasonFall {
		return Term{}, fmt.Errorf("invalid term season %q", parts[0])
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 2000 || year > 2100 {
		return Term{}, fmt.Errorf("invalid term year %q", parts[1])
	}
	return Term{Season: season, Year: year}, nil
}
