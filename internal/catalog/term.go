package catalog

import (
	"time"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

// Registration windows open before the term starts, so the "current" term
// rolls forward twice a year: on March 10 to Fall, and on October 7 to the
// next year's Spring.
func CurrentTerm(today time.Time) models.Term {
	year := today.Year()
	oct7 := time.Date(year, time.October, 7, 0, 0, 0, 0, today.Location())
	mar10 := time.Date(year, time.March, 10, 0, 0, 0, 0, today.Location())

	switch {
	case !today.Before(oct7):
		return models.Term{Season: models.SeasonSpring, Year: year + 1}
	case !today.Before(mar10):
		return models.Term{Season: models.SeasonFall, Year: year}
	default:
		return models.Term{Season: models.SeasonSpring, Year: year}
	}
}
