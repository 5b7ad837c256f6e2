package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

func TestCurrentTerm(t *testing.T) {
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		date time.Time
		want models.Term
	}{
		{"early january", day(2026, time.January, 5), models.Term{Season: models.SeasonSpring, Year: 2026}},
		{"day before spring cutover", day(2026, time.March, 9), models.Term{Season: models.SeasonSpring, Year: 2026}},
		{"spring cutover day", day(2026, time.March, 10), models.Term{Season: models.SeasonFall, Year: 2026}},
		{"midsummer", day(2026, time.July, 1), models.Term{Season: models.SeasonFall, Year: 2026}},
		{"day before fall cutover", day(2026, time.October, 6), models.Term{Season: models.SeasonFall, Year: 2026}},
		{"fall cutover day", day(2026, time.October, 7), models.Term{Season: models.SeasonSpring, Year: 2027}},
		{"late december", day(2026, time.December, 31), models.Term{Season: models.SeasonSpring, Year: 2027}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CurrentTerm(tc.date))
		})
	}
}

func TestTermSlugAndLabel(t *testing.T) {
	term := models.Term{Season: models.SeasonFall, Year: 2026}
	assert.Equal(t, "Fall_2026", term.Slug())
	assert.Equal(t, "Fall 2026", term.Label())
}
