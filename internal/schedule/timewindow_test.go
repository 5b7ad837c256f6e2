package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{"morning 12h", "09:00AM", 9 * 60, true},
		{"afternoon 12h", "03:30PM", 15*60 + 30, true},
		{"noon", "12:00PM", 12 * 60, true},
		{"midnight", "12:00AM", 0, true},
		{"lowercase meridiem", "1:15pm", 13*60 + 15, true},
		{"24 hour", "14:30", 14*60 + 30, true},
		{"24 hour early", "08:00", 8 * 60, true},
		{"missing minutes", "9AM", 0, false},
		{"hour out of range 12h", "13:00PM", 0, false},
		{"hour out of range 24h", "24:00", 0, false},
		{"minutes out of range", "10:75AM", 0, false},
		{"garbage", "TBA", 0, false},
		{"empty", "", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseClock(tc.input)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseTimeWindow(t *testing.T) {
	win, ok := ParseTimeWindow("09:00AM-10:15AM")
	require.True(t, ok)
	assert.Equal(t, TimeWindow{Start: 9 * 60, End: 10*60 + 15}, win)

	win, ok = ParseTimeWindow("13:00-14:30")
	require.True(t, ok)
	assert.Equal(t, TimeWindow{Start: 13 * 60, End: 14*60 + 30}, win)

	for _, bad := range []string{"", "NA", "na", "09:00AM", "junk-text", "09:00AM-"} {
		_, ok := ParseTimeWindow(bad)
		assert.False(t, ok, "input %q should fail open", bad)
	}
}

func TestOverlaps(t *testing.T) {
	mon := []string{"Monday"}
	monWed := []string{"Monday", "Wednesday"}
	tue := []string{"Tuesday"}

	assert.True(t, Overlaps(mon, "09:00AM-10:00AM", monWed, "09:30AM-10:30AM"))
	assert.True(t, Overlaps(monWed, "09:00AM-11:00AM", mon, "10:00AM-10:30AM"))

	// Touching endpoints are not a conflict.
	assert.False(t, Overlaps(mon, "09:00AM-10:00AM", mon, "10:00AM-11:00AM"))
	assert.False(t, Overlaps(mon, "10:00AM-11:00AM", mon, "09:00AM-10:00AM"))

	// Disjoint day sets never conflict.
	assert.False(t, Overlaps(mon, "09:00AM-10:00AM", tue, "09:00AM-10:00AM"))

	// Absent or malformed windows never conflict.
	assert.False(t, Overlaps(mon, "NA", mon, "09:00AM-10:00AM"))
	assert.False(t, Overlaps(mon, "09:00AM-10:00AM", mon, ""))
	assert.False(t, Overlaps(mon, "bogus", mon, "09:00AM-10:00AM"))

	// Empty day sets never conflict.
	assert.False(t, Overlaps(nil, "09:00AM-10:00AM", mon, "09:00AM-10:00AM"))
}

func TestOverlapsMixedMeridiem(t *testing.T) {
	days := []string{"Friday"}
	assert.True(t, Overlaps(days, "11:30AM-12:20PM", days, "12:00PM-01:00PM"))
	assert.False(t, Overlaps(days, "11:00AM-11:50AM", days, "12:00PM-01:00PM"))
}
