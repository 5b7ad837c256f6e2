package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

const subjectPageFixture = `<!DOCTYPE html>
<html><body>
<div class="courseBlock">
  <div class="courseHeader">
    <span class="courseCode">CECS 100</span>
    <span class="courseTitle">Critical Thinking in the Digital Age</span>
    <span class="units">3 units</span>
  </div>
  <table class="sectionTable">
    <tr><th>SEC.</th><th>CLASS #</th><th>NO MTRL</th><th>CMP</th><th>TYPE</th><th>DAYS</th><th>TIME</th><th>OPEN SEATS</th><th>LOCATION</th><th>INSTRUCTOR</th><th>COMMENT</th></tr>
    <tr>
      <td>01</td><td>1001</td><td></td><td></td><td>LEC</td><td>MW</td><td>9-9:50AM</td>
      <td><img src="dot.gif" alt="Seats available" title="Seats available"></td>
      <td>ENG 101</td><td>Prof. A</td><td></td>
    </tr>
    <tr>
      <td>02</td><td>1002</td><td></td><td></td><td>LAB</td><td>TuTh</td><td>1-2:15PM</td>
      <td><img src="dot.gif" alt="Reserve Capacity" title="Reserve Capacity"></td>
      <td>ENG 102</td><td>Prof. B</td><td></td>
    </tr>
    <tr>
      <td>60</td><td>1003</td><td></td><td></td><td>SEM</td><td></td><td>NA</td>
      <td></td>
      <td>ONLINE</td><td>Staff</td><td>Online-No Meet Times</td>
    </tr>
    <tr>
      <td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td>
    </tr>
  </table>
</div>
<div class="courseBlock">
  <div class="courseHeader">
    <span class="courseCode">CECS 225</span>
    <span class="courseTitle">Digital Logic</span>
    <span class="units">3 units</span>
  </div>
  <table class="sectionTable">
    <tr><th>SEC.</th><th>CLASS #</th><th>NO MTRL</th><th>CMP</th><th>TYPE</th><th>DAYS</th><th>TIME</th><th>OPEN SEATS</th><th>LOCATION</th><th>INSTRUCTOR</th><th>COMMENT</th></tr>
    <tr>
      <td>01</td><td>2001</td><td></td><td></td><td>LEC</td><td>F</td><td>11-12:15PM</td>
      <td><img src="dot.gif" alt="Seats available" title="Seats available"></td>
      <td>VEC 331</td><td>Prof. C</td><td></td>
    </tr>
  </table>
</div>
</body></html>`

func newFixtureServer(t *testing.T, status int, body string) (*httptest.Server, *Scraper) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Fall_2026/By_Subject/CECS.html", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, NewScraper(server.URL, 5*time.Second, zap.NewNop())
}

func TestScraperFetchSubject(t *testing.T) {
	_, scraper := newFixtureServer(t, http.StatusOK, subjectPageFixture)

	sections, err := scraper.FetchSubject(context.Background(), "Fall_2026", "CECS")
	require.NoError(t, err)
	require.Len(t, sections, 4)

	lec := sections[0]
	assert.Equal(t, "CECS 100", lec.CourseCode)
	assert.Equal(t, "Critical Thinking in the Digital Age", lec.CourseTitle)
	assert.Equal(t, "3 units", lec.Units)
	assert.Equal(t, "01", lec.SectionID)
	assert.Equal(t, models.MeetingLecture, lec.MeetingType)
	assert.Equal(t, []string{"Monday", "Wednesday"}, lec.Days)
	assert.Equal(t, "09:00AM-09:50AM", lec.Times)
	assert.Equal(t, "ENG 101", lec.Location)
	assert.Equal(t, "Prof. A", lec.Instructor)
	assert.Equal(t, models.SeatsAvailable, lec.Availability)

	lab := sections[1]
	assert.Equal(t, models.MeetingLab, lab.MeetingType)
	assert.Equal(t, []string{"Tuesday", "Thursday"}, lab.Days)
	assert.Equal(t, "01:00PM-02:15PM", lab.Times)
	assert.Equal(t, models.ReserveCapacity, lab.Availability)

	online := sections[2]
	assert.Equal(t, models.MeetingSeminar, online.MeetingType)
	assert.Empty(t, online.Days)
	assert.Equal(t, "NA", online.Times)
	assert.Equal(t, models.NoSeats, online.Availability)
	assert.Equal(t, "Online-No Meet Times", online.Notes)

	// Second course block, noon-crossing range keeps its inferred meridiem.
	assert.Equal(t, "CECS 225", sections[3].CourseCode)
	assert.Equal(t, "11:00AM-12:15PM", sections[3].Times)
}

func TestScraperFetchSubjectNotFound(t *testing.T) {
	_, scraper := newFixtureServer(t, http.StatusNotFound, "not here")

	sections, err := scraper.FetchSubject(context.Background(), "Fall_2026", "CECS")
	require.NoError(t, err)
	assert.Empty(t, sections)
}

func TestScraperFetchSubjectTransportError(t *testing.T) {
	server, scraper := newFixtureServer(t, http.StatusOK, subjectPageFixture)
	server.Close()

	_, err := scraper.FetchSubject(context.Background(), "Fall_2026", "CECS")
	assert.Error(t, err)
}

func TestNormalizeTimeRange(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"morning range", "9-9:50AM", "09:00AM-09:50AM"},
		{"afternoon inferred", "1-2:15PM", "01:00PM-02:15PM"},
		{"noon crossing is morning start", "11-12:15PM", "11:00AM-12:15PM"},
		{"wraparound start", "10-1:50PM", "10:00AM-01:50PM"},
		{"noon start stays pm", "12-1:50PM", "12:00PM-01:50PM"},
		{"evening range", "5:30-8:15PM", "05:30PM-08:15PM"},
		{"already normalized", "09:00AM-10:00AM", "09:00AM-10:00AM"},
		{"na passes through", "NA", "NA"},
		{"empty passes through", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeTimeRange(tc.in))
		})
	}
}

func TestParseDayLetters(t *testing.T) {
	assert.Equal(t, []string{"Monday", "Wednesday"}, parseDayLetters("MW"))
	assert.Equal(t, []string{"Tuesday", "Thursday"}, parseDayLetters("TuTh"))
	assert.Equal(t, []string{"Saturday"}, parseDayLetters("Sa"))
	assert.Nil(t, parseDayLetters(""))
}
