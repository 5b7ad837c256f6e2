package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusbuild/schedule-builder-api/internal/models"
)

func newSectionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func sectionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"course_code", "course_title", "units", "section_id", "meeting_type", "days", "times", "location", "instructor", "availability", "notes"})
}

func TestSectionRepositoryListByTerm(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	rows := sectionRows().
		AddRow("CS101", "Intro to CS", "3", "01", "LECTURE", "Monday,Wednesday", "09:00AM-10:00AM", "ENG 101", "Prof. A", "SEATS_AVAILABLE", "").
		AddRow("CS101", "Intro to CS", "3", "90", "", "", "NA", "ONLINE", "Staff", "SEATS_AVAILABLE", "Online-No Meet Times")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT course_code, course_title, units, section_id, meeting_type, days, times, location, instructor, availability, notes FROM sections WHERE term = $1 ORDER BY course_code, meeting_type, section_id")).
		WithArgs("Fall_2026").
		WillReturnRows(rows)

	sections, err := repo.ListByTerm(context.Background(), models.SectionFilter{Term: "Fall_2026"})
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, []string{"Monday", "Wednesday"}, sections[0].Days)
	assert.Nil(t, sections[1].Days)
	assert.Equal(t, models.MeetingUnspecified, sections[1].MeetingType)
}

func TestSectionRepositoryListByTermWithCourseFilter(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sections WHERE term = $1 AND course_code IN ($2, $3)")).
		WithArgs("Fall_2026", "CS101", "MATH200").
		WillReturnRows(sectionRows())

	sections, err := repo.ListByTerm(context.Background(), models.SectionFilter{
		Term:        "Fall_2026",
		CourseCodes: []string{"CS101", "MATH200"},
	})
	require.NoError(t, err)
	assert.Empty(t, sections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepositoryReplaceSubject(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sections WHERE term = $1 AND subject = $2")).
		WithArgs("Fall_2026", "CECS").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("INSERT INTO sections").
		WithArgs("Fall_2026", "CECS", "CECS 100", "Critical Thinking", "3", "01", "LECTURE", "Monday", "09:00AM-10:00AM", "ENG 101", "Prof. A", "SEATS_AVAILABLE", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplaceSubject(context.Background(), "Fall_2026", "CECS", []models.Section{{
		CourseCode:   "CECS 100",
		CourseTitle:  "Critical Thinking",
		Units:        "3",
		SectionID:    "01",
		MeetingType:  models.MeetingLecture,
		Days:         []string{"Monday"},
		Times:        "09:00AM-10:00AM",
		Location:     "ENG 101",
		Instructor:   "Prof. A",
		Availability: models.SeatsAvailable,
	}})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepositoryReplaceSubjectRollsBackOnError(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sections")).
		WithArgs("Fall_2026", "CECS").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ReplaceSubject(context.Background(), "Fall_2026", "CECS", nil)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepositoryListCourses(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	rows := sqlmock.NewRows([]string{"course_code", "course_title"}).
		AddRow("CS101", "Intro to CS").
		AddRow("MATH200", "Linear Algebra")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT course_code, course_title FROM sections WHERE term = $1 ORDER BY course_code")).
		WithArgs("Fall_2026").
		WillReturnRows(rows)

	courses, err := repo.ListCourses(context.Background(), "Fall_2026")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, models.CourseOption{Code: "CS101", Title: "Intro to CS"}, courses[0])
}

func TestSectionRepositoryListInstructors(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	rows := sqlmock.NewRows([]string{"instructor"}).AddRow("Prof. A").AddRow("Prof. B")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT instructor FROM sections WHERE term = $1 AND instructor <> '' ORDER BY instructor")).
		WithArgs("Fall_2026").
		WillReturnRows(rows)

	instructors, err := repo.ListInstructors(context.Background(), "Fall_2026")
	require.NoError(t, err)
	assert.Equal(t, []string{"Prof. A", "Prof. B"}, instructors)
}

func TestSectionRepositoryCountByTerm(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM sections WHERE term = $1")).
		WithArgs("Fall_2026").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.CountByTerm(context.Background(), "Fall_2026")
	require.NoError(t, err)
	assert.Equal(t, 42, total)
}
