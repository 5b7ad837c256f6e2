package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusbuild/schedule-builder-api/internal/dto"
	"github.com/campusbuild/schedule-builder-api/internal/models"
	"github.com/campusbuild/schedule-builder-api/internal/repository"
	"github.com/campusbuild/schedule-builder-api/pkg/config"
	appErrors "github.com/campusbuild/schedule-builder-api/pkg/errors"
)

type fakeSectionLister struct {
	sections []models.Section
	err      error
	calls    int
}

func (f *fakeSectionLister) ListByTerm(_ context.Context, _ models.SectionFilter) ([]models.Section, error) {
	f.calls++
	return f.sections, f.err
}

type fakeRatings struct {
	ratings map[string]*models.InstructorRating
}

func (f *fakeRatings) RatingFor(_ context.Context, instructor string) *models.InstructorRating {
	return f.ratings[instructor]
}

func fixtureSections() []models.Section {
	return []models.Section{
		{
			CourseCode: "CS101", CourseTitle: "Intro to CS", Units: "3", SectionID: "01",
			MeetingType: models.MeetingLecture, Days: []string{"Monday", "Wednesday"},
			Times: "09:00AM-10:00AM", Location: "ENG 101", Instructor: "Prof. A",
			Availability: models.SeatsAvailable,
		},
		{
			CourseCode: "CS101", CourseTitle: "Intro to CS", Units: "3", SectionID: "02",
			MeetingType: models.MeetingLab, Days: []string{"Tuesday"},
			Times: "09:00AM-10:50AM", Location: "ENG 102", Instructor: "Prof. B",
			Availability: models.SeatsAvailable,
		},
		{
			CourseCode: "MATH200", CourseTitle: "Linear Algebra", Units: "3", SectionID: "11",
			MeetingType: models.MeetingLecture, Days: []string{"Tuesday", "Thursday"},
			Times: "11:00AM-12:00PM", Location: "LA5 150", Instructor: "Prof. C",
			Availability: models.SeatsAvailable,
		},
	}
}

func newScheduleService(lister sectionLister, ratings ratingAnnotator, cfg config.SchedulesConfig) *ScheduleService {
	cache := NewCacheService(repository.NewMemoryCache(), nil, 0, zap.NewNop())
	return NewScheduleService(lister, cache, ratings, nil, cfg, nil, zap.NewNop())
}

func TestScheduleServiceGenerateAndCacheHit(t *testing.T) {
	lister := &fakeSectionLister{sections: fixtureSections()}
	svc := newScheduleService(lister, nil, config.SchedulesConfig{})
	req := dto.GenerateSchedulesRequest{Courses: []string{"CS101", "MATH200"}}

	first, hit, err := svc.Generate(context.Background(), "Fall_2026", req)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 1, first.TotalValid)
	assert.Equal(t, 1, first.TotalUnique)
	require.Len(t, first.Groups, 1)
	assert.NotEmpty(t, first.Fingerprint)
	assert.Equal(t, 1, lister.calls)

	// Identical criteria round-trip from the cache without touching the store.
	second, hit, err := svc.Generate(context.Background(), "Fall_2026", req)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, lister.calls)
	assert.Equal(t, first, second)
}

func TestScheduleServiceLookup(t *testing.T) {
	svc := newScheduleService(&fakeSectionLister{sections: fixtureSections()}, nil, config.SchedulesConfig{})
	req := dto.GenerateSchedulesRequest{Courses: []string{"CS101", "MATH200"}}

	generated, _, err := svc.Generate(context.Background(), "Fall_2026", req)
	require.NoError(t, err)

	found, err := svc.Lookup(context.Background(), "Fall_2026", generated.Fingerprint, 1)
	require.NoError(t, err)
	assert.Equal(t, generated, found)

	_, err = svc.Lookup(context.Background(), "Fall_2026", "deadbeef", 1)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceFingerprint(t *testing.T) {
	lister := &fakeSectionLister{sections: fixtureSections()}
	svc := newScheduleService(lister, nil, config.SchedulesConfig{})
	req := dto.GenerateSchedulesRequest{Courses: []string{"CS101", "MATH200"}}

	before, err := svc.Fingerprint(context.Background(), "Fall_2026", req)
	require.NoError(t, err)
	assert.NotEmpty(t, before.Fingerprint)
	assert.False(t, before.Cached)
	assert.Equal(t, 0, lister.calls)

	generated, _, err := svc.Generate(context.Background(), "Fall_2026", req)
	require.NoError(t, err)

	after, err := svc.Fingerprint(context.Background(), "Fall_2026", req)
	require.NoError(t, err)
	assert.True(t, after.Cached)
	assert.Equal(t, generated.Fingerprint, after.Fingerprint)

	// Criteria order does not change the key.
	reordered, err := svc.Fingerprint(context.Background(), "Fall_2026",
		dto.GenerateSchedulesRequest{Courses: []string{"MATH200", "CS101"}})
	require.NoError(t, err)
	assert.Equal(t, after.Fingerprint, reordered.Fingerprint)
}

func TestScheduleServiceValidation(t *testing.T) {
	svc := newScheduleService(&fakeSectionLister{}, nil, config.SchedulesConfig{})

	_, _, err := svc.Generate(context.Background(), "Fall_2026", dto.GenerateSchedulesRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceNoSections(t *testing.T) {
	svc := newScheduleService(&fakeSectionLister{sections: fixtureSections()}, nil, config.SchedulesConfig{})
	req := dto.GenerateSchedulesRequest{Courses: []string{"HIST499"}}

	_, _, err := svc.Generate(context.Background(), "Fall_2026", req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNoSectionsAvailable.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceExclusionsYieldEmptyResult(t *testing.T) {
	svc := newScheduleService(&fakeSectionLister{sections: fixtureSections()}, nil, config.SchedulesConfig{})
	req := dto.GenerateSchedulesRequest{
		Courses:             []string{"CS101", "MATH200"},
		ExcludedInstructors: []string{"Prof. B"},
	}

	resp, _, err := svc.Generate(context.Background(), "Fall_2026", req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalValid)
	assert.Empty(t, resp.Groups)
}

func TestScheduleServiceRatingsAnnotation(t *testing.T) {
	ratings := &fakeRatings{ratings: map[string]*models.InstructorRating{
		"Prof. A": {Instructor: "Prof. A", Score: 4.2, Count: 17},
	}}
	svc := newScheduleService(&fakeSectionLister{sections: fixtureSections()}, ratings, config.SchedulesConfig{})
	req := dto.GenerateSchedulesRequest{Courses: []string{"CS101", "MATH200"}}

	resp, _, err := svc.Generate(context.Background(), "Fall_2026", req)
	require.NoError(t, err)
	require.Len(t, resp.Groups, 1)
	require.NotEmpty(t, resp.Groups[0].Schedules)

	var rated, unrated int
	for _, section := range resp.Groups[0].Schedules[0] {
		if section.Rating != nil {
			rated++
			assert.Equal(t, 4.2, section.Rating.Score)
		} else {
			unrated++
		}
	}
	assert.Equal(t, 1, rated)
	assert.Equal(t, 2, unrated)
}

func TestScheduleServicePagination(t *testing.T) {
	// Two sections on different days yield two pattern groups.
	sections := []models.Section{
		{
			CourseCode: "CS101", SectionID: "01", MeetingType: models.MeetingLecture,
			Days: []string{"Monday"}, Times: "09:00AM-10:00AM", Instructor: "Prof. A",
			Availability: models.SeatsAvailable,
		},
		{
			CourseCode: "CS101", SectionID: "02", MeetingType: models.MeetingLecture,
			Days: []string{"Tuesday"}, Times: "09:00AM-10:00AM", Instructor: "Prof. B",
			Availability: models.SeatsAvailable,
		},
	}
	svc := newScheduleService(&fakeSectionLister{sections: sections}, nil, config.SchedulesConfig{PatternPageSize: 1})

	page1, _, err := svc.Generate(context.Background(), "Fall_2026", dto.GenerateSchedulesRequest{Courses: []string{"CS101"}})
	require.NoError(t, err)
	require.Len(t, page1.Groups, 1)
	assert.Equal(t, models.Pagination{Page: 1, PageSize: 1, TotalCount: 2}, page1.Pagination)

	page2, _, err := svc.Generate(context.Background(), "Fall_2026", dto.GenerateSchedulesRequest{Courses: []string{"CS101"}, Page: 2})
	require.NoError(t, err)
	require.Len(t, page2.Groups, 1)
	assert.NotEqual(t, page1.Groups, page2.Groups)

	beyond, _, err := svc.Generate(context.Background(), "Fall_2026", dto.GenerateSchedulesRequest{Courses: []string{"CS101"}, Page: 9})
	require.NoError(t, err)
	assert.Empty(t, beyond.Groups)
	assert.Equal(t, 2, beyond.Pagination.TotalCount)
}
