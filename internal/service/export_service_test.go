package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusbuild/schedule-builder-api/internal/dto"
	"github.com/campusbuild/schedule-builder-api/internal/models"
	appErrors "github.com/campusbuild/schedule-builder-api/pkg/errors"
	"github.com/campusbuild/schedule-builder-api/pkg/storage"
)

func TestExportServiceRenderPDF(t *testing.T) {
	svc := NewExportService(nil, nil, nil, zap.NewNop())

	payload, err := svc.RenderPDF(dto.ExportScheduleRequest{
		Term: "Fall_2026",
		Schedule: []models.RenderedSection{
			{
				CourseCode: "CS101", SectionID: "01", MeetingType: models.MeetingLecture,
				Days: []string{"Monday", "Wednesday"}, Times: "09:00AM-10:00AM",
				Location: "ENG 101", Instructor: "Prof. A",
			},
			{
				CourseCode: "MATH200", SectionID: "11", MeetingType: models.MeetingLecture,
				Days: []string{"Tuesday", "Thursday"}, Times: "11:00AM-12:00PM",
				Location: "LA5 150", Instructor: "Prof. C",
			},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestExportServiceArchivesRenderedPDF(t *testing.T) {
	archive, err := storage.NewExportArchive(t.TempDir())
	require.NoError(t, err)
	svc := NewExportService(nil, archive, nil, zap.NewNop())

	_, err = svc.RenderPDF(dto.ExportScheduleRequest{
		Term: "Fall_2026",
		Schedule: []models.RenderedSection{{
			CourseCode: "CS101", SectionID: "01", MeetingType: models.MeetingLecture,
			Days: []string{"Monday"}, Times: "09:00AM-10:00AM",
		}},
	})
	require.NoError(t, err)

	matches, err := filepath.Glob(archive.Path(filepath.Join("Fall_2026", "*.pdf")))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestExportServiceValidation(t *testing.T) {
	svc := NewExportService(nil, nil, nil, zap.NewNop())

	_, err := svc.RenderPDF(dto.ExportScheduleRequest{Term: "Fall_2026"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
