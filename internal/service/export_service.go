package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusbuild/schedule-builder-api/internal/dto"
	"github.com/campusbuild/schedule-builder-api/internal/models"
	appErrors "github.com/campusbuild/schedule-builder-api/pkg/errors"
	"github.com/campusbuild/schedule-builder-api/pkg/export"
)

type pdfRenderer interface {
	Render(termLabel string, schedule []models.RenderedSection) ([]byte, error)
}

type exportArchive interface {
	Save(filename string, data []byte) (string, error)
}

// ExportService renders a chosen schedule as a downloadable PDF. When an
// archive is configured, each rendered PDF is also kept on disk.
type ExportService struct {
	pdf       pdfRenderer
	archive   exportArchive
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExportService constructs an ExportService. The archive may be nil.
func NewExportService(pdf pdfRenderer, archive exportArchive, validate *validator.Validate, logger *zap.Logger) *ExportService {
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{pdf: pdf, archive: archive, validator: validate, logger: logger}
}

// RenderPDF validates the request and returns the rendered PDF bytes.
func (s *ExportService) RenderPDF(req dto.ExportScheduleRequest) ([]byte, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}

	termLabel := req.Term
	if term, err := models.ParseTermSlug(req.Term); err == nil {
		termLabel = term.Label()
	}

	payload, err := s.pdf.Render(termLabel, req.Schedule)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule pdf")
	}

	if s.archive != nil {
		name := fmt.Sprintf("%s/%s.pdf", req.Term, uuid.NewString())
		if _, err := s.archive.Save(name, payload); err != nil {
			s.logger.Warn("schedule archive failed", zap.String("file", name), zap.Error(err))
		} else {
			s.logger.Debug("schedule archived", zap.String("file", name))
		}
	}

	s.logger.Debug("schedule exported", zap.String("term", req.Term), zap.Int("sections", len(req.Schedule)))
	return payload, nil
}
