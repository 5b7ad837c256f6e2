package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusbuild/schedule-builder-api/internal/dto"
	appErrors "github.com/campusbuild/schedule-builder-api/pkg/errors"
	"github.com/campusbuild/schedule-builder-api/pkg/response"
)

type scheduleService interface {
	Generate(ctx context.Context, term string, req dto.GenerateSchedulesRequest) (*dto.SchedulesResponse, bool, error)
	Fingerprint(ctx context.Context, term string, req dto.GenerateSchedulesRequest) (*dto.FingerprintResponse, error)
	Lookup(ctx context.Context, term, fingerprint string, page int) (*dto.SchedulesResponse, error)
}

type scheduleExporter interface {
	RenderPDF(req dto.ExportScheduleRequest) ([]byte, error)
}

type termResolver interface {
	CurrentTerm() dto.TermResponse
}

// ScheduleHandler exposes schedule generation endpoints.
type ScheduleHandler struct {
	schedules scheduleService
	exports   scheduleExporter
	terms     termResolver
}

// NewScheduleHandler builds a new handler.
func NewScheduleHandler(schedules scheduleService, exports scheduleExporter, terms termResolver) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, exports: exports, terms: terms}
}

func (h *ScheduleHandler) resolveTerm(c *gin.Context) string {
	if term := c.Query("term"); term != "" {
		return term
	}
	return h.terms.CurrentTerm().Term
}

// Generate godoc
// @Summary Generate conflict-free schedules for a course selection
// @Tags Schedules
// @Accept json
// @Produce json
// @Param term query string false "Term slug, e.g. Fall_2026"
// @Param payload body dto.GenerateSchedulesRequest true "Selection criteria"
// @Success 200 {object} response.Envelope
// @Router /schedules/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req dto.GenerateSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generation payload"))
		return
	}

	result, cacheHit, err := h.schedules.Generate(c.Request.Context(), h.resolveTerm(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, &result.Pagination, map[string]interface{}{"cache_hit": cacheHit})
}

// Fingerprint godoc
// @Summary Compute the result fingerprint for a selection without generating
// @Tags Schedules
// @Accept json
// @Produce json
// @Param term query string false "Term slug"
// @Param payload body dto.GenerateSchedulesRequest true "Selection criteria"
// @Success 200 {object} response.Envelope
// @Router /schedules/fingerprint [post]
func (h *ScheduleHandler) Fingerprint(c *gin.Context) {
	var req dto.GenerateSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generation payload"))
		return
	}

	result, err := h.schedules.Fingerprint(c.Request.Context(), h.resolveTerm(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Lookup godoc
// @Summary Fetch a previously generated result by fingerprint
// @Tags Schedules
// @Produce json
// @Param fingerprint path string true "Criteria fingerprint"
// @Param term query string false "Term slug"
// @Param page query int false "Page number"
// @Success 200 {object} response.Envelope
// @Router /schedules/{fingerprint} [get]
func (h *ScheduleHandler) Lookup(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.schedules.Lookup(c.Request.Context(), h.resolveTerm(c), c.Param("fingerprint"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, &result.Pagination)
}

// Export godoc
// @Summary Export a chosen schedule as PDF
// @Tags Schedules
// @Accept json
// @Produce application/pdf
// @Param payload body dto.ExportScheduleRequest true "Schedule to export"
// @Success 200 {file} binary
// @Router /schedules/export [post]
func (h *ScheduleHandler) Export(c *gin.Context) {
	var req dto.ExportScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}

	payload, err := h.exports.RenderPDF(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}
