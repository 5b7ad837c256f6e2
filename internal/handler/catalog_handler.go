package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbuild/schedule-builder-api/internal/dto"
	"github.com/campusbuild/schedule-builder-api/internal/models"
	appErrors "github.com/campusbuild/schedule-builder-api/pkg/errors"
	"github.com/campusbuild/schedule-builder-api/pkg/response"
)

type catalogService interface {
	CurrentTerm() dto.TermResponse
	TermFor(date time.Time) dto.TermResponse
	Courses(ctx context.Context, termSlug string) (*dto.CourseListResponse, error)
	Instructors(ctx context.Context, termSlug string) (*dto.InstructorListResponse, error)
	StartRefresh(ctx context.Context, termSlug string) (models.RefreshJob, error)
	RefreshStatus(id string) (models.RefreshJob, error)
}

// CatalogHandler exposes catalog lookup and refresh endpoints.
type CatalogHandler struct {
	service catalogService
}

// NewCatalogHandler builds a new handler.
func NewCatalogHandler(service catalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Term godoc
// @Summary Report the term the catalog currently serves
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Param date query string false "Override date, YYYY-MM-DD"
// @Router /term [get]
func (h *CatalogHandler) Term(c *gin.Context) {
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD"))
			return
		}
		response.JSON(c, http.StatusOK, h.service.TermFor(date), nil)
		return
	}
	response.JSON(c, http.StatusOK, h.service.CurrentTerm(), nil)
}

// Courses godoc
// @Summary List selectable courses for a term
// @Tags Catalog
// @Produce json
// @Param term query string false "Term slug, e.g. Fall_2026"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) Courses(c *gin.Context) {
	courses, err := h.service.Courses(c.Request.Context(), c.Query("term"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// Instructors godoc
// @Summary List instructor names for a term
// @Tags Catalog
// @Produce json
// @Param term query string false "Term slug"
// @Success 200 {object} response.Envelope
// @Router /instructors [get]
func (h *CatalogHandler) Instructors(c *gin.Context) {
	instructors, err := h.service.Instructors(c.Request.Context(), c.Query("term"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, instructors, nil)
}

// Refresh godoc
// @Summary Start a background catalog refresh
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body dto.RefreshRequest false "Optional explicit term"
// @Success 202 {object} response.Envelope
// @Security BearerAuth
// @Router /catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid refresh payload"))
			return
		}
	}

	job, err := h.service.StartRefresh(c.Request.Context(), req.Term)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, job)
}

// RefreshStatus godoc
// @Summary Report the progress of a catalog refresh
// @Tags Catalog
// @Produce json
// @Param id path string true "Refresh job ID"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /catalog/refresh/{id} [get]
func (h *CatalogHandler) RefreshStatus(c *gin.Context) {
	job, err := h.service.RefreshStatus(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}
