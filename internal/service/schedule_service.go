package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusbuild/schedule-builder-api/internal/dto"
	"github.com/campusbuild/schedule-builder-api/internal/models"
	"github.com/campusbuild/schedule-builder-api/internal/schedule"
	"github.com/campusbuild/schedule-builder-api/pkg/config"
	appErrors "github.com/campusbuild/schedule-builder-api/pkg/errors"
)

type sectionLister interface {
	ListByTerm(ctx context.Context, filter models.SectionFilter) ([]models.Section, error)
}

// ScheduleService runs the combination engine over the stored catalog, caches
// full results by criteria fingerprint and serves them page by page.
type ScheduleService struct {
	sections  sectionLister
	cache     *CacheService
	ratings   ratingAnnotator
	engine    *schedule.Engine
	metrics   *MetricsService
	cfg       config.SchedulesConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService builds a ScheduleService with sane defaults.
func NewScheduleService(
	sections sectionLister,
	cache *CacheService,
	ratings ratingAnnotator,
	metrics *MetricsService,
	cfg config.SchedulesConfig,
	validate *validator.Validate,
	logger *zap.Logger,
) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PatternPageSize <= 0 {
		cfg.PatternPageSize = 20
	}
	return &ScheduleService{
		sections:  sections,
		cache:     cache,
		ratings:   ratings,
		engine:    schedule.NewEngine(cfg.MaxCombinations),
		metrics:   metrics,
		cfg:       cfg,
		validator: validate,
		logger:    logger,
	}
}

func resultCacheKey(term, fingerprint string) string {
	return fmt.Sprintf("schedules:%s:%s", term, fingerprint)
}

// Generate returns one page of schedule patterns for the request, serving the
// full result from cache when the same criteria were seen before. The second
// return value reports whether the cache was hit.
func (s *ScheduleService) Generate(ctx context.Context, term string, req dto.GenerateSchedulesRequest) (*dto.SchedulesResponse, bool, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generation request")
	}

	criteria := req.ToCriteria()
	fingerprint := schedule.Fingerprint(criteria)
	key := resultCacheKey(term, fingerprint)

	var cached models.SchedulesResult
	if s.cache.Get(ctx, key, &cached) {
		return s.page(&cached, fingerprint, req.Page), true, nil
	}

	result, err := s.run(ctx, term, criteria)
	if err != nil {
		return nil, false, err
	}

	s.cache.Set(ctx, key, result, s.cfg.ResultTTL)
	return s.page(result, fingerprint, req.Page), false, nil
}

// Fingerprint computes the cache key a request would generate under, without
// running the engine, and reports whether a result is already cached for it.
func (s *ScheduleService) Fingerprint(ctx context.Context, term string, req dto.GenerateSchedulesRequest) (*dto.FingerprintResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generation request")
	}

	fingerprint := schedule.Fingerprint(req.ToCriteria())
	var cached models.SchedulesResult
	return &dto.FingerprintResponse{
		Term:        term,
		Fingerprint: fingerprint,
		Cached:      s.cache.Get(ctx, resultCacheKey(term, fingerprint), &cached),
	}, nil
}

// Lookup serves a previously generated result by fingerprint without
// recomputing on a miss.
func (s *ScheduleService) Lookup(ctx context.Context, term, fingerprint string, page int) (*dto.SchedulesResponse, error) {
	var cached models.SchedulesResult
	if !s.cache.Get(ctx, resultCacheKey(term, fingerprint), &cached) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no cached result for fingerprint")
	}
	return s.page(&cached, fingerprint, page), nil
}

func (s *ScheduleService) run(ctx context.Context, term string, criteria models.SelectionCriteria) (*models.SchedulesResult, error) {
	sections, err := s.sections.ListByTerm(ctx, models.SectionFilter{Term: term, CourseCodes: criteria.Courses})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog sections")
	}

	start := time.Now()
	engineResult, err := s.engine.Generate(sections, criteria)
	if err != nil {
		return nil, mapEngineError(err)
	}
	if s.metrics != nil {
		s.metrics.ObserveGeneration(engineResult.TotalValid, engineResult.TotalUnique, time.Since(start))
	}

	s.logger.Info("schedules generated",
		zap.String("term", term),
		zap.Strings("courses", criteria.Courses),
		zap.Int("total_valid", engineResult.TotalValid),
		zap.Int("total_unique", engineResult.TotalUnique),
		zap.Duration("duration", time.Since(start)))

	// An empty online bucket is dropped so cached and fresh results marshal
	// identically.
	online := engineResult.Online
	if len(online) == 0 {
		online = nil
	}

	return &models.SchedulesResult{
		Term:           term,
		OnlineSections: online,
		Groups:         s.renderGroups(ctx, engineResult.Groups),
		TotalValid:     engineResult.TotalValid,
		TotalUnique:    engineResult.TotalUnique,
	}, nil
}

func mapEngineError(err error) error {
	var noSections *schedule.NoSectionsError
	if errors.As(err, &noSections) {
		return appErrors.Clone(appErrors.ErrNoSectionsAvailable, noSections.Error())
	}
	var missingType *schedule.MissingMeetingTypeError
	if errors.As(err, &missingType) {
		return appErrors.Clone(appErrors.ErrMissingMeetingType, missingType.Error())
	}
	var tooMany *schedule.TooManyCombinationsError
	if errors.As(err, &tooMany) {
		return appErrors.Clone(appErrors.ErrValidation, tooMany.Error())
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "schedule generation failed")
}

func (s *ScheduleService) renderGroups(ctx context.Context, groups []schedule.Group) []models.PatternGroup {
	ratings := make(map[string]*models.InstructorRating)
	ratingFor := func(instructor string) *models.InstructorRating {
		if s.ratings == nil || instructor == "" {
			return nil
		}
		if rating, seen := ratings[instructor]; seen {
			return rating
		}
		rating := s.ratings.RatingFor(ctx, instructor)
		ratings[instructor] = rating
		return rating
	}

	rendered := make([]models.PatternGroup, 0, len(groups))
	for _, group := range groups {
		patterns := make([][]models.RenderedSection, 0, len(group.Combinations))
		for _, combination := range group.Combinations {
			row := make([]models.RenderedSection, 0, len(combination))
			for _, section := range combination {
				row = append(row, models.RenderedSection{
					CourseCode:  section.CourseCode,
					CourseTitle: section.CourseTitle,
					Units:       section.Units,
					SectionID:   section.SectionID,
					MeetingType: section.MeetingType,
					Days:        section.Days,
					Times:       section.Times,
					Location:    section.Location,
					Instructor:  section.Instructor,
					Rating:      ratingFor(section.Instructor),
				})
			}
			patterns = append(patterns, row)
		}
		rendered = append(rendered, models.PatternGroup{
			Signature: group.Signature,
			Schedules: patterns,
		})
	}
	return rendered
}

// page slices the ordered group list into one fixed-size page. Groups keep
// their stored order so the same page is stable across cache hits.
func (s *ScheduleService) page(result *models.SchedulesResult, fingerprint string, page int) *dto.SchedulesResponse {
	if page < 1 {
		page = 1
	}
	size := s.cfg.PatternPageSize

	total := len(result.Groups)
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return &dto.SchedulesResponse{
		Term:           result.Term,
		Fingerprint:    fingerprint,
		OnlineSections: result.OnlineSections,
		Groups:         result.Groups[start:end],
		TotalValid:     result.TotalValid,
		TotalUnique:    result.TotalUnique,
		Pagination: models.Pagination{
			Page:       page,
			PageSize:   size,
			TotalCount: total,
		},
	}
}
