package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusbuild/schedule-builder-api/internal/catalog"
	"github.com/campusbuild/schedule-builder-api/internal/dto"
	"github.com/campusbuild/schedule-builder-api/internal/models"
	"github.com/campusbuild/schedule-builder-api/internal/repository"
	"github.com/campusbuild/schedule-builder-api/pkg/config"
	appErrors "github.com/campusbuild/schedule-builder-api/pkg/errors"
	"github.com/campusbuild/schedule-builder-api/pkg/jobs"
)

const refreshJobType = "catalog_refresh"

type subjectFetcher interface {
	FetchSubject(ctx context.Context, term, subject string) ([]models.Section, error)
}

type sectionStore interface {
	ReplaceSubject(ctx context.Context, term, subject string, sections []models.Section) error
	ListCourses(ctx context.Context, term string) ([]models.CourseOption, error)
	ListInstructors(ctx context.Context, term string) ([]string, error)
	CountByTerm(ctx context.Context, term string) (int, error)
}

type refreshPayload struct {
	JobID string
	Term  string
}

// CatalogService owns the stored catalog: it answers course and instructor
// listings, resolves the current term, and runs background refreshes that
// re-scrape every subject page.
type CatalogService struct {
	store   sectionStore
	fetcher subjectFetcher
	jobs    *repository.RefreshJobStore
	cache   *CacheService
	queue   *jobs.Queue
	cfg     config.CatalogConfig
	now     func() time.Time
	logger  *zap.Logger
}

// NewCatalogService builds a CatalogService and its background refresh queue.
func NewCatalogService(
	store sectionStore,
	fetcher subjectFetcher,
	jobStore *repository.RefreshJobStore,
	cache *CacheService,
	cfg config.CatalogConfig,
	logger *zap.Logger,
) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CatalogService{
		store:   store,
		fetcher: fetcher,
		jobs:    jobStore,
		cache:   cache,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
	}
	s.queue = jobs.NewQueue(refreshJobType, s.handleRefresh, jobs.QueueConfig{
		Workers: cfg.RefreshWorkers,
		Logger:  logger,
	})
	return s
}

// Start launches the refresh workers.
func (s *CatalogService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the refresh workers.
func (s *CatalogService) Stop() {
	s.queue.Stop()
}

// CurrentTerm reports the term the catalog currently serves.
func (s *CatalogService) CurrentTerm() dto.TermResponse {
	return s.TermFor(s.now())
}

// TermFor reports the term the catalog would serve on a given date.
func (s *CatalogService) TermFor(date time.Time) dto.TermResponse {
	term := catalog.CurrentTerm(date)
	return dto.TermResponse{
		Term:   term.Slug(),
		Label:  term.Label(),
		Season: string(term.Season),
		Year:   term.Year,
	}
}

// resolveTerm validates an explicit term slug, falling back to the current
// term when none is given.
func (s *CatalogService) resolveTerm(slug string) (string, error) {
	if slug == "" {
		return catalog.CurrentTerm(s.now()).Slug(), nil
	}
	term, err := models.ParseTermSlug(slug)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid term")
	}
	return term.Slug(), nil
}

// Courses lists the selectable courses of a term.
func (s *CatalogService) Courses(ctx context.Context, termSlug string) (*dto.CourseListResponse, error) {
	term, err := s.resolveTerm(termSlug)
	if err != nil {
		return nil, err
	}
	courses, err := s.store.ListCourses(ctx, term)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return &dto.CourseListResponse{Term: term, Courses: courses}, nil
}

// Instructors lists the instructor names of a term.
func (s *CatalogService) Instructors(ctx context.Context, termSlug string) (*dto.InstructorListResponse, error) {
	term, err := s.resolveTerm(termSlug)
	if err != nil {
		return nil, err
	}
	instructors, err := s.store.ListInstructors(ctx, term)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	return &dto.InstructorListResponse{Term: term, Instructors: instructors}, nil
}

// StartRefresh enqueues a background refresh of the term's catalog and
// returns the tracking job. A term refreshing already is not refreshed twice.
func (s *CatalogService) StartRefresh(ctx context.Context, termSlug string) (models.RefreshJob, error) {
	term, err := s.resolveTerm(termSlug)
	if err != nil {
		return models.RefreshJob{}, err
	}

	if active, running := s.jobs.Active(term); running {
		return active, appErrors.Clone(appErrors.ErrRefreshInProgress, fmt.Sprintf("refresh of %s already in progress", term))
	}

	job := models.RefreshJob{
		ID:            uuid.NewString(),
		Term:          term,
		Status:        models.RefreshPending,
		SubjectsTotal: len(s.cfg.SubjectCodes),
		StartedAt:     s.now().UTC(),
	}
	s.jobs.Put(job)

	err = s.queue.Enqueue(jobs.Job{
		ID:      job.ID,
		Type:    refreshJobType,
		Payload: refreshPayload{JobID: job.ID, Term: term},
	})
	if err != nil {
		s.jobs.Update(job.ID, func(j *models.RefreshJob) {
			j.Status = models.RefreshFailed
			j.LastError = err.Error()
		})
		return models.RefreshJob{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue catalog refresh")
	}

	return job, nil
}

// RefreshStatus returns the tracking job for a refresh.
func (s *CatalogService) RefreshStatus(id string) (models.RefreshJob, error) {
	job, ok := s.jobs.Get(id)
	if !ok {
		return models.RefreshJob{}, appErrors.Clone(appErrors.ErrNotFound, "refresh job not found")
	}
	return job, nil
}

func (s *CatalogService) handleRefresh(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(refreshPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", job.Payload)
	}

	s.jobs.Update(payload.JobID, func(j *models.RefreshJob) {
		j.Status = models.RefreshRunning
	})

	for _, subject := range s.cfg.SubjectCodes {
		if ctx.Err() != nil {
			s.finishRefresh(payload, models.RefreshFailed, ctx.Err().Error())
			return ctx.Err()
		}

		sections, err := s.fetcher.FetchSubject(ctx, payload.Term, subject)
		if err != nil {
			s.logger.Warn("subject fetch failed",
				zap.String("term", payload.Term),
				zap.String("subject", subject),
				zap.Error(err))
			s.jobs.Update(payload.JobID, func(j *models.RefreshJob) {
				j.SubjectsDone++
				j.LastError = err.Error()
			})
			continue
		}

		if err := s.store.ReplaceSubject(ctx, payload.Term, subject, sections); err != nil {
			s.logger.Error("subject store failed",
				zap.String("term", payload.Term),
				zap.String("subject", subject),
				zap.Error(err))
			s.jobs.Update(payload.JobID, func(j *models.RefreshJob) {
				j.SubjectsDone++
				j.LastError = err.Error()
			})
			continue
		}

		stored := len(sections)
		s.jobs.Update(payload.JobID, func(j *models.RefreshJob) {
			j.SubjectsDone++
			j.SectionsStored += stored
		})
	}

	// Sections changed, so every cached result for the term is stale.
	if err := s.cache.Invalidate(ctx, fmt.Sprintf("schedules:%s:*", payload.Term)); err != nil {
		s.logger.Warn("result cache invalidation failed", zap.String("term", payload.Term), zap.Error(err))
	}

	s.finishRefresh(payload, models.RefreshComplete, "")

	fields := []zap.Field{zap.String("term", payload.Term), zap.String("job_id", payload.JobID)}
	if total, err := s.store.CountByTerm(ctx, payload.Term); err == nil {
		fields = append(fields, zap.Int("sections_total", total))
	}
	s.logger.Info("catalog refresh finished", fields...)
	return nil
}

func (s *CatalogService) finishRefresh(payload refreshPayload, status models.RefreshStatus, lastError string) {
	finished := s.now().UTC()
	s.jobs.Update(payload.JobID, func(j *models.RefreshJob) {
		j.Status = status
		j.FinishedAt = &finished
		if lastError != "" {
			j.LastError = lastError
		}
	})
}
