package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/campusbuild/schedule-builder-api/internal/models"
	"github.com/campusbuild/schedule-builder-api/pkg/config"
)

// ratingAnnotator resolves an instructor rating, or nil when none is known.
// Rating lookups are best-effort: they must never fail a generation request.
type ratingAnnotator interface {
	RatingFor(ctx context.Context, instructor string) *models.InstructorRating
}

// RatingService fetches instructor ratings from an external provider and
// caches them far longer than schedule results, since ratings move slowly.
type RatingService struct {
	cfg    config.RatingsConfig
	client *http.Client
	cache  *CacheService
	logger *zap.Logger
}

// NewRatingService constructs a RatingService.
func NewRatingService(cfg config.RatingsConfig, cache *CacheService, logger *zap.Logger) *RatingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RatingService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		cache:  cache,
		logger: logger,
	}
}

// RatingFor returns the cached or freshly fetched rating for an instructor.
// Any failure, and any instructor the provider does not know, yields nil.
func (s *RatingService) RatingFor(ctx context.Context, instructor string) *models.InstructorRating {
	if s == nil || !s.cfg.Enabled || s.cfg.BaseURL == "" || instructor == "" {
		return nil
	}

	key := "ratings:" + instructor
	var cached models.InstructorRating
	if s.cache.Get(ctx, key, &cached) {
		return &cached
	}

	rating, err := s.fetch(ctx, instructor)
	if err != nil {
		s.logger.Debug("rating lookup failed", zap.String("instructor", instructor), zap.Error(err))
		return nil
	}
	if rating == nil {
		return nil
	}

	s.cache.Set(ctx, key, rating, s.cfg.CacheTTL)
	return rating
}

func (s *RatingService) fetch(ctx context.Context, instructor string) (*models.InstructorRating, error) {
	endpoint := fmt.Sprintf("%s?name=%s", s.cfg.BaseURL, url.QueryEscape(instructor))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rating provider returned status %d", resp.StatusCode)
	}

	var rating models.InstructorRating
	if err := json.NewDecoder(resp.Body).Decode(&rating); err != nil {
		return nil, fmt.Errorf("decode rating: %w", err)
	}
	rating.Instructor = instructor
	return &rating, nil
}
