package reports

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"trustscore/internal/domain"
	"trustscore/internal/domainerrors"
	"trustscore/internal/metrics"
	"trustscore/internal/ports"
)

// Service serves the latest assessment per trust, reading through the cache
// when one is configured.
type Service struct {
	assessments ports.AssessmentRepository
	cache       ports.ReportCache
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

type Option func(*Service)

func WithCache(c ports.ReportCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func New(assessments ports.AssessmentRepository, opts ...Option) *Service {
	s := &Service{assessments: assessments, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetLatest returns the newest assessment for trustID. Cache errors are
// logged and fall through to the repository.
func (s *Service) GetLatest(ctx context.Context, trustID string) (domain.Assessment, error) {
	if strings.TrimSpace(trustID) == "" {
		return domain.Assessment{}, domainerrors.New(domainerrors.CodeBadRequest, "trust id is required")
	}

	if s.cache != nil {
		a, found, err := s.cache.Get(ctx, trustID)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "report cache read failed", "trust_id", trustID, "error", err)
		case found:
			s.recordLookup(true)
			return a, nil
		}
		s.recordLookup(false)
	}

	a, err := s.assessments.LatestAssessment(ctx, trustID)
	if err != nil {
		var de *domainerrors.Error
		if errors.As(err, &de) {
			return domain.Assessment{}, err
		}
		return domain.Assessment{}, domainerrors.Wrap(err, domainerrors.CodeInternal, "load latest assessment")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, a); err != nil {
			s.logger.WarnContext(ctx, "report cache fill failed", "trust_id", trustID, "error", err)
		}
	}
	return a, nil
}

func (s *Service) recordLookup(hit bool) {
	if s.metrics != nil {
		s.metrics.IncrementCacheLookup(hit)
	}
}
