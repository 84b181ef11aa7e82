package assessments

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"trustscore/internal/domain"
	"trustscore/internal/domainerrors"
	"trustscore/internal/metrics"
	"trustscore/internal/nba"
	"trustscore/internal/ports"
	"trustscore/internal/rules"
	"trustscore/internal/scoring"
)

// Service loads trust records, runs the scoring engine and the action
// evaluator, and stores each run as a new assessment version.
type Service struct {
	trusts      ports.TrustRepository
	assessments ports.AssessmentRepository
	jobs        ports.JobRepository
	rules       rules.RuleSet

	cache   ports.ReportCache
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
	now     func() time.Time
	newID   func() string
}

// Option configures the Service.
type Option func(*Service)

// WithCache sets the report cache invalidated after each run.
func WithCache(c ports.ReportCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides assessment id generation.
func WithIDGenerator(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

// New creates the service. Panics if a repository is nil.
func New(trusts ports.TrustRepository, assessments ports.AssessmentRepository, jobs ports.JobRepository, rs rules.RuleSet, opts ...Option) *Service {
	if trusts == nil {
		panic("assessments.New: trust repository is required")
	}
	if assessments == nil {
		panic("assessments.New: assessment repository is required")
	}
	if jobs == nil {
		panic("assessments.New: job repository is required")
	}
	s := &Service{
		trusts:      trusts,
		assessments: assessments,
		jobs:        jobs,
		rules:       rs,
		logger:      slog.Default(),
		tracer:      otel.Tracer("trustscore/assessments"),
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RuleSet returns the rule table the service evaluates.
func (s *Service) RuleSet() rules.RuleSet { return s.rules }

// Compute runs both engines on in without touching storage.
func (s *Service) Compute(in domain.Input) (domain.ComputeResult, domain.NBAResult) {
	res := scoring.Compute(in)
	return res, nba.Evaluate(res, in.Trust, s.rules.Rules)
}

// Enqueue queues an assessment for trustID and returns the job id.
func (s *Service) Enqueue(ctx context.Context, trustID string) (string, error) {
	trustID = strings.TrimSpace(trustID)
	if trustID == "" {
		return "", domainerrors.New(domainerrors.CodeBadRequest, "trust id is required")
	}
	if _, err := s.trusts.GetTrust(ctx, trustID); err != nil {
		return "", wrapStore(err, "load trust")
	}
	jobID, err := s.jobs.CreateJob(ctx, trustID)
	if err != nil {
		return "", wrapStore(err, "queue assessment")
	}
	s.logger.InfoContext(ctx, "assessment queued", "trust_id", trustID, "job_id", jobID)
	return jobID, nil
}

func (s *Service) Status(ctx context.Context, jobID string) (domain.Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return domain.Job{}, domainerrors.New(domainerrors.CodeBadRequest, "job id is required")
	}
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return domain.Job{}, wrapStore(err, "load job")
	}
	return job, nil
}

// Run assesses trustID now and persists the result as the next version.
func (s *Service) Run(ctx context.Context, trustID string) (a domain.Assessment, err error) {
	start := s.now()
	ctx, span := s.tracer.Start(ctx, "assessments.Run", trace.WithAttributes(attribute.String("trust_id", trustID)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if s.metrics != nil {
			outcome := "success"
			if err != nil {
				outcome = "error"
			}
			s.metrics.IncrementAssessments(outcome)
			s.metrics.ObserveAssessmentLatency(time.Since(start))
		}
	}()

	in, err := s.load(ctx, trustID)
	if err != nil {
		return domain.Assessment{}, err
	}
	res, actions := s.Compute(in)
	hash, err := InputsHash(in)
	if err != nil {
		return domain.Assessment{}, domainerrors.Wrap(err, domainerrors.CodeInternal, "hash assessment inputs")
	}

	saved, err := s.assessments.SaveAssessment(ctx, domain.Assessment{
		ID:             s.newID(),
		TrustID:        trustID,
		RuleSetVersion: s.rules.Version,
		InputsHash:     hash,
		Result:         res,
		Actions:        actions,
		CreatedAt:      s.now().UTC(),
	})
	if err != nil {
		return domain.Assessment{}, wrapStore(err, "save assessment")
	}
	span.SetAttributes(attribute.Int("version", saved.Version), attribute.String("inputs_hash", hash))

	if s.cache != nil {
		if cerr := s.cache.Invalidate(ctx, trustID); cerr != nil {
			s.logger.WarnContext(ctx, "report cache invalidation failed", "trust_id", trustID, "error", cerr)
		}
	}
	if s.metrics != nil {
		for _, f := range res.RedFlags {
			s.metrics.IncrementRedFlags(string(f.Severity))
		}
		s.metrics.ObserveActionsMatched(len(actions.Top3) + len(actions.Backlog))
	}
	s.logger.InfoContext(ctx, "assessment stored",
		"trust_id", trustID,
		"assessment_id", saved.ID,
		"version", saved.Version,
		"red_flags", len(res.RedFlags),
		"data_gaps", len(res.DataGaps),
	)
	return saved, nil
}

// wrapStore keeps not-found and other coded errors, and marks anything else
// internal.
func wrapStore(err error, msg string) error {
	var de *domainerrors.Error
	if errors.As(err, &de) {
		return err
	}
	return domainerrors.Wrap(err, domainerrors.CodeInternal, msg)
}
