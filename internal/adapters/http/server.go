package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trustscore/internal/domain"
	"trustscore/internal/domainerrors"
	"trustscore/internal/ports"
	"trustscore/internal/rules"
	"trustscore/internal/workers/assessrunner"
)

const (
	defaultWaitTimeout = 30 * time.Second
	maxWaitTimeout     = 5 * time.Minute
	maxBodyBytes       = 4 << 20
)

type Server struct {
	assessments ports.Assessments
	reports     ports.Reports
	jobs        ports.JobRepository
	rules       rules.RuleSet

	logger  *slog.Logger
	health  func(context.Context) error
	metrics http.Handler
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithHealthCheck makes /healthz report 503 when check fails.
func WithHealthCheck(check func(context.Context) error) Option {
	return func(s *Server) { s.health = check }
}

// WithMetricsHandler overrides the /metrics handler.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

func New(assessments ports.Assessments, reports ports.Reports, jobs ports.JobRepository, rs rules.RuleSet, opts ...Option) *Server {
	s := &Server{
		assessments: assessments,
		reports:     reports,
		jobs:        jobs,
		rules:       rs,
		logger:      slog.Default(),
		metrics:     promhttp.Handler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes returns the chi router with all endpoints mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.getHealthz)
	r.Handle("/metrics", s.metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/score", s.postScore)
		r.Get("/rules", s.getRules)
		r.Post("/trusts/{trustID}/assessments", s.postAssessment)
		r.Get("/trusts/{trustID}/assessments/latest", s.getLatestAssessment)
		r.Get("/jobs/{jobID}", s.getJob)
	})
	return r
}

type scoreResponse struct {
	Result  domain.ComputeResult `json:"result"`
	Actions domain.NBAResult     `json:"actions"`
}

type jobAccepted struct {
	JobID string `json:"job_id"`
}

type jobResponse struct {
	ID           string           `json:"id"`
	TrustID      string           `json:"trust_id"`
	Status       domain.JobStatus `json:"status"`
	Attempts     int              `json:"attempts"`
	Error        string           `json:"error,omitempty"`
	AssessmentID string           `json:"assessment_id,omitempty"`
}

func (s *Server) getHealthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		if err := s.health(r.Context()); err != nil {
			s.logger.WarnContext(r.Context(), "health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) postScore(w http.ResponseWriter, r *http.Request) {
	var in domain.Input
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		s.logger.WarnContext(r.Context(), "failed to decode request body", "error", err)
		writeError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}
	res, actions := s.assessments.Compute(in)
	writeJSON(w, http.StatusOK, scoreResponse{Result: res, Actions: actions})
}

func (s *Server) getRules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.rules)
}

func (s *Server) postAssessment(w http.ResponseWriter, r *http.Request) {
	trustID, ok := pathParam(w, r, "trustID")
	if !ok {
		return
	}
	var wait *bool
	var timeout *int
	if err := runtime.BindQueryParameter("form", true, false, "wait", r.URL.Query(), &wait); err != nil {
		writeError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid wait parameter"))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "timeout", r.URL.Query(), &timeout); err != nil {
		writeError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid timeout parameter"))
		return
	}

	ctx := r.Context()
	jobID, err := s.assessments.Enqueue(ctx, trustID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if wait == nil || !*wait {
		writeJSON(w, http.StatusAccepted, jobAccepted{JobID: jobID})
		return
	}

	d := defaultWaitTimeout
	if timeout != nil && *timeout > 0 {
		d = min(time.Duration(*timeout)*time.Second, maxWaitTimeout)
	}
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	a, err := assessrunner.ProcessInline(ctx, s.jobs, s.assessments, jobID, assessrunner.WithLogger(s.logger))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) getLatestAssessment(w http.ResponseWriter, r *http.Request) {
	trustID, ok := pathParam(w, r, "trustID")
	if !ok {
		return
	}
	a, err := s.reports.GetLatest(r.Context(), trustID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathParam(w, r, "jobID")
	if !ok {
		return
	}
	job, err := s.assessments.Status(r.Context(), jobID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jobResponse{
		ID:           job.ID,
		TrustID:      job.TrustID,
		Status:       job.Status,
		Attempts:     job.Attempts,
		Error:        job.Error,
		AssessmentID: job.AssessmentID,
	})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if domainerrors.CodeOf(err) == domainerrors.CodeInternal {
		s.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, err)
}

// pathParam binds a required simple-style path parameter.
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid "+name))
		return "", false
	}
	return v, true
}
