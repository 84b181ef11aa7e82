package assessrunner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"trustscore/internal/domain"
	"trustscore/internal/metrics"
	"trustscore/internal/ports"
)

// Processor performs the assessment work for a job's trust.
type Processor interface {
	Run(ctx context.Context, trustID string) (domain.Assessment, error)
}

type options struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Run starts worker goroutines that claim queued jobs and process them. It
// blocks until ctx is cancelled and every in-flight job has finished.
func Run(ctx context.Context, repo ports.JobRepository, processor Processor, concurrency int, pollInterval time.Duration, opts ...Option) {
	if concurrency < 1 {
		return
	}
	o := newOptions(opts)
	jobsCh := make(chan ports.AssessmentJob, concurrency)
	var wg sync.WaitGroup

	// dispatcher loop
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobsCh)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			for {
				job, found, err := repo.ClaimNext(ctx)
				if err != nil {
					if ctx.Err() == nil {
						o.logger.ErrorContext(ctx, "job claim failed", "error", err)
					}
					break
				}
				if !found {
					break
				}
				select {
				case jobsCh <- job:
				case <-ctx.Done():
					// claimed but never started
					if err := repo.MarkFailed(context.WithoutCancel(ctx), job.ID, "shutdown before start"); err != nil {
						o.logger.ErrorContext(ctx, "mark failed", "job_id", job.ID, "error", err)
					}
					o.logger.WarnContext(ctx, "job abandoned on shutdown", "job_id", job.ID)
					return
				}
			}
		}
	}()

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			for job := range jobsCh {
				finish(ctx, repo, processor, job, o, "worker", idx)
			}
		}(i)
	}
	wg.Wait()
}

func finish(ctx context.Context, repo ports.JobRepository, processor Processor, job ports.AssessmentJob, o options, attrs ...any) (domain.Assessment, error) {
	log := o.logger.With(append(attrs, "job_id", job.ID, "trust_id", job.TrustID)...)
	a, err := processor.Run(ctx, job.TrustID)
	// the job row must leave running even when ctx is already done
	storeCtx := context.WithoutCancel(ctx)
	if err != nil {
		if merr := repo.MarkFailed(storeCtx, job.ID, err.Error()); merr != nil {
			log.ErrorContext(ctx, "mark failed", "error", merr)
		}
		o.count(domain.JobFailed)
		log.WarnContext(ctx, "job failed", "error", err)
		return domain.Assessment{}, err
	}
	if err := repo.MarkCompleted(storeCtx, job.ID, a.ID); err != nil {
		log.ErrorContext(ctx, "mark completed", "error", err)
		return a, err
	}
	o.count(domain.JobCompleted)
	log.InfoContext(ctx, "job completed", "assessment_id", a.ID, "version", a.Version)
	return a, nil
}

func (o options) count(status domain.JobStatus) {
	if o.metrics != nil {
		o.metrics.IncrementJobs(string(status))
	}
}

// ProcessInline starts a queued job and processes it synchronously using the
// same logic as the background workers.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor Processor, jobID string, opts ...Option) (domain.Assessment, error) {
	job, err := repo.StartJob(ctx, jobID)
	if err != nil {
		return domain.Assessment{}, err
	}
	return finish(ctx, repo, processor, job, newOptions(opts), "inline", true)
}
