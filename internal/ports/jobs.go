package ports

//go:generate mockgen -source=jobs.go -destination=mocks/jobs.go -package=mocks

import (
	"context"

	"trustscore/internal/domain"
)

type AssessmentJob struct {
	ID      string
	TrustID string
}

// JobRepository supports queueing, claiming and finishing assessment jobs.
type JobRepository interface {
	CreateJob(ctx context.Context, trustID string) (jobID string, err error)
	GetJob(ctx context.Context, jobID string) (domain.Job, error)
	ClaimNext(ctx context.Context) (job AssessmentJob, found bool, err error)
	StartJob(ctx context.Context, jobID string) (AssessmentJob, error)
	MarkCompleted(ctx context.Context, jobID, assessmentID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
}
