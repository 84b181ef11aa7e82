package ports

//go:generate mockgen -source=ports.go -destination=mocks/ports.go -package=mocks

import (
	"context"

	"trustscore/internal/domain"
)

// Assessments queues, runs and tracks trust assessments.
type Assessments interface {
	Enqueue(ctx context.Context, trustID string) (jobID string, err error)
	Status(ctx context.Context, jobID string) (domain.Job, error)
	Run(ctx context.Context, trustID string) (domain.Assessment, error)
	Compute(in domain.Input) (domain.ComputeResult, domain.NBAResult)
}

// Reports serves the latest assessment for a trust.
type Reports interface {
	GetLatest(ctx context.Context, trustID string) (domain.Assessment, error)
}
