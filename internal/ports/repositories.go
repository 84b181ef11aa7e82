package ports

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

import (
	"context"

	"trustscore/internal/domain"
)

// TrustRepository reads the records an assessment is computed from. Each
// listing is ordered by record id.
type TrustRepository interface {
	GetTrust(ctx context.Context, trustID string) (domain.TrustProfile, error)
	ListAssets(ctx context.Context, trustID string) ([]domain.Asset, error)
	ListDocuments(ctx context.Context, trustID string) ([]domain.Document, error)
	ListEvidence(ctx context.Context, trustID string) ([]domain.EvidenceItem, error)
}

// AssessmentRepository stores versioned assessments.
type AssessmentRepository interface {
	// SaveAssessment assigns the next version for the trust and returns the
	// stored record.
	SaveAssessment(ctx context.Context, a domain.Assessment) (domain.Assessment, error)
	LatestAssessment(ctx context.Context, trustID string) (domain.Assessment, error)
}

// ReportCache holds the latest assessment per trust.
type ReportCache interface {
	Get(ctx context.Context, trustID string) (a domain.Assessment, found bool, err error)
	Set(ctx context.Context, a domain.Assessment) error
	Invalidate(ctx context.Context, trustID string) error
}
