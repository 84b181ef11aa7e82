package assessments

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"trustscore/internal/domain"
)

// loadTimeout bounds the parallel record fetch for one assessment.
const loadTimeout = 10 * time.Second

// load fetches the trust and its records in parallel. Each goroutine writes
// only its own slot of in.
func (s *Service) load(ctx context.Context, trustID string) (domain.Input, error) {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	var in domain.Input

	g.Go(func() error {
		t, err := s.trusts.GetTrust(ctx, trustID)
		if err != nil {
			return wrapStore(err, "load trust")
		}
		in.Trust = t
		return nil
	})
	g.Go(func() error {
		assets, err := s.trusts.ListAssets(ctx, trustID)
		if err != nil {
			return wrapStore(err, "load assets")
		}
		in.Assets = assets
		return nil
	})
	g.Go(func() error {
		docs, err := s.trusts.ListDocuments(ctx, trustID)
		if err != nil {
			return wrapStore(err, "load documents")
		}
		in.Documents = docs
		return nil
	})
	g.Go(func() error {
		evidence, err := s.trusts.ListEvidence(ctx, trustID)
		if err != nil {
			return wrapStore(err, "load evidence")
		}
		in.Evidence = evidence
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Input{}, err
	}
	return in, nil
}
