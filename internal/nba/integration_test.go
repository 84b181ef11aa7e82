package nba_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustscore/internal/domain"
	"trustscore/internal/nba"
	"trustscore/internal/rules"
	"trustscore/internal/scoring"
)

func money(v float64) *float64 { return &v }

func str(s string) *string { return &s }

func estate() domain.Input {
	a := func(id string, t domain.AssetType, v *float64, s domain.FundingStatus) domain.Asset {
		return domain.Asset{ID: id, TrustID: "t-1", Type: t, EstimatedValue: v, FundingStatus: s}
	}
	d := func(id string, t domain.DocumentType, s domain.DocumentStatus) domain.Document {
		return domain.Document{ID: id, TrustID: "t-1", DocType: t, Status: s}
	}
	ira := a("a-ira", domain.AssetRetirement, money(420000), domain.FundingUnfunded)
	ira.BeneficiaryDesignation = str("Luis Rivera")
	homeDeed := d("d-deed-home", domain.DocPropertyDeed, domain.DocumentComplete)
	homeDeed.LinkedAssetID = str("a-home")

	return domain.Input{
		Trust: domain.TrustProfile{
			ID:                    "t-1",
			Name:                  "Rivera Family Trust",
			County:                str("Alameda"),
			SuccessorTrusteeNames: []string{"Luis Rivera"},
		},
		Assets: []domain.Asset{
			a("a-home", domain.AssetRealEstate, money(850000), domain.FundingFunded),
			a("a-cabin", domain.AssetRealEstate, money(240000), domain.FundingUnfunded),
			a("a-brok", domain.AssetFinancial, money(310000), domain.FundingPartial),
			ira,
			a("a-life", domain.AssetInsurance, money(500000), domain.FundingUnfunded),
			a("a-llc", domain.AssetBusiness, nil, domain.FundingUnknown),
			a("a-car", domain.AssetPersonalProperty, money(0), domain.FundingUnfunded),
		},
		Documents: []domain.Document{
			d("d-trust", domain.DocTrustDocument, domain.DocumentComplete),
			d("d-will", domain.DocPourOverWill, domain.DocumentOutdated),
			d("d-poa", domain.DocFinancialPOA, domain.DocumentComplete),
			d("d-hcd", domain.DocHealthcareDirective, domain.DocumentNeedsReview),
			homeDeed,
		},
		Evidence: []domain.EvidenceItem{
			{ID: "e-1", AssetID: str("a-home")},
			{ID: "e-2", DocumentID: str("d-trust")},
			{ID: "e-3", AssetID: str("a-ira")},
		},
	}
}

func TestDefaultRulesAgainstEstate(t *testing.T) {
	rs, err := rules.Default()
	require.NoError(t, err)

	res := scoring.Compute(estate())
	out := nba.Evaluate(res, domain.TrustProfile{ID: "t-1"}, rs.Rules)

	require.Len(t, out.Top3, 3)
	assert.Equal(t, "fund-real-estate", out.Top3[0].RuleID)
	assert.Equal(t, 87.0, out.Top3[0].PriorityScore)
	assert.Equal(t, []string{"a-cabin"}, out.Top3[0].RelatedAssetIDs)
	assert.Equal(t, "record-deed", out.Top3[1].RuleID)
	assert.Equal(t, 77.25, out.Top3[1].PriorityScore)
	assert.Equal(t, "raise-funding-coverage", out.Top3[2].RuleID)
	assert.Equal(t, []string{"a-cabin", "a-brok", "a-llc", "a-car"}, out.Top3[2].RelatedAssetIDs)

	var backlog []string
	for _, a := range out.Backlog {
		backlog = append(backlog, a.RuleID)
	}
	assert.Equal(t, []string{
		"confirm-business-transfer",
		"collect-beneficiary-designations",
		"complete-core-documents",
		"confirm-funding-status",
		"execute-pour-over-will",
		"update-outdated-documents",
		"execute-healthcare-directive",
		"value-assets",
		"review-flagged-documents",
		"gather-evidence",
	}, backlog)

	for _, a := range append(out.Top3, out.Backlog...) {
		assert.NotEqual(t, "incapacity-review", a.RuleID)
		assert.Equal(t, "t-1", a.TrustID)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	rs, err := rules.Default()
	require.NoError(t, err)
	res := scoring.Compute(estate())

	first := nba.Evaluate(res, domain.TrustProfile{ID: "t-1"}, rs.Rules)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, nba.Evaluate(res, domain.TrustProfile{ID: "t-1"}, rs.Rules))
	}
}

func TestEvaluateOrderingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	res := domain.ComputeResult{RedFlags: []domain.RedFlag{{ID: "RF-001", Type: domain.FlagMissingPOA}}}

	build := func(scores []int) []domain.NBARule {
		out := make([]domain.NBARule, 0, len(scores))
		for i, s := range scores {
			v := float64(s)
			out = append(out, domain.NBARule{
				ID:               fmt.Sprintf("r-%03d", i),
				TriggerType:      domain.TriggerRisk,
				TriggerField:     string(domain.FlagMissingPOA),
				RiskReduction:    v,
				EquityProtected:  v,
				TimeScore:        v,
				DependencyUnlock: v,
				Steps:            []string{"step"},
				Enabled:          s%7 != 0,
			})
		}
		return out
	}

	// Few distinct scores so ties are common.
	scores := gen.SliceOf(gen.IntRange(0, 12))

	properties.Property("top3 holds at most three and nothing is lost", prop.ForAll(
		func(scores []int) bool {
			rs := build(scores)
			enabled := 0
			for _, r := range rs {
				if r.Enabled {
					enabled++
				}
			}
			out := nba.Evaluate(res, domain.TrustProfile{ID: "t"}, rs)
			return len(out.Top3) <= nba.TopN &&
				len(out.Top3)+len(out.Backlog) == enabled &&
				(len(out.Backlog) == 0 || len(out.Top3) == nba.TopN)
		},
		scores,
	))

	properties.Property("priorities descend and ties keep rule order", prop.ForAll(
		func(scores []int) bool {
			out := nba.Evaluate(res, domain.TrustProfile{ID: "t"}, build(scores))
			all := append(append([]domain.NBAAction{}, out.Top3...), out.Backlog...)
			for i := 1; i < len(all); i++ {
				prev, cur := all[i-1], all[i]
				if cur.PriorityScore > prev.PriorityScore {
					return false
				}
				if cur.PriorityScore == prev.PriorityScore && cur.RuleID < prev.RuleID {
					return false
				}
			}
			return true
		},
		scores,
	))

	properties.TestingRun(t)
}
