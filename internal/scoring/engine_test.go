package scoring

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustscore/internal/domain"
)

func TestComputeSampleEstate(t *testing.T) {
	res := Compute(sampleInput())

	assert.Equal(t, 44.74, res.FundingCoverageValuePct)
	assert.Equal(t, 20.0, res.FundingCoverageCountPct)
	assert.Equal(t, 550000.0, res.ProbateExposureAmount)
	assert.Equal(t, []string{"a-cabin", "a-brok", "a-llc", "a-car"}, res.ProbateExposureAssets)
	assert.Equal(t, 50.0, res.DocumentCompleteness)
	assert.Equal(t, 50.0, res.IncapacityReadiness)
	assert.Equal(t, 30.0, res.EvidenceCompletenessPct)

	var flagTypes []domain.FlagType
	for _, f := range res.RedFlags {
		flagTypes = append(flagTypes, f.Type)
	}
	assert.Equal(t, []domain.FlagType{
		domain.FlagUnfundedRealEstate,
		domain.FlagDeedRecordingGap,
		domain.FlagMissingHealthcareDirective,
		domain.FlagBusinessTransferUnknown,
		domain.FlagOutdatedDocuments,
		domain.FlagNoPourOverWill,
	}, flagTypes)
	assert.Equal(t, domain.SeverityCritical, res.RedFlags[0].Severity)

	var fields []string
	for _, g := range res.DataGaps {
		fields = append(fields, g.Field)
	}
	assert.Equal(t, []string{
		"assets[a-llc].estimated_value",
		"assets[a-car].estimated_value",
		"assets[a-llc].funding_status",
		"assets[a-life].beneficiary_designation",
		"documents[d-hcd].status",
	}, fields)

	for _, name := range domain.Metrics {
		assert.NotEmpty(t, res.Formulas[name], "formula for %s", name)
		assert.NotNil(t, res.ContributingAssetIDs[name], "asset ids for %s", name)
		assert.NotNil(t, res.ContributingEvidenceIDs[name], "evidence ids for %s", name)
	}
	assert.Equal(t, []string{"a-home"}, res.ContributingAssetIDs[domain.MetricFundingCoverageValue])
	assert.Equal(t, []string{"e-1", "e-2", "e-3"}, res.ContributingEvidenceIDs[domain.MetricEvidenceCompleteness])
}

func TestComputeIsDeterministic(t *testing.T) {
	in := sampleInput()
	first := Compute(in)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again := Compute(in)
		require.Equal(t, first, again)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		require.Equal(t, string(firstJSON), string(againJSON))
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	in := sampleInput()
	before, err := json.Marshal(in)
	require.NoError(t, err)

	Compute(in)

	after, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, string(before), string(after))
}

func TestFlagAndGapIDsAreUnique(t *testing.T) {
	res := Compute(sampleInput())

	seen := map[string]bool{}
	for _, f := range res.RedFlags {
		require.NotEmpty(t, f.ID)
		require.False(t, seen[f.ID], "duplicate flag id %s", f.ID)
		seen[f.ID] = true
	}
	for _, g := range res.DataGaps {
		require.NotEmpty(t, g.ID)
		require.False(t, seen[g.ID], "duplicate gap id %s", g.ID)
		seen[g.ID] = true
	}
	assert.Equal(t, "RF-001", res.RedFlags[0].ID)
	assert.Equal(t, "DG-001", res.DataGaps[0].ID)
}

func TestContributingIDsReferenceInput(t *testing.T) {
	in := sampleInput()
	in.Evidence = append(in.Evidence, domain.EvidenceItem{ID: "e-orphan", AssetID: str("a-gone")})
	res := Compute(in)

	assets := map[string]bool{}
	for _, a := range in.Assets {
		assets[a.ID] = true
	}
	evidence := map[string]bool{}
	for _, e := range in.Evidence {
		evidence[e.ID] = true
	}
	docs := map[string]bool{}
	for _, d := range in.Documents {
		docs[d.ID] = true
	}

	for name, ids := range res.ContributingAssetIDs {
		for _, id := range ids {
			assert.True(t, assets[id], "%s references unknown asset %s", name, id)
		}
	}
	for name, ids := range res.ContributingEvidenceIDs {
		for _, id := range ids {
			assert.True(t, evidence[id], "%s references unknown evidence %s", name, id)
		}
	}
	assert.NotContains(t, res.ContributingEvidenceIDs[domain.MetricEvidenceCompleteness], "e-orphan")
	for _, f := range res.RedFlags {
		for _, id := range f.RelatedAssetIDs {
			assert.True(t, assets[id])
		}
		for _, id := range f.RelatedDocumentIDs {
			assert.True(t, docs[id])
		}
	}
}

func TestComputeEmptyInput(t *testing.T) {
	res := Compute(domain.Input{})

	assert.Zero(t, res.FundingCoverageValuePct)
	assert.Zero(t, res.FundingCoverageCountPct)
	assert.Zero(t, res.ProbateExposureAmount)
	assert.Empty(t, res.ProbateExposureAssets)
	assert.Zero(t, res.DocumentCompleteness)
	assert.Zero(t, res.IncapacityReadiness)
	assert.Zero(t, res.EvidenceCompletenessPct)
	assert.NotNil(t, res.RedFlags)
	assert.NotNil(t, res.DataGaps)

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"probate_exposure_assets":[]`)
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{2.675, 2.68},
		{27.272727, 27.27},
		{13.636363, 13.64},
		{99.995, 100},
		{0, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Round2(tc.in), "Round2(%v)", tc.in)
	}
}

func TestComputeNonFiniteValues(t *testing.T) {
	in := domain.Input{
		Trust: domain.TrustProfile{ID: "t-1"},
		Assets: []domain.Asset{
			{ID: "a-nan", Type: domain.AssetRealEstate, EstimatedValue: money(math.NaN()), FundingStatus: domain.FundingUnfunded},
			{ID: "a-inf", Type: domain.AssetFinancial, EstimatedValue: money(math.Inf(1)), FundingStatus: domain.FundingFunded},
			{ID: "a-ok", Type: domain.AssetFinancial, EstimatedValue: money(100000), FundingStatus: domain.FundingUnfunded},
		},
	}

	var res domain.ComputeResult
	require.NotPanics(t, func() { res = Compute(in) })

	assert.Equal(t, 0.0, res.FundingCoverageValuePct)
	assert.Equal(t, 100000.0, res.ProbateExposureAmount)
	_, err := json.Marshal(res)
	require.NoError(t, err)

	var valueGaps []string
	for _, g := range res.DataGaps {
		if g.Ref.Name == "estimated_value" {
			valueGaps = append(valueGaps, g.Ref.ID)
		}
	}
	assert.Equal(t, []string{"a-nan", "a-inf"}, valueGaps)
}
