// Package scoring computes the trust health assessment. Every function is
// pure: no I/O, no clock, no shared state. Identical input yields identical
// output, including formula strings and id order.
package scoring

import "trustscore/internal/domain"

// Compute runs all six calculators and both detectors.
func Compute(in domain.Input) domain.ComputeResult {
	value := FundingCoverageByValue(in.Assets)
	count := FundingCoverageByCount(in.Assets)
	probate := ProbateExposure(in.Assets)
	docs := DocumentCompleteness(in.Assets, in.Documents)
	incapacity := IncapacityReadiness(in.Trust, in.Documents)
	evidence := EvidenceCompleteness(in.Assets, in.Documents, in.Evidence)

	metrics := map[domain.MetricName]Metric{
		domain.MetricFundingCoverageValue: value,
		domain.MetricFundingCoverageCount: count,
		domain.MetricProbateExposure:      probate,
		domain.MetricDocumentCompleteness: docs,
		domain.MetricIncapacityReadiness:  incapacity,
		domain.MetricEvidenceCompleteness: evidence,
	}

	res := domain.ComputeResult{
		FundingCoverageValuePct: value.Score,
		FundingCoverageCountPct: count.Score,
		ProbateExposureAmount:   probate.Score,
		ProbateExposureAssets:   probate.AssetIDs,
		DocumentCompleteness:    docs.Score,
		IncapacityReadiness:     incapacity.Score,
		EvidenceCompletenessPct: evidence.Score,
		RedFlags:                DetectRedFlags(in),
		DataGaps:                DetectDataGaps(in),
		Formulas:                make(map[domain.MetricName]string, len(metrics)),
		ContributingAssetIDs:    make(map[domain.MetricName][]string, len(metrics)),
		ContributingEvidenceIDs: make(map[domain.MetricName][]string, len(metrics)),
	}
	for _, name := range domain.Metrics {
		m := metrics[name]
		res.Formulas[name] = m.Formula
		res.ContributingAssetIDs[name] = nonNil(m.AssetIDs)
		res.ContributingEvidenceIDs[name] = nonNil(m.EvidenceIDs)
	}
	if res.RedFlags == nil {
		res.RedFlags = []domain.RedFlag{}
	}
	if res.DataGaps == nil {
		res.DataGaps = []domain.DataGap{}
	}
	return res
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
