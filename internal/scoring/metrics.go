package scoring

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"trustscore/internal/domain"
)

// Metric is one calculator's output: the value, a formula that reproduces it
// and the records that contributed.
type Metric struct {
	Score       float64
	Formula     string
	AssetIDs    []string
	EvidenceIDs []string
}

// FundingCoverageByValue is the funded share of total asset value, retirement
// accounts excluded.
func FundingCoverageByValue(assets []domain.Asset) Metric {
	total := decimal.Zero
	funded := decimal.Zero
	eligible := 0
	ids := []string{}
	for _, a := range assets {
		if a.Type == domain.AssetRetirement {
			continue
		}
		eligible++
		v := decimal.NewFromFloat(a.Value())
		total = total.Add(v)
		if a.IsFunded() {
			funded = funded.Add(v)
			ids = append(ids, a.ID)
		}
	}
	if eligible == 0 {
		return Metric{Formula: "no eligible assets (retirement excluded) = 0", AssetIDs: ids}
	}
	if total.IsZero() {
		return Metric{Formula: "total eligible value is 0 (retirement excluded) = 0", AssetIDs: ids}
	}
	score := clampPct(percent(funded, total))
	return Metric{
		Score:    score,
		Formula:  fmt.Sprintf("funded_value / total_value * 100 = %s / %s * 100 = %s", funded, total, fmtNum(score)),
		AssetIDs: ids,
	}
}

// FundingCoverageByCount is the funded share of titled assets. Retirement and
// insurance pass by designation and are not counted.
func FundingCoverageByCount(assets []domain.Asset) Metric {
	eligible := 0
	funded := 0
	ids := []string{}
	for _, a := range assets {
		if a.Type.PassesByDesignation() {
			continue
		}
		eligible++
		if a.IsFunded() {
			funded++
			ids = append(ids, a.ID)
		}
	}
	if eligible == 0 {
		return Metric{Formula: "no eligible assets (retirement, insurance excluded) = 0", AssetIDs: ids}
	}
	score := clampPct(percent(decimal.NewFromInt(int64(funded)), decimal.NewFromInt(int64(eligible))))
	return Metric{
		Score:    score,
		Formula:  fmt.Sprintf("funded_count / eligible_count * 100 = %d / %d * 100 = %s", funded, eligible, fmtNum(score)),
		AssetIDs: ids,
	}
}

// ProbateExposure sums the value of titled assets that are not funded.
// Exposed assets are listed even when their value is unknown.
func ProbateExposure(assets []domain.Asset) Metric {
	sum := decimal.Zero
	ids := []string{}
	terms := []string{}
	for _, a := range assets {
		if a.Type.PassesByDesignation() || a.IsFunded() {
			continue
		}
		v := decimal.NewFromFloat(a.Value())
		if v.IsNegative() {
			v = decimal.Zero
		}
		sum = sum.Add(v)
		ids = append(ids, a.ID)
		terms = append(terms, v.String())
	}
	amount := toFloat(sum.Round(2))
	formula := "sum(estimated_value where funding_status != funded, retirement and insurance excluded) = "
	if len(terms) == 0 {
		formula += "0"
	} else {
		formula += strings.Join(terms, " + ") + " = " + fmtNum(amount)
	}
	return Metric{Score: amount, Formula: formula, AssetIDs: ids}
}

type requirement struct {
	docType domain.DocumentType
	weight  decimal.Decimal
	assetID string
}

var baseRequirements = []requirement{
	{docType: domain.DocTrustDocument, weight: decimal.NewFromInt(3)},
	{docType: domain.DocPourOverWill, weight: decimal.NewFromInt(2)},
	{docType: domain.DocFinancialPOA, weight: decimal.RequireFromString("2.5")},
	{docType: domain.DocHealthcareDirective, weight: decimal.NewFromInt(2)},
	{docType: domain.DocCertificateOfTrust, weight: decimal.RequireFromString("1.5")},
}

var deedWeight = decimal.NewFromInt(2)

func requirementsFor(assets []domain.Asset) []requirement {
	reqs := make([]requirement, 0, len(baseRequirements)+len(assets))
	reqs = append(reqs, baseRequirements...)
	for _, a := range assets {
		if a.Type == domain.AssetRealEstate {
			reqs = append(reqs, requirement{docType: domain.DocPropertyDeed, weight: deedWeight, assetID: a.ID})
		}
	}
	return reqs
}

func (r requirement) satisfiedBy(d domain.Document) bool {
	if d.DocType != r.docType || !d.IsComplete() {
		return false
	}
	if r.assetID == "" {
		return true
	}
	return d.LinkedAssetID != nil && *d.LinkedAssetID == r.assetID
}

// DocumentCompleteness is the weighted share of required documents that are
// complete. Each real-estate asset adds a deed requirement for that asset.
func DocumentCompleteness(assets []domain.Asset, docs []domain.Document) Metric {
	reqs := requirementsFor(assets)
	if len(reqs) == 0 {
		return Metric{Formula: "no required documents = 0", AssetIDs: []string{}}
	}
	earned := decimal.Zero
	total := decimal.Zero
	ids := []string{}
	for _, r := range reqs {
		total = total.Add(r.weight)
		for _, d := range docs {
			if r.satisfiedBy(d) {
				earned = earned.Add(r.weight)
				if r.assetID != "" {
					ids = append(ids, r.assetID)
				}
				break
			}
		}
	}
	score := clampPct(percent(earned, total))
	return Metric{
		Score: score,
		Formula: fmt.Sprintf("earned_weight / total_weight * 100 = %s / %s * 100 = %s (%d requirements)",
			earned, total, fmtNum(score), len(reqs)),
		AssetIDs: ids,
	}
}

// IncapacityReadiness awards flat points for each incapacity safeguard.
func IncapacityReadiness(trust domain.TrustProfile, docs []domain.Document) Metric {
	components := []struct {
		name   string
		points int
		met    bool
	}{
		{"healthcare_directive", 30, hasComplete(docs, domain.DocHealthcareDirective)},
		{"financial_poa", 30, hasComplete(docs, domain.DocFinancialPOA)},
		{"successor_trustee", 20, trust.HasSuccessorTrustee()},
		{"certificate_of_trust", 20, hasComplete(docs, domain.DocCertificateOfTrust)},
	}
	score := 0
	names := make([]string, 0, len(components))
	earned := make([]string, 0, len(components))
	for _, c := range components {
		names = append(names, fmt.Sprintf("%s(%d)", c.name, c.points))
		if c.met {
			score += c.points
			earned = append(earned, fmt.Sprint(c.points))
		} else {
			earned = append(earned, "0")
		}
	}
	return Metric{
		Score:    float64(score),
		Formula:  fmt.Sprintf("%s = %s = %d", strings.Join(names, " + "), strings.Join(earned, " + "), score),
		AssetIDs: []string{},
	}
}

// EvidenceCompleteness is the share of assets and complete documents backed
// by at least one evidence item.
func EvidenceCompleteness(assets []domain.Asset, docs []domain.Document, evidence []domain.EvidenceItem) Metric {
	assetIDs := make(map[string]bool, len(assets))
	for _, a := range assets {
		assetIDs[a.ID] = true
	}
	completeDocs := make(map[string]bool, len(docs))
	for _, d := range docs {
		if d.IsComplete() {
			completeDocs[d.ID] = true
		}
	}

	evidencedAssets := map[string]bool{}
	evidencedDocs := map[string]bool{}
	evidenceIDs := []string{}
	for _, e := range evidence {
		counted := false
		if e.AssetID != nil && assetIDs[*e.AssetID] {
			evidencedAssets[*e.AssetID] = true
			counted = true
		}
		if e.DocumentID != nil && completeDocs[*e.DocumentID] {
			evidencedDocs[*e.DocumentID] = true
			counted = true
		}
		if counted {
			evidenceIDs = append(evidenceIDs, e.ID)
		}
	}

	contributing := []string{}
	for _, a := range assets {
		if evidencedAssets[a.ID] {
			contributing = append(contributing, a.ID)
		}
	}

	denominator := len(assets) + len(completeDocs)
	numerator := len(contributing) + len(evidencedDocs)
	if denominator == 0 {
		return Metric{Formula: "no assets or complete documents = 0", AssetIDs: contributing, EvidenceIDs: evidenceIDs}
	}
	score := clampPct(percent(decimal.NewFromInt(int64(numerator)), decimal.NewFromInt(int64(denominator))))
	return Metric{
		Score: score,
		Formula: fmt.Sprintf("(evidenced_assets + evidenced_documents) / (assets + complete_documents) * 100 = (%d + %d) / (%d + %d) * 100 = %s",
			len(contributing), len(evidencedDocs), len(assets), len(completeDocs), fmtNum(score)),
		AssetIDs:    contributing,
		EvidenceIDs: evidenceIDs,
	}
}

func hasComplete(docs []domain.Document, t domain.DocumentType) bool {
	for _, d := range docs {
		if d.DocType == t && d.IsComplete() {
			return true
		}
	}
	return false
}

func fmtNum(x float64) string {
	return decimal.NewFromFloat(x).String()
}
