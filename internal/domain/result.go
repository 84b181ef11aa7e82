package domain

import "fmt"

// Metric names double as keys of ComputeResult.Formulas and the
// contributing-id maps, and as threshold trigger fields.
type MetricName string

const (
	MetricFundingCoverageValue MetricName = "funding_coverage_value_pct"
	MetricFundingCoverageCount MetricName = "funding_coverage_count_pct"
	MetricProbateExposure      MetricName = "probate_exposure_amount"
	MetricDocumentCompleteness MetricName = "document_completeness_score"
	MetricIncapacityReadiness  MetricName = "incapacity_readiness_score"
	MetricEvidenceCompleteness MetricName = "evidence_completeness_pct"
)

// Metrics lists every metric in output order.
var Metrics = []MetricName{
	MetricFundingCoverageValue,
	MetricFundingCoverageCount,
	MetricProbateExposure,
	MetricDocumentCompleteness,
	MetricIncapacityReadiness,
	MetricEvidenceCompleteness,
}

// ComputeResult is the aggregate output of the scoring engine. Every field is
// consumed downstream, so encodings must keep all of them.
type ComputeResult struct {
	FundingCoverageValuePct float64                 `json:"funding_coverage_value_pct"`
	FundingCoverageCountPct float64                 `json:"funding_coverage_count_pct"`
	ProbateExposureAmount   float64                 `json:"probate_exposure_amount"`
	ProbateExposureAssets   []string                `json:"probate_exposure_assets"`
	DocumentCompleteness    float64                 `json:"document_completeness_score"`
	IncapacityReadiness     float64                 `json:"incapacity_readiness_score"`
	EvidenceCompletenessPct float64                 `json:"evidence_completeness_pct"`
	RedFlags                []RedFlag               `json:"red_flags"`
	DataGaps                []DataGap               `json:"data_gaps"`
	Formulas                map[MetricName]string   `json:"formulas"`
	ContributingAssetIDs    map[MetricName][]string `json:"contributing_asset_ids"`
	ContributingEvidenceIDs map[MetricName][]string `json:"contributing_evidence_ids"`
}

// MetricValue returns the numeric value of a named metric.
func (r ComputeResult) MetricValue(name MetricName) (float64, bool) {
	switch name {
	case MetricFundingCoverageValue:
		return r.FundingCoverageValuePct, true
	case MetricFundingCoverageCount:
		return r.FundingCoverageCountPct, true
	case MetricProbateExposure:
		return r.ProbateExposureAmount, true
	case MetricDocumentCompleteness:
		return r.DocumentCompleteness, true
	case MetricIncapacityReadiness:
		return r.IncapacityReadiness, true
	case MetricEvidenceCompleteness:
		return r.EvidenceCompletenessPct, true
	}
	return 0, false
}

type RedFlag struct {
	ID                 string   `json:"id"`
	Type               FlagType `json:"type"`
	Severity           Severity `json:"severity"`
	Message            string   `json:"message"`
	RelatedAssetIDs    []string `json:"related_asset_ids,omitempty"`
	RelatedDocumentIDs []string `json:"related_document_ids,omitempty"`
}

// DataGap carries both the rendered field path and its structured form.
type DataGap struct {
	ID             string    `json:"id"`
	Field          string    `json:"field"`
	Ref            FieldPath `json:"field_ref"`
	Message        string    `json:"message"`
	ResolutionHint string    `json:"resolution_hint"`
}

func NewDataGap(id string, ref FieldPath, message, hint string) DataGap {
	return DataGap{ID: id, Field: ref.String(), Ref: ref, Message: message, ResolutionHint: hint}
}

type Entity string

const (
	EntityTrust    Entity = "trust"
	EntityAsset    Entity = "assets"
	EntityDocument Entity = "documents"
)

// FieldPath identifies one field of one record.
type FieldPath struct {
	Entity Entity `json:"entity"`
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
}

func AssetField(id, name string) FieldPath {
	return FieldPath{Entity: EntityAsset, ID: id, Name: name}
}

func DocumentField(id, name string) FieldPath {
	return FieldPath{Entity: EntityDocument, ID: id, Name: name}
}

func TrustField(name string) FieldPath {
	return FieldPath{Entity: EntityTrust, Name: name}
}

// String renders the dotted form, e.g. assets[a-1].estimated_value or trust.county.
func (p FieldPath) String() string {
	if p.ID == "" {
		return fmt.Sprintf("%s.%s", p.Entity, p.Name)
	}
	return fmt.Sprintf("%s[%s].%s", p.Entity, p.ID, p.Name)
}
