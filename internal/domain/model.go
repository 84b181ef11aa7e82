package domain

import (
	"math"
	"strings"
)

// Record types read by the scoring engine. They are owned by the persistence
// layer; the engines never mutate them.

type TrustProfile struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Jurisdiction          string   `json:"jurisdiction"`
	County                *string  `json:"county,omitempty"`
	GrantorNames          []string `json:"grantor_names,omitempty"`
	TrusteeNames          []string `json:"trustee_names,omitempty"`
	SuccessorTrusteeNames []string `json:"successor_trustee_names,omitempty"`
	BeneficiaryNames      []string `json:"beneficiary_names,omitempty"`
	Revocable             bool     `json:"revocable"`
	Joint                 bool     `json:"joint"`
}

// HasSuccessorTrustee reports whether at least one named successor exists.
func (t TrustProfile) HasSuccessorTrustee() bool {
	for _, n := range t.SuccessorTrusteeNames {
		if strings.TrimSpace(n) != "" {
			return true
		}
	}
	return false
}

type Asset struct {
	ID                     string        `json:"id"`
	TrustID                string        `json:"trust_id"`
	Name                   string        `json:"name,omitempty"`
	Type                   AssetType     `json:"type"`
	EstimatedValue         *float64      `json:"estimated_value,omitempty"`
	FundingStatus          FundingStatus `json:"funding_status"`
	BeneficiaryDesignation *string       `json:"beneficiary_designation,omitempty"`
	IntendedBeneficiary    *string       `json:"intended_beneficiary,omitempty"`
}

// Value returns the estimated value, treating nil, NaN and infinities as zero.
func (a Asset) Value() float64 {
	if !a.HasValue() {
		return 0
	}
	return *a.EstimatedValue
}

// HasValue reports whether the estimated value is present and finite.
func (a Asset) HasValue() bool {
	return a.EstimatedValue != nil && !math.IsNaN(*a.EstimatedValue) && !math.IsInf(*a.EstimatedValue, 0)
}

func (a Asset) IsFunded() bool { return a.FundingStatus == FundingFunded }

type Document struct {
	ID            string         `json:"id"`
	TrustID       string         `json:"trust_id"`
	DocType       DocumentType   `json:"doc_type"`
	Status        DocumentStatus `json:"status"`
	LinkedAssetID *string        `json:"linked_asset_id,omitempty"`
}

func (d Document) IsComplete() bool { return d.Status == DocumentComplete }

// EvidenceItem supports an asset, a document, or both.
type EvidenceItem struct {
	ID         string  `json:"id"`
	AssetID    *string `json:"asset_id,omitempty"`
	DocumentID *string `json:"document_id,omitempty"`
	Verified   bool    `json:"verified"`
}

// Input groups everything the scoring engine reads for one computation.
type Input struct {
	Trust     TrustProfile   `json:"trust"`
	Assets    []Asset        `json:"assets"`
	Documents []Document     `json:"documents"`
	Evidence  []EvidenceItem `json:"evidence"`
}
