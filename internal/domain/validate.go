package domain

import (
	"fmt"
	"strings"

	"trustscore/internal/domainerrors"
)

// Validate checks categorical values and id uniqueness at trust boundaries.
// The engines tolerate anything Validate rejects; this is for callers that
// want to refuse malformed records before they are stored or scored.
func (in Input) Validate() error {
	var problems []string
	assetIDs := make(map[string]bool, len(in.Assets))
	for i, a := range in.Assets {
		if a.ID == "" {
			problems = append(problems, fmt.Sprintf("assets[%d]: id is required", i))
		} else if assetIDs[a.ID] {
			problems = append(problems, fmt.Sprintf("assets[%s]: duplicate id", a.ID))
		}
		assetIDs[a.ID] = true
		if !a.Type.Valid() {
			problems = append(problems, fmt.Sprintf("assets[%s].type: unknown value %q", a.ID, a.Type))
		}
		if !a.FundingStatus.Valid() {
			problems = append(problems, fmt.Sprintf("assets[%s].funding_status: unknown value %q", a.ID, a.FundingStatus))
		}
		switch {
		case a.EstimatedValue == nil:
		case !a.HasValue():
			problems = append(problems, fmt.Sprintf("assets[%s].estimated_value: must be a finite number", a.ID))
		case *a.EstimatedValue < 0:
			problems = append(problems, fmt.Sprintf("assets[%s].estimated_value: must not be negative", a.ID))
		}
	}
	docIDs := make(map[string]bool, len(in.Documents))
	for i, d := range in.Documents {
		if d.ID == "" {
			problems = append(problems, fmt.Sprintf("documents[%d]: id is required", i))
		} else if docIDs[d.ID] {
			problems = append(problems, fmt.Sprintf("documents[%s]: duplicate id", d.ID))
		}
		docIDs[d.ID] = true
		if !d.DocType.Valid() {
			problems = append(problems, fmt.Sprintf("documents[%s].doc_type: unknown value %q", d.ID, d.DocType))
		}
		if !d.Status.Valid() {
			problems = append(problems, fmt.Sprintf("documents[%s].status: unknown value %q", d.ID, d.Status))
		}
	}
	for i, e := range in.Evidence {
		if e.ID == "" {
			problems = append(problems, fmt.Sprintf("evidence[%d]: id is required", i))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return domainerrors.New(domainerrors.CodeValidation, strings.Join(problems, "; "))
}
