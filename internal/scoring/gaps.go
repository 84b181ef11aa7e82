package scoring

import (
	"fmt"

	"trustscore/internal/domain"
)

// DetectDataGaps lists missing information, grouped by kind and numbered in
// emission order.
func DetectDataGaps(in domain.Input) []domain.DataGap {
	var gaps []domain.DataGap
	add := func(ref domain.FieldPath, msg, hint string) {
		gaps = append(gaps, domain.NewDataGap(fmt.Sprintf("DG-%03d", len(gaps)+1), ref, msg, hint))
	}

	for _, a := range in.Assets {
		switch {
		case !a.HasValue():
			add(domain.AssetField(a.ID, "estimated_value"),
				fmt.Sprintf("Asset %s has no estimated value", label(a)),
				"Enter a current value from a recent statement, appraisal or tax assessment")
		case *a.EstimatedValue == 0:
			add(domain.AssetField(a.ID, "estimated_value"),
				fmt.Sprintf("Asset %s has an estimated value of zero", label(a)),
				"Confirm the asset is worthless or replace the zero with a current value")
		}
	}

	for _, a := range in.Assets {
		if a.FundingStatus != domain.FundingUnknown {
			continue
		}
		add(domain.AssetField(a.ID, "funding_status"),
			fmt.Sprintf("Funding status of asset %s is unknown", label(a)),
			"Check how the asset is titled and record whether it is held by the trust")
	}

	if !present(in.Trust.County) {
		add(domain.TrustField("county"),
			"The trust's county of administration is not recorded",
			"Record the county where the grantor resides; it determines deed recording and probate venue")
	}

	for _, a := range in.Assets {
		if !a.Type.PassesByDesignation() || present(a.BeneficiaryDesignation) {
			continue
		}
		add(domain.AssetField(a.ID, "beneficiary_designation"),
			fmt.Sprintf("No beneficiary designation is recorded for %s asset %s", a.Type, label(a)),
			"Request the current beneficiary designation form from the plan administrator or carrier")
	}

	for _, d := range in.Documents {
		if d.Status != domain.DocumentNeedsReview {
			continue
		}
		add(domain.DocumentField(d.ID, "status"),
			fmt.Sprintf("Document %s (%s) needs review", d.ID, d.DocType),
			"Have the attorney review the document and mark it complete or outdated")
	}

	return gaps
}
