package scoring

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"trustscore/internal/domain"
)

// highValueThreshold splits critical from high unfunded real estate.
const highValueThreshold = 100000

// DetectRedFlags evaluates every risk condition and numbers the flags in
// detection order.
func DetectRedFlags(in domain.Input) []domain.RedFlag {
	var flags []domain.RedFlag
	add := func(f domain.RedFlag) {
		f.ID = fmt.Sprintf("RF-%03d", len(flags)+1)
		flags = append(flags, f)
	}

	for _, a := range in.Assets {
		if a.Type != domain.AssetRealEstate || a.IsFunded() {
			continue
		}
		sev := domain.SeverityHigh
		if a.Value() >= highValueThreshold {
			sev = domain.SeverityCritical
		}
		add(domain.RedFlag{
			Type:            domain.FlagUnfundedRealEstate,
			Severity:        sev,
			Message:         fmt.Sprintf("Real estate %s is not titled to the trust (funding status %s)", label(a), statusLabel(a.FundingStatus)),
			RelatedAssetIDs: []string{a.ID},
		})
	}

	for _, a := range in.Assets {
		if a.Type != domain.AssetRealEstate {
			continue
		}
		deed := requirement{docType: domain.DocPropertyDeed, assetID: a.ID}
		satisfied := false
		var pending []string
		for _, d := range in.Documents {
			if deed.satisfiedBy(d) {
				satisfied = true
				break
			}
			if d.DocType == domain.DocPropertyDeed && d.LinkedAssetID != nil && *d.LinkedAssetID == a.ID {
				pending = append(pending, d.ID)
			}
		}
		if satisfied {
			continue
		}
		add(domain.RedFlag{
			Type:               domain.FlagDeedRecordingGap,
			Severity:           domain.SeverityHigh,
			Message:            fmt.Sprintf("No complete recorded deed is linked to real estate %s", label(a)),
			RelatedAssetIDs:    []string{a.ID},
			RelatedDocumentIDs: pending,
		})
	}

	for _, a := range in.Assets {
		if !present(a.BeneficiaryDesignation) || !present(a.IntendedBeneficiary) {
			continue
		}
		if NormalizeName(*a.BeneficiaryDesignation) == NormalizeName(*a.IntendedBeneficiary) {
			continue
		}
		add(domain.RedFlag{
			Type:     domain.FlagBeneficiaryMismatch,
			Severity: domain.SeverityHigh,
			Message: fmt.Sprintf("Beneficiary on %s is %q but the plan intends %q",
				label(a), strings.TrimSpace(*a.BeneficiaryDesignation), strings.TrimSpace(*a.IntendedBeneficiary)),
			RelatedAssetIDs: []string{a.ID},
		})
	}

	if !in.Trust.HasSuccessorTrustee() {
		add(domain.RedFlag{
			Type:     domain.FlagMissingSuccessorTrustee,
			Severity: domain.SeverityCritical,
			Message:  "No successor trustee is named to take over administration",
		})
	}

	if f, missing := missingDocFlag(in.Documents, domain.DocFinancialPOA, domain.FlagMissingPOA,
		domain.SeverityCritical, "No complete financial power of attorney is on file"); missing {
		add(f)
	}
	if f, missing := missingDocFlag(in.Documents, domain.DocHealthcareDirective, domain.FlagMissingHealthcareDirective,
		domain.SeverityMedium, "No complete healthcare directive is on file"); missing {
		add(f)
	}

	for _, a := range in.Assets {
		if a.Type != domain.AssetBusiness || a.FundingStatus != domain.FundingUnknown {
			continue
		}
		add(domain.RedFlag{
			Type:            domain.FlagBusinessTransferUnknown,
			Severity:        domain.SeverityHigh,
			Message:         fmt.Sprintf("Transfer of business interest %s into the trust is unconfirmed", label(a)),
			RelatedAssetIDs: []string{a.ID},
		})
	}

	for _, d := range in.Documents {
		if d.Status != domain.DocumentOutdated {
			continue
		}
		add(domain.RedFlag{
			Type:               domain.FlagOutdatedDocuments,
			Severity:           domain.SeverityMedium,
			Message:            fmt.Sprintf("Document %s (%s) is outdated", d.ID, d.DocType),
			RelatedDocumentIDs: []string{d.ID},
		})
	}

	if f, missing := missingDocFlag(in.Documents, domain.DocPourOverWill, domain.FlagNoPourOverWill,
		domain.SeverityMedium, "No complete pour-over will is on file"); missing {
		add(f)
	}

	return flags
}

// missingDocFlag builds a flag when no complete document of type t exists.
// Incomplete documents of that type are attached for context.
func missingDocFlag(docs []domain.Document, t domain.DocumentType, ft domain.FlagType, sev domain.Severity, msg string) (domain.RedFlag, bool) {
	if hasComplete(docs, t) {
		return domain.RedFlag{}, false
	}
	var related []string
	for _, d := range docs {
		if d.DocType == t {
			related = append(related, d.ID)
		}
	}
	return domain.RedFlag{Type: ft, Severity: sev, Message: msg, RelatedDocumentIDs: related}, true
}

// NormalizeName folds a display name for comparison: NFC, lower case,
// surrounding space trimmed, internal runs of whitespace collapsed.
func NormalizeName(s string) string {
	s = norm.NFC.String(s)
	s = cases.Lower(language.Und).String(s)
	return strings.Join(strings.Fields(s), " ")
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func label(a domain.Asset) string {
	if a.Name != "" {
		return fmt.Sprintf("%q (%s)", a.Name, a.ID)
	}
	return a.ID
}

func statusLabel(s domain.FundingStatus) string {
	if s == "" {
		return "unset"
	}
	return string(s)
}
