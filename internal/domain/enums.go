package domain

type AssetType string

const (
	AssetRealEstate       AssetType = "real_estate"
	AssetFinancial        AssetType = "financial"
	AssetInsurance        AssetType = "insurance"
	AssetBusiness         AssetType = "business"
	AssetRetirement       AssetType = "retirement"
	AssetPersonalProperty AssetType = "personal_property"
	AssetDigital          AssetType = "digital"
	AssetOther            AssetType = "other"
)

func (t AssetType) Valid() bool {
	switch t {
	case AssetRealEstate, AssetFinancial, AssetInsurance, AssetBusiness,
		AssetRetirement, AssetPersonalProperty, AssetDigital, AssetOther:
		return true
	}
	return false
}

// PassesByDesignation reports whether the asset transfers through a
// beneficiary designation rather than by title.
func (t AssetType) PassesByDesignation() bool {
	return t == AssetRetirement || t == AssetInsurance
}

type FundingStatus string

const (
	FundingFunded   FundingStatus = "funded"
	FundingUnfunded FundingStatus = "unfunded"
	FundingPartial  FundingStatus = "partial"
	FundingUnknown  FundingStatus = "unknown"
)

func (s FundingStatus) Valid() bool {
	switch s {
	case FundingFunded, FundingUnfunded, FundingPartial, FundingUnknown:
		return true
	}
	return false
}

type DocumentType string

const (
	DocTrustDocument          DocumentType = "trust_document"
	DocPourOverWill           DocumentType = "pour_over_will"
	DocFinancialPOA           DocumentType = "financial_poa"
	DocHealthcareDirective    DocumentType = "healthcare_directive"
	DocCertificateOfTrust     DocumentType = "certificate_of_trust"
	DocPropertyDeed           DocumentType = "property_deed"
	DocTrustAmendment         DocumentType = "trust_amendment"
	DocAssignmentOfAssets     DocumentType = "assignment_of_assets"
	DocBeneficiaryDesignation DocumentType = "beneficiary_designation_form"
	DocHIPAAAuthorization     DocumentType = "hipaa_authorization"
	DocGuardianshipNomination DocumentType = "guardianship_nomination"
	DocOther                  DocumentType = "other"
)

func (t DocumentType) Valid() bool {
	switch t {
	case DocTrustDocument, DocPourOverWill, DocFinancialPOA, DocHealthcareDirective,
		DocCertificateOfTrust, DocPropertyDeed, DocTrustAmendment, DocAssignmentOfAssets,
		DocBeneficiaryDesignation, DocHIPAAAuthorization, DocGuardianshipNomination, DocOther:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentComplete    DocumentStatus = "complete"
	DocumentMissing     DocumentStatus = "missing"
	DocumentOutdated    DocumentStatus = "outdated"
	DocumentNeedsReview DocumentStatus = "needs_review"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentComplete, DocumentMissing, DocumentOutdated, DocumentNeedsReview:
		return true
	}
	return false
}

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

type FlagType string

const (
	FlagUnfundedRealEstate         FlagType = "unfunded_real_estate"
	FlagDeedRecordingGap           FlagType = "deed_recording_gap"
	FlagBeneficiaryMismatch        FlagType = "beneficiary_mismatch"
	FlagMissingSuccessorTrustee    FlagType = "missing_successor_trustee"
	FlagMissingPOA                 FlagType = "missing_poa"
	FlagMissingHealthcareDirective FlagType = "missing_healthcare_directive"
	FlagBusinessTransferUnknown    FlagType = "business_transfer_unknown"
	FlagOutdatedDocuments          FlagType = "outdated_documents"
	FlagNoPourOverWill             FlagType = "no_pour_over_will"
)

func (t FlagType) Valid() bool {
	switch t {
	case FlagUnfundedRealEstate, FlagDeedRecordingGap, FlagBeneficiaryMismatch,
		FlagMissingSuccessorTrustee, FlagMissingPOA, FlagMissingHealthcareDirective,
		FlagBusinessTransferUnknown, FlagOutdatedDocuments, FlagNoPourOverWill:
		return true
	}
	return false
}
