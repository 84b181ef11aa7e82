package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustscore/internal/domain"
)

func flagsOf(flags []domain.RedFlag, t domain.FlagType) []domain.RedFlag {
	var out []domain.RedFlag
	for _, f := range flags {
		if f.Type == t {
			out = append(out, f)
		}
	}
	return out
}

func TestUnfundedRealEstateSeverity(t *testing.T) {
	cases := []struct {
		name  string
		value *float64
		want  domain.Severity
	}{
		{"at threshold", money(100000), domain.SeverityCritical},
		{"just below", money(99999.99), domain.SeverityHigh},
		{"unknown value", nil, domain.SeverityHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := domain.Input{
				Trust:  healthyTrust(),
				Assets: []domain.Asset{asset("h1", domain.AssetRealEstate, tc.value, domain.FundingPartial)},
			}
			got := flagsOf(DetectRedFlags(in), domain.FlagUnfundedRealEstate)
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0].Severity)
			assert.Equal(t, []string{"h1"}, got[0].RelatedAssetIDs)
		})
	}
}

func TestDeedRecordingGap(t *testing.T) {
	in := domain.Input{
		Trust: healthyTrust(),
		Assets: []domain.Asset{
			asset("h1", domain.AssetRealEstate, money(1), domain.FundingFunded),
			asset("h2", domain.AssetRealEstate, money(1), domain.FundingFunded),
		},
		Documents: []domain.Document{
			deed("deed-1", "h1", domain.DocumentComplete),
			deed("deed-2", "h2", domain.DocumentNeedsReview),
		},
	}
	got := flagsOf(DetectRedFlags(in), domain.FlagDeedRecordingGap)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"h2"}, got[0].RelatedAssetIDs)
	assert.Equal(t, []string{"deed-2"}, got[0].RelatedDocumentIDs)
}

func TestBeneficiaryMismatch(t *testing.T) {
	withNames := func(designated, intended *string) domain.Input {
		a := asset("ira", domain.AssetRetirement, money(1), domain.FundingUnfunded)
		a.BeneficiaryDesignation = designated
		a.IntendedBeneficiary = intended
		return domain.Input{Trust: healthyTrust(), Assets: []domain.Asset{a}}
	}

	t.Run("case and spacing are ignored", func(t *testing.T) {
		in := withNames(str("  MARTA   Rivera "), str("marta rivera"))
		assert.Empty(t, flagsOf(DetectRedFlags(in), domain.FlagBeneficiaryMismatch))
	})

	t.Run("different people are flagged", func(t *testing.T) {
		in := withNames(str("Marta Rivera"), str("Luis Rivera"))
		got := flagsOf(DetectRedFlags(in), domain.FlagBeneficiaryMismatch)
		require.Len(t, got, 1)
		assert.Equal(t, domain.SeverityHigh, got[0].Severity)
	})

	t.Run("needs both names", func(t *testing.T) {
		assert.Empty(t, flagsOf(DetectRedFlags(withNames(str("Marta"), nil)), domain.FlagBeneficiaryMismatch))
		assert.Empty(t, flagsOf(DetectRedFlags(withNames(str(" "), str("Luis"))), domain.FlagBeneficiaryMismatch))
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "josé de la cruz", NormalizeName("  JOSÉ  de la\tCruz "))
	assert.Equal(t, NormalizeName("Jos\u00e9"), NormalizeName("Jose\u0301"))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestMissingSafeguardFlags(t *testing.T) {
	trust := healthyTrust()
	trust.SuccessorTrusteeNames = []string{" "}
	in := domain.Input{
		Trust: trust,
		Documents: []domain.Document{
			doc("poa", domain.DocFinancialPOA, domain.DocumentOutdated),
			doc("will", domain.DocPourOverWill, domain.DocumentMissing),
		},
	}
	flags := DetectRedFlags(in)

	var types []domain.FlagType
	for _, f := range flags {
		types = append(types, f.Type)
	}
	assert.Equal(t, []domain.FlagType{
		domain.FlagMissingSuccessorTrustee,
		domain.FlagMissingPOA,
		domain.FlagMissingHealthcareDirective,
		domain.FlagOutdatedDocuments,
		domain.FlagNoPourOverWill,
	}, types)
	assert.Equal(t, domain.SeverityCritical, flags[0].Severity)
	assert.Equal(t, domain.SeverityCritical, flags[1].Severity)
	assert.Equal(t, []string{"poa"}, flags[1].RelatedDocumentIDs)
	assert.Equal(t, domain.SeverityMedium, flags[2].Severity)
	assert.Empty(t, flags[2].RelatedDocumentIDs)
	assert.Equal(t, []string{"will"}, flags[4].RelatedDocumentIDs)
}

func TestHealthyTrustHasNoFlags(t *testing.T) {
	in := domain.Input{
		Trust: healthyTrust(),
		Assets: []domain.Asset{
			asset("h1", domain.AssetRealEstate, money(600000), domain.FundingFunded),
			asset("biz", domain.AssetBusiness, money(50000), domain.FundingFunded),
		},
		Documents: append(completeBaseDocs(), deed("deed-1", "h1", domain.DocumentComplete)),
	}
	assert.Empty(t, DetectRedFlags(in))
}

func TestDataGaps(t *testing.T) {
	t.Run("nil and zero values read differently", func(t *testing.T) {
		in := domain.Input{
			Trust: healthyTrust(),
			Assets: []domain.Asset{
				asset("a1", domain.AssetFinancial, nil, domain.FundingFunded),
				asset("a2", domain.AssetFinancial, money(0), domain.FundingFunded),
				asset("a3", domain.AssetFinancial, money(10), domain.FundingFunded),
			},
		}
		gaps := DetectDataGaps(in)
		require.Len(t, gaps, 2)
		assert.Equal(t, "assets[a1].estimated_value", gaps[0].Field)
		assert.Contains(t, gaps[0].Message, "no estimated value")
		assert.Equal(t, "assets[a2].estimated_value", gaps[1].Field)
		assert.Contains(t, gaps[1].Message, "zero")
		assert.Equal(t, domain.AssetField("a2", "estimated_value"), gaps[1].Ref)
		assert.NotEmpty(t, gaps[1].ResolutionHint)
	})

	t.Run("blank county is missing", func(t *testing.T) {
		for _, county := range []*string{nil, str(""), str("   ")} {
			trust := healthyTrust()
			trust.County = county
			gaps := DetectDataGaps(domain.Input{Trust: trust})
			require.Len(t, gaps, 1)
			assert.Equal(t, "trust.county", gaps[0].Field)
			assert.Equal(t, domain.TrustField("county"), gaps[0].Ref)
		}
	})

	t.Run("designations only for retirement and insurance", func(t *testing.T) {
		ira := asset("ira", domain.AssetRetirement, money(1), domain.FundingFunded)
		policy := asset("policy", domain.AssetInsurance, money(1), domain.FundingFunded)
		policy.BeneficiaryDesignation = str("Marta")
		acct := asset("acct", domain.AssetFinancial, money(1), domain.FundingFunded)
		gaps := DetectDataGaps(domain.Input{Trust: healthyTrust(), Assets: []domain.Asset{ira, policy, acct}})
		require.Len(t, gaps, 1)
		assert.Equal(t, "assets[ira].beneficiary_designation", gaps[0].Field)
	})

	t.Run("documents needing review", func(t *testing.T) {
		in := domain.Input{
			Trust: healthyTrust(),
			Documents: []domain.Document{
				doc("d1", domain.DocTrustDocument, domain.DocumentNeedsReview),
				doc("d2", domain.DocPourOverWill, domain.DocumentOutdated),
			},
		}
		gaps := DetectDataGaps(in)
		require.Len(t, gaps, 1)
		assert.Equal(t, "documents[d1].status", gaps[0].Field)
		assert.Equal(t, "DG-001", gaps[0].ID)
	})
}
