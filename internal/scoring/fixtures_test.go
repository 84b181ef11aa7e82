package scoring

import "trustscore/internal/domain"

func money(v float64) *float64 { return &v }

func str(s string) *string { return &s }

func asset(id string, t domain.AssetType, value *float64, status domain.FundingStatus) domain.Asset {
	return domain.Asset{ID: id, TrustID: "t-1", Type: t, EstimatedValue: value, FundingStatus: status}
}

func doc(id string, t domain.DocumentType, status domain.DocumentStatus) domain.Document {
	return domain.Document{ID: id, TrustID: "t-1", DocType: t, Status: status}
}

func deed(id, assetID string, status domain.DocumentStatus) domain.Document {
	d := doc(id, domain.DocPropertyDeed, status)
	d.LinkedAssetID = &assetID
	return d
}

func completeBaseDocs() []domain.Document {
	return []domain.Document{
		doc("d-trust", domain.DocTrustDocument, domain.DocumentComplete),
		doc("d-will", domain.DocPourOverWill, domain.DocumentComplete),
		doc("d-poa", domain.DocFinancialPOA, domain.DocumentComplete),
		doc("d-hcd", domain.DocHealthcareDirective, domain.DocumentComplete),
		doc("d-cert", domain.DocCertificateOfTrust, domain.DocumentComplete),
	}
}

func healthyTrust() domain.TrustProfile {
	return domain.TrustProfile{
		ID:                    "t-1",
		Name:                  "Rivera Family Trust",
		Jurisdiction:          "CA",
		County:                str("Alameda"),
		GrantorNames:          []string{"Ana Rivera"},
		TrusteeNames:          []string{"Ana Rivera"},
		SuccessorTrusteeNames: []string{"Luis Rivera"},
		BeneficiaryNames:      []string{"Luis Rivera", "Marta Rivera"},
		Revocable:             true,
	}
}

// sampleInput is a realistic, partly funded estate used across tests.
func sampleInput() domain.Input {
	home := asset("a-home", domain.AssetRealEstate, money(850000), domain.FundingFunded)
	home.Name = "Primary residence"
	cabin := asset("a-cabin", domain.AssetRealEstate, money(240000), domain.FundingUnfunded)
	cabin.Name = "Lake cabin"
	brokerage := asset("a-brok", domain.AssetFinancial, money(310000), domain.FundingPartial)
	ira := asset("a-ira", domain.AssetRetirement, money(420000), domain.FundingUnfunded)
	ira.BeneficiaryDesignation = str("Luis  Rivera")
	ira.IntendedBeneficiary = str("luis rivera")
	life := asset("a-life", domain.AssetInsurance, money(500000), domain.FundingUnfunded)
	llc := asset("a-llc", domain.AssetBusiness, nil, domain.FundingUnknown)
	car := asset("a-car", domain.AssetPersonalProperty, money(0), domain.FundingUnfunded)

	return domain.Input{
		Trust:  healthyTrust(),
		Assets: []domain.Asset{home, cabin, brokerage, ira, life, llc, car},
		Documents: []domain.Document{
			doc("d-trust", domain.DocTrustDocument, domain.DocumentComplete),
			doc("d-will", domain.DocPourOverWill, domain.DocumentOutdated),
			doc("d-poa", domain.DocFinancialPOA, domain.DocumentComplete),
			doc("d-hcd", domain.DocHealthcareDirective, domain.DocumentNeedsReview),
			deed("d-deed-home", "a-home", domain.DocumentComplete),
		},
		Evidence: []domain.EvidenceItem{
			{ID: "e-1", AssetID: str("a-home"), Verified: true},
			{ID: "e-2", DocumentID: str("d-trust"), Verified: true},
			{ID: "e-3", AssetID: str("a-ira")},
		},
	}
}
