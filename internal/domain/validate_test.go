package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustscore/internal/domainerrors"
)

func value(v float64) *float64 { return &v }

func TestValidate(t *testing.T) {
	valid := Input{
		Trust: TrustProfile{ID: "t-1"},
		Assets: []Asset{
			{ID: "a-1", Type: AssetRealEstate, FundingStatus: FundingUnfunded, EstimatedValue: value(1)},
			{ID: "a-2", Type: AssetDigital, FundingStatus: FundingUnknown},
		},
		Documents: []Document{{ID: "d-1", DocType: DocPourOverWill, Status: DocumentOutdated}},
		Evidence:  []EvidenceItem{{ID: "e-1"}},
	}
	require.NoError(t, valid.Validate())
	require.NoError(t, Input{}.Validate())

	cases := []struct {
		name   string
		mutate func(*Input)
		want   string
	}{
		{"unknown asset type", func(in *Input) { in.Assets[0].Type = "yacht" }, `assets[a-1].type: unknown value "yacht"`},
		{"unknown funding status", func(in *Input) { in.Assets[1].FundingStatus = "" }, `assets[a-2].funding_status: unknown value ""`},
		{"negative value", func(in *Input) { in.Assets[0].EstimatedValue = value(-5) }, "assets[a-1].estimated_value: must not be negative"},
		{"NaN value", func(in *Input) { in.Assets[0].EstimatedValue = value(math.NaN()) }, "assets[a-1].estimated_value: must be a finite number"},
		{"infinite value", func(in *Input) { in.Assets[0].EstimatedValue = value(math.Inf(1)) }, "assets[a-1].estimated_value: must be a finite number"},
		{"duplicate asset id", func(in *Input) { in.Assets[1].ID = "a-1" }, "assets[a-1]: duplicate id"},
		{"missing asset id", func(in *Input) { in.Assets[0].ID = "" }, "assets[0]: id is required"},
		{"unknown doc type", func(in *Input) { in.Documents[0].DocType = "will" }, `documents[d-1].doc_type: unknown value "will"`},
		{"unknown doc status", func(in *Input) { in.Documents[0].Status = "signed" }, `documents[d-1].status: unknown value "signed"`},
		{"missing evidence id", func(in *Input) { in.Evidence[0].ID = "" }, "evidence[0]: id is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			in.Assets = append([]Asset(nil), valid.Assets...)
			in.Documents = append([]Document(nil), valid.Documents...)
			in.Evidence = append([]EvidenceItem(nil), valid.Evidence...)
			tc.mutate(&in)

			err := in.Validate()
			require.Error(t, err)
			assert.True(t, domainerrors.HasCode(err, domainerrors.CodeValidation))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateJoinsProblems(t *testing.T) {
	in := Input{Assets: []Asset{{ID: "a-1", Type: "yacht", FundingStatus: "maybe"}}}
	err := in.Validate()
	require.Error(t, err)
	assert.Equal(t, `assets[a-1].type: unknown value "yacht"; assets[a-1].funding_status: unknown value "maybe"`, err.Error())
}

func TestAssetValue(t *testing.T) {
	assert.Zero(t, Asset{}.Value())
	assert.Zero(t, Asset{EstimatedValue: value(math.NaN())}.Value())
	assert.Zero(t, Asset{EstimatedValue: value(math.Inf(-1))}.Value())
	assert.Equal(t, 1250.5, Asset{EstimatedValue: value(1250.5)}.Value())

	assert.False(t, Asset{EstimatedValue: value(math.NaN())}.HasValue())
	assert.True(t, Asset{EstimatedValue: value(0)}.HasValue())
}

func TestHasSuccessorTrustee(t *testing.T) {
	assert.False(t, TrustProfile{}.HasSuccessorTrustee())
	assert.False(t, TrustProfile{SuccessorTrusteeNames: []string{"  ", ""}}.HasSuccessorTrustee())
	assert.True(t, TrustProfile{SuccessorTrusteeNames: []string{"", "Ada Okafor"}}.HasSuccessorTrustee())
}
