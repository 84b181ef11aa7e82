package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const estate = `{
  "trust": {"id": "t-1", "name": "Okafor Trust", "county": "Cook", "successor_trustee_names": ["Ada Okafor"]},
  "assets": [
    {"id": "a-1", "trust_id": "t-1", "type": "real_estate", "estimated_value": 300000, "funding_status": "unfunded"},
    {"id": "a-2", "trust_id": "t-1", "type": "financial", "estimated_value": 100000, "funding_status": "funded"}
  ],
  "documents": [{"id": "d-1", "trust_id": "t-1", "doc_type": "trust_document", "status": "complete"}],
  "evidence": []
}`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(estate), 0o600))

	out, err := execute(t, "", "score", "-f", path)
	require.NoError(t, err)

	var got struct {
		Result struct {
			FundingCoverageValuePct float64  `json:"funding_coverage_value_pct"`
			ProbateExposureAssets   []string `json:"probate_exposure_assets"`
		} `json:"result"`
		Actions struct {
			Top3 []struct {
				RuleID string `json:"rule_id"`
			} `json:"top3"`
		} `json:"actions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 25.0, got.Result.FundingCoverageValuePct)
	assert.Equal(t, []string{"a-1"}, got.Result.ProbateExposureAssets)
	require.NotEmpty(t, got.Actions.Top3)
	assert.Equal(t, "fund-real-estate", got.Actions.Top3[0].RuleID)
}

func TestScoreStdinCompact(t *testing.T) {
	out, err := execute(t, estate, "score", "-f", "-", "--compact")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestScoreRejectsInvalidInput(t *testing.T) {
	_, err := execute(t, `{"trust": {"id": "t-1"}, "assets": [{"id": "a-1", "type": "yacht", "funding_status": "funded"}]}`, "score", "-f", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
	assert.Contains(t, err.Error(), `unknown value "yacht"`)
}

func TestScoreRequiresFile(t *testing.T) {
	_, err := execute(t, "", "score")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"file" not set`)
}

func TestRules(t *testing.T) {
	out, err := execute(t, "", "rules")
	require.NoError(t, err)

	var rs struct {
		Version string           `json:"version"`
		Rules   []map[string]any `json:"rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	assert.Equal(t, "1.2.0", rs.Version)
	assert.Len(t, rs.Rules, 18)
}
