// Package rules loads and validates the versioned next-best-action rule table.
package rules

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"trustscore/internal/domain"
	"trustscore/internal/domainerrors"
)

//go:embed ruleset.yaml
var defaultTable []byte

// SupportedVersions is the range of rule table versions this build reads.
const SupportedVersions = ">=1.0.0, <2.0.0"

type RuleSet struct {
	Version string           `json:"version" yaml:"version"`
	Rules   []domain.NBARule `json:"rules" yaml:"rules"`
}

// Enabled returns the number of enabled rules.
func (rs RuleSet) Enabled() int {
	n := 0
	for _, r := range rs.Rules {
		if r.Enabled {
			n++
		}
	}
	return n
}

// Default returns the table compiled into the binary.
func Default() (RuleSet, error) {
	return Load(defaultTable)
}

// LoadFile reads a rule table from disk.
func LoadFile(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("read rule set %s: %w", path, err)
	}
	return Load(data)
}

// Load parses and validates a YAML rule table.
func Load(data []byte) (RuleSet, error) {
	var rs RuleSet
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil && !errors.Is(err, io.EOF) {
		return RuleSet{}, domainerrors.Wrap(err, domainerrors.CodeValidation, fmt.Sprintf("parse rule set: %v", err))
	}
	if err := rs.Validate(); err != nil {
		return RuleSet{}, err
	}
	return rs, nil
}

// Validate checks the version gate and every rule.
func (rs RuleSet) Validate() error {
	var problems []string
	v, err := semver.NewVersion(rs.Version)
	if err != nil {
		problems = append(problems, fmt.Sprintf("version %q: %v", rs.Version, err))
	} else {
		c, _ := semver.NewConstraint(SupportedVersions)
		if !c.Check(v) {
			problems = append(problems, fmt.Sprintf("version %s outside supported range %s", v, SupportedVersions))
		}
	}

	seen := make(map[string]bool, len(rs.Rules))
	for i, r := range rs.Rules {
		ref := r.ID
		if ref == "" {
			ref = fmt.Sprintf("#%d", i)
			problems = append(problems, fmt.Sprintf("rule %s: id is required", ref))
		} else if seen[r.ID] {
			problems = append(problems, fmt.Sprintf("rule %s: duplicate id", ref))
		}
		seen[r.ID] = true
		problems = append(problems, checkRule(ref, r)...)
	}
	if len(problems) == 0 {
		return nil
	}
	return domainerrors.New(domainerrors.CodeValidation, "invalid rule set: "+strings.Join(problems, "; "))
}

func checkRule(ref string, r domain.NBARule) []string {
	var problems []string
	if !r.TriggerType.Valid() {
		problems = append(problems, fmt.Sprintf("rule %s: unknown trigger_type %q", ref, r.TriggerType))
	}
	if strings.TrimSpace(r.TriggerField) == "" {
		problems = append(problems, fmt.Sprintf("rule %s: trigger_field is required", ref))
	}
	if r.TriggerType == domain.TriggerThreshold {
		if !r.TriggerOperator.Valid() {
			problems = append(problems, fmt.Sprintf("rule %s: unknown trigger_operator %q", ref, r.TriggerOperator))
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(r.TriggerValue), 64); err != nil {
			problems = append(problems, fmt.Sprintf("rule %s: trigger_value %q is not a number", ref, r.TriggerValue))
		}
		if _, ok := (domain.ComputeResult{}).MetricValue(domain.MetricName(r.TriggerField)); !ok {
			problems = append(problems, fmt.Sprintf("rule %s: unknown metric %q", ref, r.TriggerField))
		}
	}
	factors := map[string]float64{
		"risk_reduction":    r.RiskReduction,
		"equity_protected":  r.EquityProtected,
		"time_score":        r.TimeScore,
		"dependency_unlock": r.DependencyUnlock,
	}
	for _, name := range []string{"risk_reduction", "equity_protected", "time_score", "dependency_unlock"} {
		if v := factors[name]; v < 0 || v > 100 {
			problems = append(problems, fmt.Sprintf("rule %s: %s %v outside 0-100", ref, name, v))
		}
	}
	if len(r.Steps) == 0 {
		problems = append(problems, fmt.Sprintf("rule %s: at least one step is required", ref))
	}
	return problems
}
