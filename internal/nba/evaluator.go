// Package nba turns a scoring result into a ranked list of next best actions.
// Evaluation is pure and deterministic: rules are checked in table order and
// equal priorities keep that order.
package nba

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"trustscore/internal/domain"
)

// TopN is the number of actions promoted ahead of the backlog.
const TopN = 3

var (
	weightRisk   = decimal.RequireFromString("0.45")
	weightEquity = decimal.RequireFromString("0.35")
	weightTime   = decimal.RequireFromString("0.10")
	weightUnlock = decimal.RequireFromString("0.10")
)

// Priority is the fixed weighted score of a rule, rounded half-up to two
// decimals.
func Priority(r domain.NBARule) float64 {
	p := decimal.NewFromFloat(r.RiskReduction).Mul(weightRisk).
		Add(decimal.NewFromFloat(r.EquityProtected).Mul(weightEquity)).
		Add(decimal.NewFromFloat(r.TimeScore).Mul(weightTime)).
		Add(decimal.NewFromFloat(r.DependencyUnlock).Mul(weightUnlock))
	f, _ := p.Round(2).Float64()
	return f
}

// Evaluate matches every enabled rule against res and splits the matches
// into the top three and a backlog, highest priority first.
func Evaluate(res domain.ComputeResult, trust domain.TrustProfile, rules []domain.NBARule) domain.NBAResult {
	actions := make([]domain.NBAAction, 0, len(rules))
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		check, ok := matchers[rule.TriggerType]
		if !ok {
			continue
		}
		m, matched := check(rule, res)
		if !matched {
			continue
		}
		actions = append(actions, newAction(rule, trust, m))
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].PriorityScore > actions[j].PriorityScore
	})

	out := domain.NBAResult{Top3: []domain.NBAAction{}, Backlog: []domain.NBAAction{}}
	for i, a := range actions {
		if i < TopN {
			out.Top3 = append(out.Top3, a)
		} else {
			out.Backlog = append(out.Backlog, a)
		}
	}
	return out
}

func newAction(rule domain.NBARule, trust domain.TrustProfile, m match) domain.NBAAction {
	a := domain.NBAAction{
		RuleID:             rule.ID,
		TrustID:            trust.ID,
		Title:              rule.Title,
		Category:           rule.Category,
		TriggerType:        rule.TriggerType,
		PriorityScore:      Priority(rule),
		Steps:              slices.Clone(rule.Steps),
		RequiredEvidence:   slices.Clone(rule.RequiredEvidence),
		DoneDefinition:     rule.DoneDefinition,
		EscalationNotes:    rule.EscalationNotes,
		RelatedAssetIDs:    m.assetIDs,
		RelatedDocumentIDs: m.documentIDs,
	}
	if a.Steps == nil {
		a.Steps = []string{}
	}
	if a.RelatedAssetIDs == nil {
		a.RelatedAssetIDs = []string{}
	}
	if a.RelatedDocumentIDs == nil {
		a.RelatedDocumentIDs = []string{}
	}
	return a
}
