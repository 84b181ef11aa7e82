package nba

import (
	"math"
	"strconv"
	"strings"

	"trustscore/internal/domain"
)

// match is the outcome of one trigger check.
type match struct {
	assetIDs    []string
	documentIDs []string
}

// matcher decides whether a rule fires against a result.
type matcher func(rule domain.NBARule, res domain.ComputeResult) (match, bool)

// matchers is the closed set of trigger handlers. Rules with a trigger type
// outside this table never match.
var matchers = map[domain.TriggerType]matcher{
	domain.TriggerRisk:      matchFlag,
	domain.TriggerConflict:  matchFlag,
	domain.TriggerGap:       matchGap,
	domain.TriggerMissing:   matchMissing,
	domain.TriggerThreshold: matchThreshold,
}

func matchFlag(rule domain.NBARule, res domain.ComputeResult) (match, bool) {
	var m match
	found := false
	for _, f := range res.RedFlags {
		if string(f.Type) != rule.TriggerField {
			continue
		}
		found = true
		m.assetIDs = appendUnique(m.assetIDs, f.RelatedAssetIDs...)
		m.documentIDs = appendUnique(m.documentIDs, f.RelatedDocumentIDs...)
	}
	return m, found
}

// matchGap accepts a bare field name ("estimated_value") or an
// entity-qualified one ("assets.funding_status") and compares it with the
// structured path of each gap.
func matchGap(rule domain.NBARule, res domain.ComputeResult) (match, bool) {
	sel, ok := parseSelector(rule.TriggerField)
	if !ok {
		return match{}, false
	}
	var m match
	found := false
	for _, g := range res.DataGaps {
		ref := gapRef(g)
		if !sel.matches(ref) {
			continue
		}
		found = true
		switch ref.Entity {
		case domain.EntityAsset:
			m.assetIDs = appendUnique(m.assetIDs, ref.ID)
		case domain.EntityDocument:
			m.documentIDs = appendUnique(m.documentIDs, ref.ID)
		}
	}
	return m, found
}

func matchMissing(rule domain.NBARule, res domain.ComputeResult) (match, bool) {
	for _, g := range res.DataGaps {
		if gapField(g) == rule.TriggerField {
			return match{}, true
		}
	}
	return match{}, false
}

func matchThreshold(rule domain.NBARule, res domain.ComputeResult) (match, bool) {
	metric := domain.MetricName(rule.TriggerField)
	value, ok := res.MetricValue(metric)
	if !ok {
		return match{}, false
	}
	limit, ok := parseThreshold(rule.TriggerValue)
	if !ok {
		return match{}, false
	}
	if !compare(value, rule.TriggerOperator, limit) {
		return match{}, false
	}
	var m match
	if metric == domain.MetricFundingCoverageValue {
		m.assetIDs = appendUnique(nil, res.ProbateExposureAssets...)
	}
	return m, true
}

func compare(value float64, op domain.Operator, limit float64) bool {
	switch op {
	case domain.OpLessThan:
		return value < limit
	case domain.OpGreaterThan:
		return value > limit
	case domain.OpEqual:
		return value == limit
	}
	return false
}

func parseThreshold(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// gapField is the rendered path of a gap. Field is authoritative; Ref is
// used only when Field is blank.
func gapField(g domain.DataGap) string {
	if g.Field != "" {
		return g.Field
	}
	if g.Ref.Name == "" {
		return ""
	}
	return g.Ref.String()
}

// gapRef is the structured path of a gap, parsed from Field when Ref is unset.
func gapRef(g domain.DataGap) domain.FieldPath {
	if g.Ref.Name != "" {
		return g.Ref
	}
	return parseFieldPath(g.Field)
}

// parseFieldPath reads "trust.county" or "assets[a-1].funding_status".
// Anything else yields the zero path.
func parseFieldPath(s string) domain.FieldPath {
	head, name, ok := strings.Cut(s, ".")
	if !ok || name == "" {
		return domain.FieldPath{}
	}
	entity, id := head, ""
	if i := strings.IndexByte(head, '['); i >= 0 && strings.HasSuffix(head, "]") {
		entity, id = head[:i], head[i+1:len(head)-1]
	}
	return domain.FieldPath{Entity: domain.Entity(entity), ID: id, Name: name}
}

type selector struct {
	entity domain.Entity
	name   string
}

func parseSelector(s string) (selector, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return selector{}, false
	}
	entity, name, qualified := strings.Cut(s, ".")
	if !qualified {
		return selector{name: s}, true
	}
	switch e := domain.Entity(entity); e {
	case domain.EntityTrust, domain.EntityAsset, domain.EntityDocument:
		if name == "" {
			return selector{}, false
		}
		return selector{entity: e, name: name}, true
	}
	return selector{}, false
}

func (s selector) matches(p domain.FieldPath) bool {
	if s.entity != "" && s.entity != p.Entity {
		return false
	}
	return s.name == p.Name
}

func appendUnique(dst []string, ids ...string) []string {
	for _, id := range ids {
		if id == "" {
			continue
		}
		dup := false
		for _, have := range dst {
			if have == id {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, id)
		}
	}
	return dst
}
