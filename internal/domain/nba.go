package domain

type TriggerType string

const (
	TriggerRisk      TriggerType = "risk"
	TriggerGap       TriggerType = "gap"
	TriggerThreshold TriggerType = "threshold"
	TriggerMissing   TriggerType = "missing"
	TriggerConflict  TriggerType = "conflict"
)

func (t TriggerType) Valid() bool {
	switch t {
	case TriggerRisk, TriggerGap, TriggerThreshold, TriggerMissing, TriggerConflict:
		return true
	}
	return false
}

type Operator string

const (
	OpLessThan    Operator = "lt"
	OpGreaterThan Operator = "gt"
	OpEqual       Operator = "eq"
)

func (o Operator) Valid() bool {
	return o == OpLessThan || o == OpGreaterThan || o == OpEqual
}

// NBARule is one row of the static rule table.
type NBARule struct {
	ID               string      `json:"id" yaml:"id"`
	Title            string      `json:"title" yaml:"title"`
	TriggerType      TriggerType `json:"trigger_type" yaml:"trigger_type"`
	TriggerField     string      `json:"trigger_field" yaml:"trigger_field"`
	TriggerOperator  Operator    `json:"trigger_operator,omitempty" yaml:"trigger_operator,omitempty"`
	TriggerValue     string      `json:"trigger_value,omitempty" yaml:"trigger_value,omitempty"`
	RiskReduction    float64     `json:"risk_reduction" yaml:"risk_reduction"`
	EquityProtected  float64     `json:"equity_protected" yaml:"equity_protected"`
	TimeScore        float64     `json:"time_score" yaml:"time_score"`
	DependencyUnlock float64     `json:"dependency_unlock" yaml:"dependency_unlock"`
	Category         string      `json:"category" yaml:"category"`
	Steps            []string    `json:"steps" yaml:"steps"`
	RequiredEvidence []string    `json:"required_evidence,omitempty" yaml:"required_evidence,omitempty"`
	DoneDefinition   string      `json:"done_definition" yaml:"done_definition"`
	EscalationNotes  string      `json:"escalation_notes,omitempty" yaml:"escalation_notes,omitempty"`
	Enabled          bool        `json:"enabled" yaml:"enabled"`
}

// NBAAction is a matched rule with its computed priority.
type NBAAction struct {
	RuleID             string      `json:"rule_id"`
	TrustID            string      `json:"trust_id"`
	Title              string      `json:"title"`
	Category           string      `json:"category"`
	TriggerType        TriggerType `json:"trigger_type"`
	PriorityScore      float64     `json:"priority_score"`
	Steps              []string    `json:"steps"`
	RequiredEvidence   []string    `json:"required_evidence,omitempty"`
	DoneDefinition     string      `json:"done_definition"`
	EscalationNotes    string      `json:"escalation_notes,omitempty"`
	RelatedAssetIDs    []string    `json:"related_asset_ids"`
	RelatedDocumentIDs []string    `json:"related_document_ids"`
}

type NBAResult struct {
	Top3    []NBAAction `json:"top3"`
	Backlog []NBAAction `json:"backlog"`
}
