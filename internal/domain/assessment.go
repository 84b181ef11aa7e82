package domain

import "time"

// Assessment is one persisted run of both engines for a trust. Versions
// start at 1 and increase by one per trust.
type Assessment struct {
	ID             string        `json:"id"`
	TrustID        string        `json:"trust_id"`
	Version        int           `json:"version"`
	RuleSetVersion string        `json:"rule_set_version"`
	InputsHash     string        `json:"inputs_hash"`
	Result         ComputeResult `json:"result"`
	Actions        NBAResult     `json:"actions"`
	CreatedAt      time.Time     `json:"created_at"`
}

type JobStatus string

const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job tracks an asynchronous assessment request.
type Job struct {
	ID           string     `json:"id"`
	TrustID      string     `json:"trust_id"`
	Status       JobStatus  `json:"status"`
	Attempts     int        `json:"attempts"`
	Error        string     `json:"error,omitempty"`
	AssessmentID string     `json:"assessment_id,omitempty"`
	QueuedAt     time.Time  `json:"queued_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
