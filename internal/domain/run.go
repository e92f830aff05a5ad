package domain

import "time"

type RunStatus string

const (
	StatusSuccess RunStatus = "success"
	StatusSkipped RunStatus = "skipped"
	StatusEmpty   RunStatus = "empty"
	StatusError   RunStatus = "error"
)

// RunResult is the outcome of one pipeline run for one target.
type RunResult struct {
	Status    RunStatus     `json:"status"`
	Target    string        `json:"target"`
	Items     int           `json:"items"`
	Errors    int           `json:"errors"`
	Adapter   string        `json:"adapter,omitempty"`
	Error     string        `json:"error,omitempty"`
	Published int           `json:"published,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// OK reports whether the run should be treated as a successful invocation.
func (r *RunResult) OK() bool {
	return r.Status == StatusSuccess || r.Status == StatusSkipped
}
