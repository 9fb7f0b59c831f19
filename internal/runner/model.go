package runner

// CaseStatus represents the outcome of a case.
type CaseStatus string

const (
	StatusPass CaseStatus = "pass"
	StatusFail CaseStatus = "fail"
)

// CaseResult represents the result of a single case.
// Matches <state-dir>/cases/<case>.json.
type CaseResult struct {
	Case   string     `json:"case"`
	Status CaseStatus `json:"status"`
	Note   string     `json:"note,omitempty"`
}

// LastRun represents the summary of the last execution.
// Matches <state-dir>/last-run.json.
type LastRun struct {
	Status string   `json:"status"` // "pass" or "fail"
	File   string   `json:"file,omitempty"`
	Cases  []string `json:"cases"`  // Ordered list of cases run
	Failed []string `json:"failed"` // List of failed cases
}
