package telemetry

// Event describes one finished analysis. It carries counts and categories
// only, never reviewed text, issue text or redacted values.
type Event struct {
	AnalysisID       string         `json:"analysis_id"`
	TeamID           string         `json:"team_id"`
	UserID           string         `json:"user_id"`
	Kind             string         `json:"kind"`
	Outcome          string         `json:"outcome"`
	IssueCount       int            `json:"issue_count"`
	DroppedCount     int            `json:"dropped_count"`
	IssueTypes       []string       `json:"issue_types"`
	RedactedEntities map[string]int `json:"redacted_entities"`
	Provider         string         `json:"provider"`
	Model            string         `json:"model"`
	Latency          int64          `json:"latency_ms"`
	Browser          string         `json:"browser,omitempty"`
	Device           string         `json:"device,omitempty"`
	Os               string         `json:"os,omitempty"`
	Locale           string         `json:"locale,omitempty"`
	TraceID          string         `json:"trace_id,omitempty"`
	Timestamp        int64          `json:"timestamp"`
}
