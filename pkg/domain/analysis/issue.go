package analysis

// SentinelIssueDetected marks the synthetic issue returned when the model
// output could not be parsed.
const SentinelIssueDetected = "Parsing error"

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Issue is one finding reported by the model. OffendingText and
// SuggestedAlternative are the only fields that may quote the reviewed text.
type Issue struct {
	IssueDetected        string   `json:"IssueDetected"`
	OffendingText        string   `json:"OffendingText"`
	WhyItsProblematic    string   `json:"WhyItsProblematic"`
	SuggestedAlternative string   `json:"SuggestedAlternative"`
	ConfidenceScore      *float64 `json:"ConfidenceScore,omitempty"`
}

// IsSentinel reports whether the issue stands for a parsing failure.
func (i Issue) IsSentinel() bool {
	return i.IssueDetected == SentinelIssueDetected && i.OffendingText == "" && i.WhyItsProblematic == sentinelWhy
}

const sentinelWhy = "The model response could not be parsed as a list of issues."

func NewSentinelIssue(raw string) Issue {
	return Issue{
		IssueDetected:        SentinelIssueDetected,
		WhyItsProblematic:    sentinelWhy,
		SuggestedAlternative: raw,
	}
}

// BotIssue is an Issue found in a chatbot reply.
type BotIssue struct {
	Issue
	Severity      Severity `json:"Severity"`
	AffectedGroup string   `json:"AffectedGroup"`
}

// Finding is implemented by every issue shape the validator can produce.
type Finding interface {
	Base() *Issue
}

func (i *Issue) Base() *Issue {
	return i
}

func (b *BotIssue) Base() *Issue {
	return &b.Issue
}
