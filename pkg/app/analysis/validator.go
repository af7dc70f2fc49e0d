package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/redaction"
	domain "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	"github.com/valyala/fastjson"
)

// ParseOutcome is the result of reading one model response: either the
// issues it listed or a single sentinel issue carrying the raw text.
type ParseOutcome[T any] interface {
	Items() []T
	Outcome() domain.Outcome
}

type ParseSuccess[T any] struct {
	Issues []T
}

func (s ParseSuccess[T]) Items() []T {
	return s.Issues
}

func (ParseSuccess[T]) Outcome() domain.Outcome {
	return domain.OutcomeParsed
}

type ParseFallback[T any] struct {
	Sentinel T
	Raw      string
}

func (f ParseFallback[T]) Items() []T {
	return []T{f.Sentinel}
}

func (ParseFallback[T]) Outcome() domain.Outcome {
	return domain.OutcomeFallback
}

// maxArrayCandidates bounds the bracket positions tried on each side.
const maxArrayCandidates = 32

var arrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

var (
	issueDetectedKeys        = []string{"IssueDetected", "issue_detected", "issueDetected"}
	offendingTextKeys        = []string{"OffendingText", "offending_text", "offendingText"}
	whyItsProblematicKeys    = []string{"WhyItsProblematic", "why_its_problematic", "whyItsProblematic"}
	suggestedAlternativeKeys = []string{"SuggestedAlternative", "suggested_alternative", "suggestedAlternative"}
	confidenceScoreKeys      = []string{"ConfidenceScore", "confidence_score", "confidenceScore"}
	severityKeys             = []string{"Severity", "severity"}
	affectedGroupKeys        = []string{"AffectedGroup", "affected_group", "affectedGroup"}
)

func ParseIssues(raw string) ParseOutcome[domain.Issue] {
	return parse(raw, decodeIssue, domain.NewSentinelIssue)
}

func ParseBotIssues(raw string) ParseOutcome[domain.BotIssue] {
	return parse(raw, decodeBotIssue, func(raw string) domain.BotIssue {
		return domain.BotIssue{Issue: domain.NewSentinelIssue(raw)}
	})
}

func parse[T any](
	raw string,
	decode func(*fastjson.Object) (T, bool),
	sentinel func(string) T,
) ParseOutcome[T] {
	trimmed := strings.TrimSpace(stripCodeFences(strings.TrimSpace(raw)))

	if elems, ok := decodeList(trimmed); ok {
		return ParseSuccess[T]{Issues: decodeAll(elems, decode)}
	}

	if elems, ok := extractArray(trimmed); ok {
		return ParseSuccess[T]{Issues: decodeAll(elems, decode)}
	}

	return ParseFallback[T]{Sentinel: sentinel(raw), Raw: raw}
}

// extractArray looks for the first bracketed span that parses as a JSON
// array. The widest span comes first; narrower ones cover prose that itself
// contains brackets, such as a placeholder before or after the array.
func extractArray(s string) ([]*fastjson.Value, bool) {
	loc := arrayPattern.FindStringIndex(s)
	if loc == nil {
		return nil, false
	}
	if elems, ok := decodeList(s[loc[0]:loc[1]]); ok {
		return elems, true
	}

	var starts, ends []int
	for i := loc[0]; i < loc[1] && len(starts) < maxArrayCandidates; i++ {
		if s[i] == '[' {
			starts = append(starts, i)
		}
	}
	for i := loc[1] - 1; i >= loc[0] && len(ends) < maxArrayCandidates; i-- {
		if s[i] == ']' {
			ends = append(ends, i+1)
		}
	}
	for _, start := range starts {
		for _, end := range ends {
			if end <= start {
				break
			}
			if elems, ok := decodeList(s[start:end]); ok {
				return elems, true
			}
		}
	}
	return nil, false
}

// stripCodeFences removes a ```json ... ``` or ``` ... ``` wrapper.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.SplitN(s, "\n", 2)
	if len(lines) == 2 {
		s = lines[1]
	} else {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "```json"), "```")
	}
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return s
}

// decodeList accepts a JSON array, or an object holding the array under
// "issues".
func decodeList(data string) ([]*fastjson.Value, bool) {
	if data == "" {
		return nil, false
	}
	var p fastjson.Parser
	v, err := p.Parse(data)
	if err != nil {
		return nil, false
	}
	switch v.Type() {
	case fastjson.TypeArray:
		arr, _ := v.Array()
		return arr, true
	case fastjson.TypeObject:
		issues := v.Get("issues")
		if issues == nil || issues.Type() != fastjson.TypeArray {
			return nil, false
		}
		arr, _ := issues.Array()
		return arr, true
	}
	return nil, false
}

func decodeAll[T any](elems []*fastjson.Value, decode func(*fastjson.Object) (T, bool)) []T {
	out := make([]T, 0, len(elems))
	for _, elem := range elems {
		obj, err := elem.Object()
		if err != nil {
			continue
		}
		if item, ok := decode(obj); ok {
			out = append(out, item)
		}
	}
	return out
}

func decodeIssue(obj *fastjson.Object) (domain.Issue, bool) {
	issue := domain.Issue{
		IssueDetected:        stringField(obj, issueDetectedKeys),
		OffendingText:        stringField(obj, offendingTextKeys),
		WhyItsProblematic:    stringField(obj, whyItsProblematicKeys),
		SuggestedAlternative: stringField(obj, suggestedAlternativeKeys),
		ConfidenceScore:      scoreField(obj, confidenceScoreKeys),
	}
	if issue.IssueDetected == "" && issue.OffendingText == "" &&
		issue.WhyItsProblematic == "" && issue.SuggestedAlternative == "" {
		return domain.Issue{}, false
	}
	return issue, true
}

func decodeBotIssue(obj *fastjson.Object) (domain.BotIssue, bool) {
	issue, ok := decodeIssue(obj)
	if !ok {
		return domain.BotIssue{}, false
	}
	severity := domain.Severity(strings.ToLower(strings.TrimSpace(stringField(obj, severityKeys))))
	if !severity.Valid() {
		severity = domain.SeverityMedium
	}
	return domain.BotIssue{
		Issue:         issue,
		Severity:      severity,
		AffectedGroup: stringField(obj, affectedGroupKeys),
	}, true
}

func lookup(obj *fastjson.Object, keys []string) *fastjson.Value {
	for _, k := range keys {
		if v := obj.Get(k); v != nil {
			return v
		}
	}
	return nil
}

func stringField(obj *fastjson.Object, keys []string) string {
	v := lookup(obj, keys)
	if v == nil {
		return ""
	}
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber, fastjson.TypeTrue, fastjson.TypeFalse:
		return v.String()
	}
	return ""
}

// scoreField reads a score in [0,1]. Percentages are scaled down; anything
// else out of range is dropped.
func scoreField(obj *fastjson.Object, keys []string) *float64 {
	v := lookup(obj, keys)
	if v == nil {
		return nil
	}
	var f float64
	switch v.Type() {
	case fastjson.TypeNumber:
		f = v.GetFloat64()
	case fastjson.TypeString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(string(v.GetStringBytes())), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if f > 1 && f <= 100 {
		f /= 100
	}
	if f < 0 || f > 1 {
		return nil
	}
	return &f
}

// FilterGrounded keeps the issues whose offending text occurs in original,
// ignoring case, and reports how many were dropped.
func FilterGrounded[T any, PT interface {
	*T
	domain.Finding
}](issues []T, original string) ([]T, int) {
	lowered := strings.ToLower(original)
	kept := make([]T, 0, len(issues))
	for i := range issues {
		base := PT(&issues[i]).Base()
		if strings.Contains(lowered, strings.ToLower(base.OffendingText)) {
			kept = append(kept, issues[i])
		}
	}
	return kept, len(issues) - len(kept)
}

// RestoreIssues returns a copy of issues with placeholders in OffendingText
// and SuggestedAlternative replaced by their original values.
func RestoreIssues[T any, PT interface {
	*T
	domain.Finding
}](issues []T, restorer *redaction.Restorer) []T {
	out := make([]T, len(issues))
	copy(out, issues)
	for i := range out {
		base := PT(&out[i]).Base()
		base.OffendingText = restorer.Restore(base.OffendingText)
		base.SuggestedAlternative = restorer.Restore(base.SuggestedAlternative)
	}
	return out
}
