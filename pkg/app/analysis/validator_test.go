package analysis_test

import (
	"testing"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/app/redaction"
	domain "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	redactiondomain "github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asapIssue = `[{"issue_detected":"Temporal vagueness","offending_text":"ASAP","why_its_problematic":"Unclear deadline.","suggested_alternative":"by Friday","confidence_score":0.9}]`

func requireSuccess[T any](t *testing.T, outcome analysis.ParseOutcome[T]) []T {
	t.Helper()
	success, ok := outcome.(analysis.ParseSuccess[T])
	require.True(t, ok, "expected ParseSuccess, got %T", outcome)
	assert.Equal(t, domain.OutcomeParsed, outcome.Outcome())
	return success.Issues
}

func TestParseIssues_Cascade(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "plain array", raw: asapIssue},
		{name: "surrounding whitespace", raw: "\n\n  " + asapIssue + "  \n"},
		{name: "json fence", raw: "```json\n" + asapIssue + "\n```"},
		{name: "bare fence", raw: "```\n" + asapIssue + "\n```"},
		{name: "leading prose", raw: "Here is what I found:\n" + asapIssue},
		{name: "prose on both sides", raw: "Sure!\n" + asapIssue + "\nLet me know if you need more."},
		{name: "placeholder in prose", raw: "Regarding [PERSON_1]:\n" + asapIssue + "\nThanks [PERSON_1]."},
		{name: "issues object", raw: `{"issues":` + asapIssue + `}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := requireSuccess(t, analysis.ParseIssues(tt.raw))

			require.Len(t, issues, 1)
			assert.Equal(t, "Temporal vagueness", issues[0].IssueDetected)
			assert.Equal(t, "ASAP", issues[0].OffendingText)
			assert.Equal(t, "by Friday", issues[0].SuggestedAlternative)
			require.NotNil(t, issues[0].ConfidenceScore)
			assert.InDelta(t, 0.9, *issues[0].ConfidenceScore, 1e-9)
		})
	}
}

func TestParseIssues_FencedEqualsUnfenced(t *testing.T) {
	plain := analysis.ParseIssues(asapIssue)
	fenced := analysis.ParseIssues("```json\n" + asapIssue + "\n```")

	assert.Equal(t, plain, fenced)
}

func TestParseIssues_EmptyArray(t *testing.T) {
	issues := requireSuccess(t, analysis.ParseIssues("[]"))
	assert.Empty(t, issues)
	assert.NotNil(t, issues)
}

func TestParseIssues_Fallback(t *testing.T) {
	for _, raw := range []string{
		"I could not find any issues in this text.",
		`[{"issue_detected": "broken"`,
		"",
		`{"result": "none"}`,
	} {
		outcome := analysis.ParseIssues(raw)

		fallback, ok := outcome.(analysis.ParseFallback[domain.Issue])
		require.True(t, ok, "raw %q", raw)
		assert.Equal(t, domain.OutcomeFallback, outcome.Outcome())
		assert.Equal(t, raw, fallback.Raw)

		items := outcome.Items()
		require.Len(t, items, 1)
		assert.Equal(t, domain.SentinelIssueDetected, items[0].IssueDetected)
		assert.Equal(t, raw, items[0].SuggestedAlternative)
		assert.True(t, items[0].IsSentinel())
	}
}

func TestParseIssues_TolerantDecoding(t *testing.T) {
	raw := `[
		"not an object",
		42,
		{},
		{"issueDetected":"Gendered default","offendingText":"chairman","whyItsProblematic":"Excludes women.","suggestedAlternative":"chair","confidenceScore":"0.75","extra":true},
		{"IssueDetected":"Ableist idiom","OffendingText":"fell on deaf ears","ConfidenceScore":85},
		{"issue_detected":"Age bias","offending_text":"digital native","confidence_score":7}
	]`

	issues := requireSuccess(t, analysis.ParseIssues(raw))

	require.Len(t, issues, 3)
	assert.Equal(t, "chairman", issues[0].OffendingText)
	require.NotNil(t, issues[0].ConfidenceScore)
	assert.InDelta(t, 0.75, *issues[0].ConfidenceScore, 1e-9)

	assert.Equal(t, "fell on deaf ears", issues[1].OffendingText)
	require.NotNil(t, issues[1].ConfidenceScore)
	assert.InDelta(t, 0.85, *issues[1].ConfidenceScore, 1e-9)

	assert.Equal(t, "digital native", issues[2].OffendingText)
	require.NotNil(t, issues[2].ConfidenceScore)
	assert.InDelta(t, 0.07, *issues[2].ConfidenceScore, 1e-9)
}

func TestParseBotIssues(t *testing.T) {
	raw := "```json\n" + `[
		{"issue_detected":"Stereotype","offending_text":"girls are bad at math","severity":"HIGH","affected_group":"women"},
		{"issue_detected":"Assumption","offending_text":"your wife","severity":"catastrophic"}
	]` + "\n```"

	issues := requireSuccess(t, analysis.ParseBotIssues(raw))

	require.Len(t, issues, 2)
	assert.Equal(t, domain.SeverityHigh, issues[0].Severity)
	assert.Equal(t, "women", issues[0].AffectedGroup)
	assert.Equal(t, domain.SeverityMedium, issues[1].Severity)
}

func TestParseBotIssues_Fallback(t *testing.T) {
	outcome := analysis.ParseBotIssues("no json here")

	_, ok := outcome.(analysis.ParseFallback[domain.BotIssue])
	require.True(t, ok)
	items := outcome.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].IsSentinel())
}

func TestFilterGrounded(t *testing.T) {
	original := "Our chairman expects XYZ compliance from every guy on the team."
	issues := []domain.Issue{
		{IssueDetected: "Gendered title", OffendingText: "chairman"},
		{IssueDetected: "Made up", OffendingText: "xyz"},
		{IssueDetected: "Hallucinated", OffendingText: "ladies and gentlemen"},
		{IssueDetected: "Gendered address", OffendingText: "Every Guy"},
	}

	kept, dropped := analysis.FilterGrounded(issues, original)

	assert.Equal(t, 1, dropped)
	require.Len(t, kept, 3)
	assert.Equal(t, "chairman", kept[0].OffendingText)
	assert.Equal(t, "xyz", kept[1].OffendingText)
	assert.Equal(t, "Every Guy", kept[2].OffendingText)
}

func TestFilterGrounded_DropsAbsentText(t *testing.T) {
	kept, dropped := analysis.FilterGrounded([]domain.Issue{{OffendingText: "xyz"}}, "nothing relevant here")

	assert.Empty(t, kept)
	assert.Equal(t, 1, dropped)
}

func TestFilterGrounded_BotIssues(t *testing.T) {
	issues := []domain.BotIssue{
		{Issue: domain.Issue{OffendingText: "old people"}, Severity: domain.SeverityHigh},
		{Issue: domain.Issue{OffendingText: "never said"}, Severity: domain.SeverityLow},
	}

	kept, dropped := analysis.FilterGrounded(issues, "Old people cannot use apps.")

	assert.Equal(t, 1, dropped)
	require.Len(t, kept, 1)
	assert.Equal(t, domain.SeverityHigh, kept[0].Severity)
}

func TestRestoreIssues_OnlyQuotedFields(t *testing.T) {
	m := redactiondomain.EntityMap{
		{Text: "John Smith", Prefix: redactiondomain.PrefixPerson, Placeholder: "[PERSON_1]"},
		{Text: "john@x.com", Prefix: redactiondomain.PrefixEmail, Placeholder: "[EMAIL_1]"},
	}
	issues := []domain.Issue{{
		IssueDetected:        "Mentions [PERSON_1]",
		OffendingText:        "[PERSON_1] at [EMAIL_1]",
		WhyItsProblematic:    "[PERSON_1] is singled out",
		SuggestedAlternative: "the team lead at [EMAIL_1]",
	}}

	restored := analysis.RestoreIssues(issues, redaction.NewRestorer(m))

	require.Len(t, restored, 1)
	assert.Equal(t, "John Smith at john@x.com", restored[0].OffendingText)
	assert.Equal(t, "the team lead at john@x.com", restored[0].SuggestedAlternative)
	assert.Equal(t, "Mentions [PERSON_1]", restored[0].IssueDetected)
	assert.Equal(t, "[PERSON_1] is singled out", restored[0].WhyItsProblematic)
	assert.Equal(t, "[PERSON_1] at [EMAIL_1]", issues[0].OffendingText, "input must not be modified")
}

func TestRestoreIssues_RoundTrip(t *testing.T) {
	m := redactiondomain.EntityMap{
		{Text: "Jane Doe", Prefix: redactiondomain.PrefixPerson, Placeholder: "[PERSON_1]"},
	}
	issues := []domain.BotIssue{{Issue: domain.Issue{OffendingText: "[PERSON_1]", SuggestedAlternative: "[PERSON_1]"}}}

	restored := analysis.RestoreIssues(issues, redaction.NewRestorer(m))

	assert.Equal(t, "Jane Doe", restored[0].OffendingText)
	assert.Equal(t, "Jane Doe", restored[0].SuggestedAlternative)
}

func TestRestoreIssues_EmptyMap(t *testing.T) {
	issues := []domain.Issue{{OffendingText: "[PERSON_1]"}}

	restored := analysis.RestoreIssues(issues, redaction.NewRestorer(nil))

	assert.Equal(t, issues, restored)
}
