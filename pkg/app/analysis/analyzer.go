package analysis

import (
	"context"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/NeuralTrust/InclusionGuard/pkg/app/llm"
	"github.com/NeuralTrust/InclusionGuard/pkg/app/redaction"
	domain "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/metrics"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/InclusionGuard/pkg/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultMaxTextLength = 50000

// Request is one text to review plus who asked for it.
type Request struct {
	Subject string
	Text    string
	TeamID  string
	UserID  string
	TraceID string
	Client  *utils.UserAgentInfo
}

// Original is the exact text the issues are checked against.
func (r Request) Original() string {
	if strings.TrimSpace(r.Subject) == "" {
		return r.Text
	}
	return r.Subject + "\n\n" + r.Text
}

// Report is the outcome of one analysis as returned to the caller.
type Report[T any] struct {
	ID               uuid.UUID      `json:"id"`
	Kind             domain.Kind    `json:"kind"`
	Issues           []T            `json:"issues"`
	Outcome          domain.Outcome `json:"outcome"`
	Dropped          int            `json:"dropped"`
	RedactedEntities map[string]int `json:"redacted_entities"`
	Provider         string         `json:"provider"`
	Model            string         `json:"model"`
	CreatedAt        time.Time      `json:"created_at"`
}

type (
	Result    = Report[domain.Issue]
	BotResult = Report[domain.BotIssue]
)

//go:generate mockery --name=Analyzer --dir=. --output=./mocks --filename=analyzer_mock.go --case=underscore --with-expecter
type Analyzer interface {
	AnalyzeText(ctx context.Context, req Request) (*Result, error)
	AnalyzeBotResponse(ctx context.Context, req Request) (*BotResult, error)
}

type Option func(*analyzer)

func WithMaxTextLength(n int) Option {
	return func(a *analyzer) {
		if n > 0 {
			a.maxTextLength = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *analyzer) {
		a.now = now
	}
}

type analyzer struct {
	logger        *logrus.Logger
	redactor      redaction.Service
	gateway       llm.Gateway
	repo          domain.Repository
	worker        metrics.Worker
	maxTextLength int
	now           func() time.Time
}

func NewAnalyzer(
	logger *logrus.Logger,
	redactor redaction.Service,
	gateway llm.Gateway,
	repo domain.Repository,
	worker metrics.Worker,
	opts ...Option,
) Analyzer {
	a := &analyzer{
		logger:        logger,
		redactor:      redactor,
		gateway:       gateway,
		repo:          repo,
		worker:        worker,
		maxTextLength: DefaultMaxTextLength,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *analyzer) AnalyzeText(ctx context.Context, req Request) (*Result, error) {
	return analyze(ctx, a, domain.KindText, req, TextPrompt, ParseIssues)
}

func (a *analyzer) AnalyzeBotResponse(ctx context.Context, req Request) (*BotResult, error) {
	return analyze(ctx, a, domain.KindBot, req, BotPrompt, ParseBotIssues)
}

func (a *analyzer) validate(req Request) error {
	if strings.TrimSpace(req.Text) == "" {
		return domain.ErrEmptyText
	}
	if utf8.RuneCountInString(req.Original()) > a.maxTextLength {
		return domain.ErrTextTooLong
	}
	return nil
}

func analyze[T any, PT interface {
	*T
	domain.Finding
}](
	ctx context.Context,
	a *analyzer,
	kind domain.Kind,
	req Request,
	prompt llm.Prompt,
	parse func(string) ParseOutcome[T],
) (*Report[T], error) {
	if err := a.validate(req); err != nil {
		return nil, err
	}
	start := a.now()
	original := req.Original()

	redacted := a.redactor.Redact(ctx, original)

	resp, err := a.gateway.Complete(ctx, prompt, WrapDocument(redacted.RedactedText))
	if err != nil {
		return nil, err
	}

	outcome := parse(resp.Response)
	prometheus.ParseOutcomes.WithLabelValues(string(kind), string(outcome.Outcome())).Inc()

	issues := RestoreIssues[T, PT](outcome.Items(), redaction.NewRestorer(redacted.EntityMap))

	dropped := 0
	if outcome.Outcome() == domain.OutcomeParsed {
		issues, dropped = FilterGrounded[T, PT](issues, original)
		if dropped > 0 {
			prometheus.HallucinatedIssues.WithLabelValues(string(kind)).Add(float64(dropped))
			a.logger.WithFields(logrus.Fields{
				"kind":     kind,
				"dropped":  dropped,
				"trace_id": req.TraceID,
			}).Debug("dropped issues not grounded in the source text")
		}
	} else {
		a.logger.WithFields(logrus.Fields{
			"kind":     kind,
			"trace_id": req.TraceID,
		}).Warn("model output could not be parsed, returning sentinel issue")
	}

	counts := make(map[string]int)
	for prefix, n := range redacted.EntityMap.CountByPrefix() {
		counts[string(prefix)] = n
	}

	report := &Report[T]{
		ID:               uuid.New(),
		Kind:             kind,
		Issues:           issues,
		Outcome:          outcome.Outcome(),
		Dropped:          dropped,
		RedactedEntities: counts,
		Provider:         servedBy(resp.Provider, a.gateway.Provider()),
		Model:            servedBy(resp.Model, a.gateway.Model()),
		CreatedAt:        a.now().UTC(),
	}

	stored := storedIssues[T, PT](issues)
	meta := report.meta()
	a.persist(ctx, req, meta, stored)
	a.publish(req, meta, stored, a.now().Sub(start))
	return report, nil
}

func (a *analyzer) persist(ctx context.Context, req Request, meta reportMeta, issues domain.IssuesJSON) {
	row := &domain.Analysis{
		ID:               meta.ID,
		TeamID:           req.TeamID,
		UserID:           req.UserID,
		Kind:             meta.Kind,
		Outcome:          meta.Outcome,
		Issues:           issues,
		IssueTypes:       issueTypes(issues),
		IssueCount:       countFindings(issues),
		DroppedCount:     meta.Dropped,
		RedactedEntities: meta.RedactedEntities,
		Provider:         meta.Provider,
		Model:            meta.Model,
		CreatedAt:        meta.CreatedAt,
	}
	if req.Client != nil {
		row.ClientDevice = req.Client.Device
		row.ClientOS = req.Client.OS
		row.ClientBrowser = req.Client.Browser
	}
	if err := a.repo.Save(ctx, row); err != nil {
		a.logger.WithError(err).WithFields(logrus.Fields{
			"analysis_id": meta.ID,
			"team_id":     req.TeamID,
		}).Error("failed to store analysis")
	}
}

func (a *analyzer) publish(req Request, meta reportMeta, issues domain.IssuesJSON, latency time.Duration) {
	evt := &telemetry.Event{
		AnalysisID:       meta.ID.String(),
		TeamID:           req.TeamID,
		UserID:           req.UserID,
		Kind:             string(meta.Kind),
		Outcome:          string(meta.Outcome),
		IssueCount:       countFindings(issues),
		DroppedCount:     meta.Dropped,
		IssueTypes:       issueTypes(issues),
		RedactedEntities: meta.RedactedEntities,
		Provider:         meta.Provider,
		Model:            meta.Model,
		Latency:          latency.Milliseconds(),
		TraceID:          req.TraceID,
		Timestamp:        meta.CreatedAt.Unix(),
	}
	if req.Client != nil {
		evt.Device = req.Client.Device
		evt.Os = req.Client.OS
		evt.Browser = req.Client.Browser
		evt.Locale = req.Client.Locale
	}
	a.worker.Process(evt)
}

// reportMeta is the issue-independent part of a Report.
type reportMeta struct {
	ID               uuid.UUID
	Kind             domain.Kind
	Outcome          domain.Outcome
	Dropped          int
	RedactedEntities map[string]int
	Provider         string
	Model            string
	CreatedAt        time.Time
}

func (r *Report[T]) meta() reportMeta {
	return reportMeta{
		ID:               r.ID,
		Kind:             r.Kind,
		Outcome:          r.Outcome,
		Dropped:          r.Dropped,
		RedactedEntities: r.RedactedEntities,
		Provider:         r.Provider,
		Model:            r.Model,
		CreatedAt:        r.CreatedAt,
	}
}

// storedIssues converts either issue shape to the stored form.
func storedIssues[T any, PT interface {
	*T
	domain.Finding
}](issues []T) domain.IssuesJSON {
	out := make(domain.IssuesJSON, 0, len(issues))
	for i := range issues {
		if bot, ok := any(PT(&issues[i])).(*domain.BotIssue); ok {
			out = append(out, *bot)
			continue
		}
		out = append(out, domain.BotIssue{Issue: *PT(&issues[i]).Base()})
	}
	return out
}

// issueTypes returns the distinct, normalized issue types of the real
// findings, sorted.
func issueTypes(issues domain.IssuesJSON) []string {
	seen := make(map[string]struct{})
	for _, issue := range issues {
		if issue.IsSentinel() {
			continue
		}
		t := strings.ToLower(strings.TrimSpace(issue.IssueDetected))
		if t == "" {
			continue
		}
		seen[t] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func countFindings(issues domain.IssuesJSON) int {
	n := 0
	for _, issue := range issues {
		if !issue.IsSentinel() {
			n++
		}
	}
	return n
}

// servedBy prefers what the provider reported over the configured value.
func servedBy(reported, configured string) string {
	if reported != "" {
		return reported
	}
	return configured
}
