package sentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
)

const DefaultFlushTimeout = 2 * time.Second

type Config struct {
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
	Debug       bool    `mapstructure:"debug"`
}

//go:generate mockery --name=Reporter --dir=. --output=./mocks --filename=reporter_mock.go --case=underscore --with-expecter
type Reporter interface {
	CaptureError(ctx context.Context, err error, tags map[string]string)
	CapturePanic(ctx context.Context, recovered interface{}, tags map[string]string)
	Flush(timeout time.Duration) bool
}

// NewReporter returns a Sentry backed reporter, or a no-op one when no DSN
// is configured.
func NewReporter(cfg Config, release string) (Reporter, error) {
	if cfg.DSN == "" {
		return noopReporter{}, nil
	}
	sampleRate := cfg.SampleRate
	if sampleRate <= 0 || sampleRate > 1 {
		sampleRate = 1
	}
	client, err := sentrygo.NewClient(sentrygo.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          release,
		SampleRate:       sampleRate,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
		BeforeSend:       scrub,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sentry: %w", err)
	}
	return newHubReporter(client), nil
}

type hubReporter struct {
	hub *sentrygo.Hub
}

func newHubReporter(client *sentrygo.Client) *hubReporter {
	return &hubReporter{hub: sentrygo.NewHub(client, sentrygo.NewScope())}
}

func (r *hubReporter) CaptureError(_ context.Context, err error, tags map[string]string) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentrygo.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

func (r *hubReporter) CapturePanic(ctx context.Context, recovered interface{}, tags map[string]string) {
	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentrygo.Scope) {
		scope.SetTags(tags)
		scope.SetLevel(sentrygo.LevelFatal)
		hub.RecoverWithContext(ctx, recovered)
	})
}

func (r *hubReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}

// scrub strips request bodies, cookies and credentials from outgoing events.
// Only ids and the route survive.
func scrub(event *sentrygo.Event, _ *sentrygo.EventHint) *sentrygo.Event {
	if event.Request != nil {
		event.Request.Data = ""
		event.Request.Cookies = ""
		event.Request.QueryString = ""
		for key := range event.Request.Headers {
			switch key {
			case "Authorization", "Cookie", "X-Api-Key":
				delete(event.Request.Headers, key)
			}
		}
	}
	event.User.Email = ""
	event.User.IPAddress = ""
	return event
}

type noopReporter struct{}

func (noopReporter) CaptureError(context.Context, error, map[string]string) {}
func (noopReporter) CapturePanic(context.Context, interface{}, map[string]string) {}
func (noopReporter) Flush(time.Duration) bool { return true }
