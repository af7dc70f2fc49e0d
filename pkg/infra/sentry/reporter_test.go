package sentry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvents struct {
	mu     sync.Mutex
	events []*sentrygo.Event
}

func (c *capturedEvents) beforeSend(event *sentrygo.Event, hint *sentrygo.EventHint) *sentrygo.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, scrub(event, hint))
	return nil
}

func (c *capturedEvents) all() []*sentrygo.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*sentrygo.Event(nil), c.events...)
}

func newTestReporter(t *testing.T) (*hubReporter, *capturedEvents) {
	captured := &capturedEvents{}
	client, err := sentrygo.NewClient(sentrygo.ClientOptions{
		BeforeSend: captured.beforeSend,
	})
	require.NoError(t, err)
	return newHubReporter(client), captured
}

func TestNewReporter_NoDSNIsNoop(t *testing.T) {
	r, err := NewReporter(Config{}, "test")

	require.NoError(t, err)
	assert.IsType(t, noopReporter{}, r)
	r.CaptureError(context.Background(), errors.New("boom"), nil)
	assert.True(t, r.Flush(time.Millisecond))
}

func TestNewReporter_InvalidDSN(t *testing.T) {
	_, err := NewReporter(Config{DSN: "not a dsn"}, "test")

	assert.Error(t, err)
}

func TestCaptureError_SendsTags(t *testing.T) {
	r, captured := newTestReporter(t)

	r.CaptureError(context.Background(), errors.New("database unreachable"), map[string]string{"route": "/api/v1/analyze"})

	events := captured.all()
	require.Len(t, events, 1)
	assert.Equal(t, "/api/v1/analyze", events[0].Tags["route"])
	require.NotEmpty(t, events[0].Exception)
	assert.Equal(t, "database unreachable", events[0].Exception[0].Value)
}

func TestCaptureError_IgnoresCanceled(t *testing.T) {
	r, captured := newTestReporter(t)

	r.CaptureError(context.Background(), context.Canceled, nil)
	r.CaptureError(context.Background(), nil, nil)

	assert.Empty(t, captured.all())
}

func TestCapturePanic(t *testing.T) {
	r, captured := newTestReporter(t)

	r.CapturePanic(context.Background(), "nil map write", map[string]string{"trace_id": "t-1"})

	events := captured.all()
	require.Len(t, events, 1)
	assert.Equal(t, sentrygo.LevelFatal, events[0].Level)
	assert.Equal(t, "t-1", events[0].Tags["trace_id"])
}

func TestScrub_RemovesBodiesAndCredentials(t *testing.T) {
	event := &sentrygo.Event{
		Request: &sentrygo.Request{
			URL:         "http://localhost/api/v1/analyze",
			Data:        `{"text":"Contact John Smith"}`,
			Cookies:     "session=1",
			QueryString: "q=1",
			Headers: map[string]string{
				"Authorization": "Bearer abc",
				"Content-Type":  "application/json",
			},
		},
		User: sentrygo.User{ID: "u-1", Email: "john@x.com", IPAddress: "10.0.0.1"},
	}

	out := scrub(event, nil)

	assert.Empty(t, out.Request.Data)
	assert.Empty(t, out.Request.Cookies)
	assert.Empty(t, out.Request.QueryString)
	assert.NotContains(t, out.Request.Headers, "Authorization")
	assert.Equal(t, "application/json", out.Request.Headers["Content-Type"])
	assert.Equal(t, "u-1", out.User.ID)
	assert.Empty(t, out.User.Email)
	assert.Empty(t, out.User.IPAddress)
}
