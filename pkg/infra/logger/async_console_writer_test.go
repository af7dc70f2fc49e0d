package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type blockingWriter struct {
	release chan struct{}
	buf     bytes.Buffer
}

func (w *blockingWriter) Write(p []byte) (int, error) {
	<-w.release
	return w.buf.Write(p)
}

func TestAsyncConsoleHook_FlushesOnClose(t *testing.T) {
	var out bytes.Buffer
	hook := newAsyncConsoleHook(&out, 16)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.AddHook(NewSensitiveFieldsHook())
	logger.AddHook(hook)

	logger.WithField("entity_map", "[PERSON_1]=John Smith").Info("redaction finished")
	logger.Info("analysis stored")
	hook.Close()
	hook.Close()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "redaction finished")
	assert.NotContains(t, out.String(), "John Smith")
	assert.Contains(t, lines[1], "analysis stored")
	assert.Zero(t, hook.Dropped())
}

func TestAsyncConsoleHook_CountsDroppedEntries(t *testing.T) {
	w := &blockingWriter{release: make(chan struct{})}
	hook := newAsyncConsoleHook(w, 1)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)

	for i := 0; i < 5; i++ {
		logger.Info("burst")
	}

	assert.GreaterOrEqual(t, hook.Dropped(), uint64(3))
	close(w.release)
	hook.Close()
	assert.Equal(t, 5, strings.Count(w.buf.String(), "burst")+int(hook.Dropped()))
}
