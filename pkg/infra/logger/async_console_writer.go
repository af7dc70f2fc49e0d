package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// AsyncConsoleHook mirrors formatted entries to a console writer off the
// calling goroutine. Entries are dropped, and counted, while the buffer is full.
type AsyncConsoleHook struct {
	out     io.Writer
	lines   chan []byte
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Uint64
}

func NewAsyncConsoleHook(bufferSize int) *AsyncConsoleHook {
	return newAsyncConsoleHook(os.Stdout, bufferSize)
}

func newAsyncConsoleHook(out io.Writer, bufferSize int) *AsyncConsoleHook {
	hook := &AsyncConsoleHook{
		out:   out,
		lines: make(chan []byte, bufferSize),
		done:  make(chan struct{}),
	}
	hook.wg.Add(1)
	go hook.run()
	return hook
}

func (h *AsyncConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return err
	}
	select {
	case h.lines <- line:
	default:
		h.dropped.Add(1)
	}
	return nil
}

// Dropped reports how many entries never reached the console.
func (h *AsyncConsoleHook) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *AsyncConsoleHook) run() {
	defer h.wg.Done()
	for {
		select {
		case line := <-h.lines:
			_, _ = h.out.Write(line)
		case <-h.done:
			for {
				select {
				case line := <-h.lines:
					_, _ = h.out.Write(line)
				default:
					return
				}
			}
		}
	}
}

// Close flushes buffered entries. Later calls are no-ops.
func (h *AsyncConsoleHook) Close() {
	h.once.Do(func() {
		close(h.done)
		h.wg.Wait()
	})
}

func (h *AsyncConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
