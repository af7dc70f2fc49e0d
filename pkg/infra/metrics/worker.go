package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/domain/telemetry"
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	defaultQueueSize     = 1000
	defaultExportTimeout = 5 * time.Second
)

// Worker ships analysis events to the configured exporters off the request
// path.
type Worker interface {
	Shutdown()
	StartWorkers(n int)
	Process(evt *telemetry.Event)
}

type WorkerOption func(*worker)

func WithQueueSize(n int) WorkerOption {
	return func(w *worker) {
		if n > 0 {
			w.taskChan = make(chan func(), n)
		}
	}
}

func WithExportTimeout(d time.Duration) WorkerOption {
	return func(w *worker) {
		if d > 0 {
			w.exportTimeout = d
		}
	}
}

type worker struct {
	logger        *logrus.Logger
	exporters     []telemetry.Exporter
	taskChan      chan func()
	exportTimeout time.Duration
	mu            sync.RWMutex
	closed        bool
	wg            sync.WaitGroup
}

func NewWorker(logger *logrus.Logger, exporters []telemetry.Exporter, opts ...WorkerOption) Worker {
	w := &worker{
		logger:        logger,
		exporters:     exporters,
		taskChan:      make(chan func(), defaultQueueSize),
		exportTimeout: defaultExportTimeout,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Shutdown stops accepting events, drains the queue and closes the
// exporters.
func (m *worker) Shutdown() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	close(m.taskChan)
	m.mu.Unlock()

	m.logger.Info("shutting down telemetry workers")
	m.wg.Wait()
	for _, exporter := range m.exporters {
		exporter.Close()
	}
	m.logger.Info("telemetry workers stopped")
}

func (m *worker) StartWorkers(n int) {
	m.logger.WithField("workers", n).Info("starting telemetry workers")
	for i := 0; i < n; i++ {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			for task := range m.taskChan {
				task()
			}
		}()
	}
}

func (m *worker) Process(evt *telemetry.Event) {
	if evt == nil || len(m.exporters) == 0 {
		return
	}
	m.enqueueTask(func() {
		m.export(evt)
	}, evt.TeamID)
}

func (m *worker) export(evt *telemetry.Event) {
	var failedExporters []string
	for _, exporter := range m.exporters {
		ctx, cancel := context.WithTimeout(context.Background(), m.exportTimeout)
		err := exporter.Handle(ctx, evt)
		cancel()
		if err != nil {
			m.logger.WithFields(logrus.Fields{
				"team_id":     evt.TeamID,
				"analysis_id": evt.AnalysisID,
				"exporter":    exporter.Name(),
			}).WithError(err).Error("exporter failed")
			failedExporters = append(failedExporters, exporter.Name())
		}
	}
	if len(failedExporters) > 0 {
		prometheus.EventsDropped.Add(float64(len(failedExporters)))
		m.logger.WithField("failedExporters", failedExporters).
			Warnf("%d exporters failed to handle analysis event", len(failedExporters))
	}
}

func (m *worker) enqueueTask(task func(), teamID string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return
	}
	select {
	case m.taskChan <- task:
	default:
		prometheus.EventsDropped.Inc()
		m.logger.WithField("team_id", teamID).
			Warn("taskChan is full, dropping telemetry task")
	}
}
