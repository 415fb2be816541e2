package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	studysession "github.com/flashdeck/backend/internal/domain/study_session"
	"github.com/flashdeck/backend/internal/worker"
)

const (
	recordTimeout = 10 * time.Second
	closeGrace    = 2 * time.Second
	queueSize     = 64
)

var errDiscarded = errors.New("discarded on close")

// AnswerRecorder persists study outcomes in the background so the study
// loop never waits on the network. Failures are logged and otherwise
// ignored; local session state is never rolled back.
type AnswerRecorder struct {
	stats   studysession.StatsSink
	history studysession.HistorySink
	logger  *slog.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	pool    *worker.Pool[error]
	drained sync.WaitGroup
}

// NewAnswerRecorder starts workers goroutines that deliver outcomes to the
// given sinks. history may be nil, in which case summaries are dropped.
func NewAnswerRecorder(stats studysession.StatsSink, history studysession.HistorySink, workers int, logger *slog.Logger) *AnswerRecorder {
	ctx, cancel := context.WithCancel(context.Background())
	r := &AnswerRecorder{
		stats:   stats,
		history: history,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		pool:    worker.NewPool[error](workers, queueSize),
	}

	r.drained.Add(1)
	go r.drain()

	return r
}

// RecordAnswer queues a per-card stats update and returns immediately. When
// the queue is full the update is logged and dropped.
func (r *AnswerRecorder) RecordAnswer(cardID string, correct bool) {
	r.submit("answer:"+cardID, func(ctx context.Context) error {
		return r.stats.RecordAnswer(ctx, cardID, correct)
	})
}

// RecordSession queues the summary of a finished pass.
func (r *AnswerRecorder) RecordSession(summary studysession.Summary) {
	if r.history == nil {
		return
	}
	r.submit("session:"+summary.DeckID, func(ctx context.Context) error {
		return r.history.RecordSession(ctx, summary)
	})
}

// Close stops accepting work and waits up to closeGrace for queued results.
// Whatever is still pending after that is cancelled and discarded.
func (r *AnswerRecorder) Close() {
	done := make(chan struct{})
	go func() {
		r.pool.Close()
		r.drained.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(closeGrace):
		r.logger.Warn("discarding unsent study results")
		r.cancel()
		<-done
	}
	r.cancel()
}

func (r *AnswerRecorder) submit(jobID string, fn func(ctx context.Context) error) {
	err := r.pool.TrySubmit(jobID, func() error {
		if r.ctx.Err() != nil {
			return errDiscarded
		}
		ctx, cancel := context.WithTimeout(r.ctx, recordTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			if r.ctx.Err() != nil {
				return errDiscarded
			}
			return fmt.Errorf("%s: %w", jobID, err)
		}
		return nil
	})
	switch {
	case errors.Is(err, worker.ErrClosed):
		r.logger.Warn("recorder closed, dropping job", "job", jobID)
	case errors.Is(err, worker.ErrQueueFull):
		r.logger.Warn("recorder queue full, dropping job", "job", jobID)
	}
}

// drain consumes pool results until the pool is closed.
func (r *AnswerRecorder) drain() {
	defer r.drained.Done()
	for res := range r.pool.Results() {
		if errors.Is(res.Output, errDiscarded) {
			r.logger.Debug("discarded study result", "job", res.JobID)
			continue
		}
		if res.Output != nil {
			r.logger.Error("failed to record study result",
				"job", res.JobID,
				"error", res.Output,
			)
			continue
		}
		r.logger.Debug("recorded study result", "job", res.JobID)
	}
}
