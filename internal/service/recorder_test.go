package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studysession "github.com/flashdeck/backend/internal/domain/study_session"
	"github.com/flashdeck/backend/internal/service"
)

type answer struct {
	cardID  string
	correct bool
}

type fakeSink struct {
	mu        sync.Mutex
	answers   []answer
	summaries []studysession.Summary
	err       error
}

func (f *fakeSink) RecordAnswer(_ context.Context, cardID string, correct bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers = append(f.answers, answer{cardID, correct})
	return f.err
}

func (f *fakeSink) RecordSession(_ context.Context, s studysession.Summary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries = append(f.summaries, s)
	return f.err
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestAnswerRecorder_DeliversAll(t *testing.T) {
	sink := &fakeSink{}
	logger, _ := newLogger()
	rec := service.NewAnswerRecorder(sink, sink, 3, logger)

	for i := 0; i < 20; i++ {
		rec.RecordAnswer("card", i%2 == 0)
	}
	rec.RecordSession(studysession.Summary{DeckID: "deck-1"})
	rec.Close()

	assert.Len(t, sink.answers, 20)
	correct := 0
	for _, a := range sink.answers {
		if a.correct {
			correct++
		}
	}
	assert.Equal(t, 10, correct)
	require.Len(t, sink.summaries, 1)
	assert.Equal(t, "deck-1", sink.summaries[0].DeckID)
}

func TestAnswerRecorder_LogsFailures(t *testing.T) {
	sink := &fakeSink{err: errors.New("connection refused")}
	logger, buf := newLogger()
	rec := service.NewAnswerRecorder(sink, nil, 1, logger)

	rec.RecordAnswer("c1", true)
	rec.Close()

	assert.Len(t, sink.answers, 1)
	assert.Contains(t, buf.String(), "failed to record study result")
	assert.Contains(t, buf.String(), "answer:c1")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestAnswerRecorder_NilHistoryDropsSummaries(t *testing.T) {
	sink := &fakeSink{}
	logger, _ := newLogger()
	rec := service.NewAnswerRecorder(sink, nil, 1, logger)

	rec.RecordSession(studysession.Summary{DeckID: "d"})
	rec.Close()

	assert.Empty(t, sink.summaries)
}

func TestAnswerRecorder_AfterClose(t *testing.T) {
	sink := &fakeSink{}
	logger, buf := newLogger()
	rec := service.NewAnswerRecorder(sink, sink, 1, logger)
	rec.Close()

	rec.RecordAnswer("late", true)
	rec.Close()

	assert.Empty(t, sink.answers)
	assert.Contains(t, buf.String(), "dropping job")
}

type hangingSink struct{}

func (hangingSink) RecordAnswer(ctx context.Context, _ string, _ bool) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestAnswerRecorder_HungSinkNeverBlocksCaller(t *testing.T) {
	logger, buf := newLogger()
	rec := service.NewAnswerRecorder(hangingSink{}, nil, 2, logger)

	submitted := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			rec.RecordAnswer("card", false)
		}
		close(submitted)
	}()

	select {
	case <-submitted:
	case <-time.After(time.Second):
		t.Fatal("RecordAnswer blocked while the sink was hung")
	}
	assert.Contains(t, buf.String(), "recorder queue full, dropping job")

	closed := make(chan struct{})
	go func() {
		rec.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close waited on hung jobs")
	}
	assert.Contains(t, buf.String(), "discarding unsent study results")
	assert.NotContains(t, buf.String(), "failed to record study result")
}
