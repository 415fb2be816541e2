package worker_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/flashdeck/backend/internal/worker"
)

func TestPool_RunsAllJobs(t *testing.T) {
	pool := worker.NewPool[int](3, 10)

	for i := 0; i < 5; i++ {
		n := i
		if !pool.Submit(string(rune('a'+i)), func() int { return n * n }) {
			t.Fatalf("submit %d rejected", i)
		}
	}

	var got []int
	for i := 0; i < 5; i++ {
		res := <-pool.Results()
		got = append(got, res.Output)
	}
	pool.Close()

	sort.Ints(got)
	want := []int{0, 1, 4, 9, 16}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPool_SubmitAfterClose(t *testing.T) {
	pool := worker.NewPool[string](1, 1)
	pool.Close()

	if pool.Submit("late", func() string { return "x" }) {
		t.Error("expected submit after close to be rejected")
	}

	if _, ok := <-pool.Results(); ok {
		t.Error("expected results channel to be closed")
	}
}

func TestPool_CloseDrainsQueuedJobs(t *testing.T) {
	pool := worker.NewPool[string](1, 4)
	pool.Submit("one", func() string { return "1" })
	pool.Submit("two", func() string { return "2" })

	done := make(chan []string)
	go func() {
		var ids []string
		for res := range pool.Results() {
			ids = append(ids, res.JobID)
		}
		done <- ids
	}()

	pool.Close()
	ids := <-done
	if len(ids) != 2 {
		t.Errorf("expected 2 results before close, got %v", ids)
	}
}

func TestPool_TrySubmitFullQueue(t *testing.T) {
	pool := worker.NewPool[int](1, 1)
	release := make(chan struct{})
	started := make(chan struct{})

	if err := pool.TrySubmit("busy", func() int { close(started); <-release; return 1 }); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	<-started
	if err := pool.TrySubmit("queued", func() int { return 2 }); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if err := pool.TrySubmit("overflow", func() int { return 3 }); !errors.Is(err, worker.ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}

	close(release)
	go pool.Close()
	n := 0
	for range pool.Results() {
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 results, got %d", n)
	}

	if err := pool.TrySubmit("late", func() int { return 4 }); !errors.Is(err, worker.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
