package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunParallelTasks(t *testing.T) {
	t.Parallel()

	t.Run("results and errors keep task order", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		tasks := []ParallelTask[int]{
			func(context.Context) (int, error) {
				time.Sleep(20 * time.Millisecond)
				return 1, nil
			},
			func(context.Context) (int, error) { return 0, boom },
			func(context.Context) (int, error) { return 3, nil },
		}

		results, errs := RunParallelTasks(context.Background(), tasks)
		if results[0] != 1 || results[2] != 3 {
			t.Errorf("results = %v, want [1 _ 3]", results)
		}
		if errs[0] != nil || !errors.Is(errs[1], boom) || errs[2] != nil {
			t.Errorf("errs = %v", errs)
		}
	})

	t.Run("tasks run concurrently", func(t *testing.T) {
		t.Parallel()

		var running, peak atomic.Int32
		task := func(context.Context) (struct{}, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(30 * time.Millisecond)
			running.Add(-1)
			return struct{}{}, nil
		}

		RunParallelTasks(context.Background(), []ParallelTask[struct{}]{task, task, task})
		if peak.Load() < 2 {
			t.Errorf("peak concurrency = %d, want at least 2", peak.Load())
		}
	})

	t.Run("no tasks", func(t *testing.T) {
		t.Parallel()

		results, errs := RunParallelTasks[string](context.Background(), nil)
		if len(results) != 0 || len(errs) != 0 {
			t.Errorf("got %v %v, want empty", results, errs)
		}
	})
}
