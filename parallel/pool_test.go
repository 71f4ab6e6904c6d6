package parallel

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestPool(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		pool := Start(workers)

		var sum atomic.Int64
		for i := range 100 {
			pool.Go(func() error {
				sum.Add(int64(i))
				if i%10 == 0 {
					return errors.New("failed")
				}
				return nil
			})
		}

		stats := pool.Wait()
		if got := sum.Load(); got != 4950 {
			t.Errorf("workers=%d: sum = %d, want 4950", workers, got)
		}
		if stats.Processed != 90 || stats.Errors != 10 || stats.Total() != 100 {
			t.Errorf("workers=%d: stats = %+v", workers, stats)
		}

		// a second Wait is harmless
		if again := pool.Wait(); again != stats {
			t.Errorf("workers=%d: second Wait() = %+v", workers, again)
		}
	}
}

func TestInline(t *testing.T) {
	pool := Start(1)
	ran := false
	pool.Go(func() error {
		ran = true
		return nil
	})
	if !ran {
		t.Error("single worker pool did not run the job inline")
	}
	pool.Wait()
}
