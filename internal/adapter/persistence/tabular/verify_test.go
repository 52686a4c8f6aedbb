package tabular

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond, Timeout: 200 * time.Millisecond}
}

func TestWaitFor(t *testing.T) {
	t.Run("succeeds after retries", func(t *testing.T) {
		calls := 0
		err := WaitFor(context.Background(), fastPolicy(), func(context.Context) (bool, error) {
			calls++
			return calls >= 3, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Fatalf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("times out", func(t *testing.T) {
		p := fastPolicy()
		p.Timeout = 20 * time.Millisecond
		err := WaitFor(context.Background(), p, func(context.Context) (bool, error) { return false, nil })
		if !errors.Is(err, ErrVerificationTimeout) {
			t.Fatalf("expected ErrVerificationTimeout, got %v", err)
		}
	})

	t.Run("check error stops immediately", func(t *testing.T) {
		boom := errors.New("read failed")
		calls := 0
		err := WaitFor(context.Background(), fastPolicy(), func(context.Context) (bool, error) {
			calls++
			return false, boom
		})
		if !errors.Is(err, boom) || calls != 1 {
			t.Fatalf("expected single failing call, got %d calls, err %v", calls, err)
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := WaitFor(ctx, fastPolicy(), func(context.Context) (bool, error) { return false, nil })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestRetryPolicy_Wait(t *testing.T) {
	calls := 0
	err := fastPolicy().Wait(context.Background(), func(context.Context) (bool, error) {
		calls++
		return calls == 2, nil
	})
	if err != nil || calls != 2 {
		t.Fatalf("expected success on second call, got %d calls, err %v", calls, err)
	}
}
