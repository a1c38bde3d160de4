package async_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/idwatch/pkg/utils/async"
)

func waitOrFail(t *testing.T, wg *sync.WaitGroup, timeout time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		t.Fatal("async handler did not complete within timeout")
	}
}

func TestDispatch(t *testing.T) {
	t.Run("Execute handler asynchronously", func(t *testing.T) {
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		waitOrFail(t, &wg, time.Second)
		gt.True(t, executed)
	})

	t.Run("Handle errors in async handler", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			return goerr.New("slack is down")
		})

		waitOrFail(t, &wg, time.Second)
	})

	t.Run("Recover from panic in async handler", func(t *testing.T) {
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(context.Background(), func(ctx context.Context) error {
			defer wg.Done()
			panic("test panic")
		})

		waitOrFail(t, &wg, time.Second)
	})

	t.Run("Multiple async dispatches", func(t *testing.T) {
		var wg sync.WaitGroup
		var mu sync.Mutex
		counter := 0

		for i := 0; i < 10; i++ {
			wg.Add(1)
			async.Dispatch(context.Background(), func(ctx context.Context) error {
				defer wg.Done()
				mu.Lock()
				counter++
				mu.Unlock()
				return nil
			})
		}

		waitOrFail(t, &wg, 2*time.Second)
		gt.Equal(t, 10, counter)
	})
}

func TestContextPreservation(t *testing.T) {
	t.Run("Handler is not cancelled with the request context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var wg sync.WaitGroup
		var handlerErr error

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			handlerErr = ctx.Err()
			return nil
		})
		cancel()

		waitOrFail(t, &wg, time.Second)
		gt.NoError(t, handlerErr)
	})

	t.Run("Request id is preserved", func(t *testing.T) {
		ctx := async.WithRequestID(context.Background(), "req-42")
		var wg sync.WaitGroup
		var got string

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			got = async.RequestID(ctx)
			return nil
		})

		waitOrFail(t, &wg, time.Second)
		gt.Equal(t, "req-42", got)
	})

	t.Run("Logger is preserved in background context", func(t *testing.T) {
		ctx := ctxlog.With(context.Background(), ctxlog.From(context.Background()))
		var wg sync.WaitGroup
		hasLogger := false

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			hasLogger = ctxlog.From(ctx) != nil
			return nil
		})

		waitOrFail(t, &wg, time.Second)
		gt.True(t, hasLogger)
	})

	t.Run("Request id is empty when not set", func(t *testing.T) {
		gt.Equal(t, "", async.RequestID(context.Background()))
	})
}
