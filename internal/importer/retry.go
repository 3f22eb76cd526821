package importer

import (
	"context"
	"fmt"
	"time"
)

const maxRetryDelay = 30 * time.Second

// retryPolicy retries a storage write with doubling delay between attempts.
type retryPolicy struct {
	maxRetries int
	backoff    time.Duration
}

func newRetryPolicy(maxRetries int, backoff time.Duration) retryPolicy {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if backoff <= 0 {
		backoff = 100 * time.Millisecond
	}
	return retryPolicy{maxRetries: maxRetries, backoff: backoff}
}

// do runs fn until it succeeds, retries run out, or ctx ends. onFail sees
// every failed attempt, numbered from 1.
func (p retryPolicy) do(ctx context.Context, fn func(context.Context) error, onFail func(attempt int, err error)) error {
	delay := p.backoff
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if onFail != nil {
			onFail(attempt, err)
		}
		if attempt > p.maxRetries {
			return fmt.Errorf("after %d attempts: %w", attempt, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		delay *= 2
		if delay > maxRetryDelay {
			delay = maxRetryDelay
		}
	}
}
