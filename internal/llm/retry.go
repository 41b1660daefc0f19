package llm

import (
	"context"
	"fmt"
	"time"
)

// Retrying wraps a Client with a bounded retry loop and a fixed delay
// between attempts. Transient service failures (rate limits, timeouts)
// surface to the caller only after every attempt fails.
type Retrying struct {
	inner    Client
	attempts int
	delay    time.Duration
}

// WithRetry returns client unchanged when attempts <= 1
func WithRetry(client Client, attempts int, delay time.Duration) Client {
	if attempts <= 1 {
		return client
	}
	return &Retrying{inner: client, attempts: attempts, delay: delay}
}

func (r *Retrying) Name() string {
	return r.inner.Name()
}

func (r *Retrying) Complete(ctx context.Context, req Request) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= r.attempts; attempt++ {
		text, err := r.inner.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt < r.attempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(r.delay):
			}
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", r.attempts, lastErr)
}
