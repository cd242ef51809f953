// Package retry provides exponential-backoff retry for HTTP collaborators.
package retry

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"
)

// Config holds the configuration for retry logic.
type Config struct {
	MaxRetries      int
	BaseDelay       time.Duration
	MaxDelay        time.Duration
	BackoffMultiple float64
}

// DefaultConfig returns a sensible default retry configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		BaseDelay:       200 * time.Millisecond,
		MaxDelay:        5 * time.Second,
		BackoffMultiple: 2.0,
	}
}

// delay computes the backoff for the given zero-based attempt.
func (c Config) delay(attempt int) time.Duration {
	d := time.Duration(float64(c.BaseDelay) * math.Pow(c.BackoffMultiple, float64(attempt)))
	if d > c.MaxDelay {
		d = c.MaxDelay
	}
	return d
}

// Checker decides whether a failed attempt should be retried.
type Checker func(err error, statusCode int) bool

// Func performs one attempt. statusCode is 0 when the request never reached
// the server.
type Func func(attempt int) (result any, statusCode int, err error)

// Do runs fn until it succeeds, a non-retryable error occurs, the context is
// cancelled, or the attempts are exhausted.
func Do(ctx context.Context, name string, cfg Config, shouldRetry Checker, fn Func) (any, error) {
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := cfg.delay(attempt - 1)
			log.Printf("%s: retry attempt %d/%d after %v", name, attempt+1, cfg.MaxRetries+1, wait)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		result, statusCode, err := fn(attempt)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if shouldRetry == nil || !shouldRetry(err, statusCode) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%s: retries exhausted: %w", name, lastErr)
}
