package ble

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Retry defaults for BLE connect and write operations.
const (
	DefaultRetryAttempts = 3
	DefaultRetryBackoff  = 250 * time.Millisecond
)

// RetryPolicy retries a fallible operation a fixed number of times with a
// constant delay. Errors for which Retryable returns false end the loop on
// the first attempt.
type RetryPolicy struct {
	Attempts  int
	Backoff   time.Duration
	Retryable func(error) bool

	// OnRetry, if set, is called before each delayed retry.
	OnRetry func(err error, attempt int)
}

// DefaultRetryPolicy returns the policy used for every BLE write.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts:  DefaultRetryAttempts,
		Backoff:   DefaultRetryBackoff,
		Retryable: IsTransient,
	}
}

// IsTransient reports whether err is a transport hiccup worth retrying.
// Device-not-found is never transient.
func IsTransient(err error) bool {
	if errors.Is(err, ErrDeviceNotFound) {
		return false
	}
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrNotConnected)
}

// Do runs op until it succeeds, fails permanently, or attempts run out.
// The last error is returned unwrapped.
func (p RetryPolicy) Do(ctx context.Context, name string, op func() error) error {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 1
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = IsTransient
	}

	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		err := op()
		if err == nil {
			return struct{}{}, nil
		}
		if !retryable(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		if attempt >= attempts {
			slog.Error("[BLE] retry exhausted", "op", name, "attempts", attempt, "error", err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(p.Backoff)),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.Debug("[BLE] retrying", "op", name, "attempt", attempt, "delay", next, "error", err)
			if p.OnRetry != nil {
				p.OnRetry(err, attempt)
			}
		}),
	)
	return err
}
