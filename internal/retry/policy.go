// Package retry provides a small backoff policy for transient failures,
// such as reading a content tree while an editor is still saving it.
package retry

import (
	"context"
	"time"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
)

// Mode selects how delays grow between attempts.
type Mode string

const (
	Fixed       Mode = "fixed"
	Linear      Mode = "linear"
	Exponential Mode = "exponential"
)

// Policy encapsulates retry/backoff settings. It is immutable after construction.
type Policy struct {
	Mode       Mode
	Initial    time.Duration // base delay
	Max        time.Duration // cap for growth
	MaxRetries int           // attempts after the first failure
}

// DefaultPolicy returns linear backoff starting at 200ms, capped at 2s, with 3 retries.
func DefaultPolicy() Policy {
	return Policy{Mode: Linear, Initial: 200 * time.Millisecond, Max: 2 * time.Second, MaxRetries: 3}
}

// NewPolicy builds a policy from raw fields; zero or unknown values fall back to defaults.
func NewPolicy(mode Mode, initial, maxDuration time.Duration, maxRetries int) Policy {
	p := DefaultPolicy()
	if maxRetries >= 0 {
		p.MaxRetries = maxRetries
	}
	if initial > 0 {
		p.Initial = initial
	}
	if maxDuration > 0 {
		p.Max = maxDuration
	}
	switch mode {
	case Fixed, Linear, Exponential:
		p.Mode = mode
	}
	if p.Initial > p.Max {
		p.Initial = p.Max
	}
	return p
}

// Delay returns the backoff before retry number n (1-based).
func (p Policy) Delay(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	var d time.Duration
	switch p.Mode {
	case Fixed:
		return p.Initial
	case Exponential:
		d = p.Initial << (n - 1)
	default:
		d = time.Duration(n) * p.Initial
	}
	if d > p.Max || d <= 0 {
		return p.Max
	}
	return d
}

// Validate ensures the policy can be applied.
func (p Policy) Validate() error {
	switch {
	case p.Mode != Fixed && p.Mode != Linear && p.Mode != Exponential:
		return ferrors.ValidationError("unknown retry backoff mode").
			WithContext("mode", string(p.Mode)).
			Build()
	case p.Initial <= 0:
		return ferrors.ValidationError("retry initial delay must be positive").Build()
	case p.Max <= 0:
		return ferrors.ValidationError("retry max delay must be positive").Build()
	case p.MaxRetries < 0:
		return ferrors.ValidationError("retry count cannot be negative").Build()
	}
	return nil
}

// Do calls fn until it succeeds, the retries are used up or ctx ends.
// Classified errors that do not allow retries end the loop at once.
// It returns the last error from fn, or the context error when canceled
// while waiting.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	err := fn()
	for n := 1; retryable(err) && n <= p.MaxRetries; n++ {
		t := time.NewTimer(p.Delay(n))
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		err = fn()
	}
	return err
}

func retryable(err error) bool {
	if err == nil {
		return false
	}
	if ce, ok := ferrors.AsClassified(err); ok {
		return ce.CanRetry()
	}
	return true
}
