package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// RetryConfig bounds retries of one consultation call. The wait doubles per
// attempt up to MaxWait unless the vendor sent Retry-After.
type RetryConfig struct {
	Attempts int
	Wait     time.Duration
	MaxWait  time.Duration
}

type retryingProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry retries rate limits and outages. An invalid answer is asked for
// once more; truncation, cancellation and non-vendor errors are final.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	return &retryingProvider{inner: p, cfg: cfg}
}

func (r *retryingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	invalidSeen := false
	for attempt := 1; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if attempt >= r.cfg.Attempts || !retryable(err, &invalidSeen) {
			return nil, err
		}

		timer := time.NewTimer(r.wait(attempt, err))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *retryingProvider) ModelID() string {
	return r.inner.ModelID()
}

func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch FailureOf(err) {
	case FailureRateLimited, FailureUnavailable:
		return true
	case FailureInvalid:
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	}
	return false
}

// wait returns a jittered delay in [d/2, d] where d is the doubled wait for
// this attempt.
func (r *retryingProvider) wait(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	d := r.cfg.Wait << (attempt - 1)
	if d <= 0 || d > r.cfg.MaxWait {
		d = r.cfg.MaxWait
	}
	if d <= 0 {
		return 0
	}
	return d/2 + rand.N(d/2+1)
}
