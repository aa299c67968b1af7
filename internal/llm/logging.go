package llm

import (
	"context"
	"log"
	"time"
)

type loggingProvider struct {
	inner  Provider
	logger *log.Logger
}

// WithLogging logs one line per consultation call. The case text and the
// answer are never logged since they carry health information. A nil logger
// uses the standard logger.
func WithLogging(p Provider, logger *log.Logger) Provider {
	if logger == nil {
		logger = log.Default()
	}
	return &loggingProvider{inner: p, logger: logger}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start).Round(time.Millisecond)

	if err != nil {
		l.logger.Printf("llm: purpose=%s model=%s latency=%s image=%t failure=%q error=%v",
			req.Purpose, l.inner.ModelID(), latency, req.Image != nil, FailureOf(err), err)
		return nil, err
	}
	l.logger.Printf("llm: purpose=%s model=%s latency=%s image=%t tokens_in=%d tokens_out=%d",
		req.Purpose, resp.Model, latency, req.Image != nil, resp.TokensIn, resp.TokensOut)
	return resp, nil
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
