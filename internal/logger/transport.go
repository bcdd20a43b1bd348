package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Transport logs every outbound request once it completes. Headers are never
// logged since they carry credentials.
type Transport struct {
	Base   http.RoundTripper
	Logger *zap.Logger
}

func NewTransport(base http.RoundTripper, l *zap.Logger) *Transport {
	return &Transport{Base: base, Logger: l}
}

func (t *Transport) RoundTrip(r *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	log := FromCtx(r.Context(), t.Logger).With(
		zap.String("method", r.Method),
		zap.String("host", r.URL.Host),
		zap.String("path", r.URL.Path),
	)

	start := time.Now()
	resp, err := base.RoundTrip(r)
	if err != nil {
		log.Warn("outbound request failed",
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("outbound request",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	return resp, nil
}
