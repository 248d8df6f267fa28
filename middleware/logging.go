package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const TraceIDHeader = "X-Trace-ID"

// GenerateTraceID generates a trace-id using random bytes.
func GenerateTraceID() string {
	// 16 random bytes (32 hex characters)
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// LoggingTransport is an http.RoundTripper that logs every outbound request
// and its response with a trace-id, using Zerolog. It attaches a fresh
// trace-id header when the request does not carry one already.
type LoggingTransport struct {
	Base   http.RoundTripper
	Logger zerolog.Logger
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	traceID := req.Header.Get(TraceIDHeader)
	if traceID == "" {
		traceID = GenerateTraceID()
		req.Header.Set(TraceIDHeader, traceID)
	}

	logger := t.Logger.With().Str("trace_id", traceID).Logger()

	hasAuth := req.Header.Get("Authorization") != ""
	logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Bool("auth_attached", hasAuth).
		Msg("API request")

	resp, err := t.base().RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		logger.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", duration).
			Msg("API request failed")
		return nil, err
	}

	var event *zerolog.Event
	if resp.StatusCode >= 400 {
		event = logger.Warn()
	} else {
		event = logger.Debug()
	}
	event.
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("API response")

	return resp, nil
}

func (t *LoggingTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}
