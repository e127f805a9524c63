// Package middleware provides HTTP middleware for the preview server:
// request logging, request metrics and panic recovery.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/logfields"
	"git.home.luguber.info/inful/shanksdocs/internal/metrics"
)

// Chain returns a middleware wrapper that applies logging, metrics and
// panic recovery around a handler. A nil recorder disables metrics.
func Chain(logger *slog.Logger, adapter *ferrors.HTTPErrorAdapter, recorder metrics.Recorder) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return func(next http.Handler) http.Handler {
		return instrument(logger, recorder, panicRecovery(logger, adapter, next))
	}
}

// instrument logs and records method, path, status and duration of every request.
func instrument(logger *slog.Logger, recorder metrics.Recorder, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		duration := time.Since(start)
		recorder.ObserveHTTPRequest(r.Method, wrapped.statusCode, duration)
		logger.Info("HTTP request",
			logfields.Method(r.Method),
			logfields.Path(r.URL.Path),
			logfields.Status(wrapped.statusCode),
			slog.Duration("duration", duration),
			logfields.UserAgent(r.UserAgent()),
			logfields.RemoteAddr(r.RemoteAddr))
	})
}

// panicRecovery recovers from panics and writes a structured error response via the HTTPErrorAdapter.
func panicRecovery(logger *slog.Logger, adapter *ferrors.HTTPErrorAdapter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("HTTP handler panic",
					slog.Any("panic", rec),
					logfields.Path(r.URL.Path),
					logfields.Method(r.Method),
					logfields.RemoteAddr(r.RemoteAddr))

				adapter.WriteErrorResponse(w, r, panicError(rec, r))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// panicError keeps the classification of a panicked ClassifiedError and
// adds the request to its context. Anything else is an internal error.
func panicError(rec any, r *http.Request) error {
	if err, ok := rec.(error); ok {
		if ce, ok := ferrors.AsClassified(err); ok {
			return ce.WithContext("path", r.URL.Path).WithContext("method", r.Method)
		}
	}
	return ferrors.InternalError("internal server error").
		WithContext("path", r.URL.Path).
		WithContext("method", r.Method).
		Build()
}

// responseWriter captures status codes for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Flush keeps server-sent event streams working behind the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
