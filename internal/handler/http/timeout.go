package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout returns middleware that bounds each request to the given
// duration. Summarization requests call external providers, so the bound
// covers the whole pipeline; a request that overruns gets a 504 and its
// context is canceled so in-flight provider calls stop.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()

			guard := &deadlineWriter{ResponseWriter: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(guard, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				guard.expire()
			}
		})
	}
}

// deadlineWriter serializes writes between the handler goroutine and the
// timeout path. Whichever side writes first wins; the other side's writes
// are dropped.
type deadlineWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	written bool
	expired bool
}

func (dw *deadlineWriter) WriteHeader(statusCode int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.expired || dw.written {
		return
	}
	dw.written = true
	dw.ResponseWriter.WriteHeader(statusCode)
}

func (dw *deadlineWriter) Write(data []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !dw.written {
		dw.written = true
		dw.ResponseWriter.WriteHeader(http.StatusOK)
	}
	return dw.ResponseWriter.Write(data)
}

// expire writes the 504 response unless the handler already responded.
func (dw *deadlineWriter) expire() {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.expired = true
	if dw.written {
		return
	}
	dw.ResponseWriter.Header().Set("Content-Type", "application/json")
	dw.ResponseWriter.WriteHeader(http.StatusGatewayTimeout)
	_, _ = dw.ResponseWriter.Write([]byte(`{"error":"request timeout"}`))
}
