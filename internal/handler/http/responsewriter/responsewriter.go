// Package responsewriter wraps http.ResponseWriter so middleware can
// observe the status code and body size after the handler runs.
package responsewriter

import "net/http"

// ResponseWriter records the status code and bytes written. The header is
// written at most once; later calls are ignored, matching net/http.
type ResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
	wrote  bool
}

// Wrap returns a recording wrapper around w. The status defaults to 200
// for handlers that never call WriteHeader.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *ResponseWriter) WriteHeader(statusCode int) {
	if w.wrote {
		return
	}
	w.wrote = true
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// StatusCode returns the recorded status code.
func (w *ResponseWriter) StatusCode() int {
	return w.status
}

// BytesWritten returns the recorded body size.
func (w *ResponseWriter) BytesWritten() int {
	return w.bytes
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
