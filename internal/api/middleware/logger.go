package middleware

import (
	"log"
	"net/http"
	"time"
)

// Logger writes one line per request with status, size and duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := newStatusRecorder(w)
		start := time.Now()

		next.ServeHTTP(rw, r)

		log.Printf("[http] %s %s %d %dB %s", r.Method, r.URL.RequestURI(), rw.status, rw.bytes, time.Since(start).Round(time.Microsecond))
	})
}

// statusRecorder captures the status code and body size written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if !sr.wroteHeader {
		sr.status = code
		sr.wroteHeader = true
	}
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wroteHeader = true
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}
