package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/blaisecz/energy-tracker/pkg/problem"
)

// Recovery turns a handler panic into a 500 problem response. Nothing is
// written when the handler had already started the response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)
		defer func() {
			err := recover()
			if err == nil {
				return
			}
			if err == http.ErrAbortHandler {
				panic(err)
			}
			log.Printf("[http] panic in %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
			if !rec.wroteHeader {
				problem.InternalError("An unexpected error occurred").WithInstance(r.URL.Path).Write(rec)
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
