package middleware

import (
	"net/http"
	"runtime/debug"
)

// Recover превращает панику обработчика в ответ 500
func Recover(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic in %s %s (request_id=%s): %v\n%s",
						r.Method, r.URL.Path, GetRequestID(r.Context()), rec, debug.Stack())
					w.Header().Set("Content-Type", "application/json; charset=utf-8")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"erro interno do servidor"}` + "\n"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
