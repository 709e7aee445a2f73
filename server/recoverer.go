package server

import (
	"net/http"
	"runtime/debug"
)

// withRecoverer turns a panicking handler into a JSON 500 response.
func (s *Server) withRecoverer(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil || rvr == http.ErrAbortHandler {
				return
			}

			s.log.Errorw("panic while serving", "path", r.URL.Path, "panic", rvr, "stack", string(debug.Stack()))
			s.serveJSON(w, http.StatusInternalServerError, map[string]string{
				"error": http.StatusText(http.StatusInternalServerError),
			})
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
