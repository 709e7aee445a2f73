package server

import (
	"encoding/json"
	"net/http"
)

func (s *Server) serveJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		s.log.Errorw("error while serving json", "err", err)
	}
}

func (s *Server) serveErrorJSON(w http.ResponseWriter, code int, err error) {
	data := map[string]string{
		"error": http.StatusText(code),
	}

	if err != nil {
		s.log.Errorw("request failed", "status", code, "err", err)
		if code < http.StatusInternalServerError {
			data["error_description"] = err.Error()
		}
	}

	s.serveJSON(w, code, data)
}
