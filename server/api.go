package server

import (
	"net/http"

	"go.xavd.id/advent/core"
)

type yearsPage struct {
	Years    []int           `json:"years"`
	Writeups core.YearGroups `json:"writeups"`
}

func (s *Server) writeupsGet(w http.ResponseWriter, r *http.Request) {
	groups, err := core.GetWriteupsByYear(r.Context(), s.store, s.c.Production())
	if err != nil {
		s.serveErrorJSON(w, http.StatusInternalServerError, err)
		return
	}

	s.serveJSON(w, http.StatusOK, &yearsPage{
		Years:    groups.Years(),
		Writeups: groups,
	})
}

func (s *Server) conceptsGet(w http.ResponseWriter, r *http.Request) {
	groups, err := core.GetWriteupsByConcept(r.Context(), s.store, s.c.Production())
	if err != nil {
		s.serveErrorJSON(w, http.StatusInternalServerError, err)
		return
	}

	s.serveJSON(w, http.StatusOK, groups)
}

func (s *Server) breadcrumbsGet(w http.ResponseWriter, r *http.Request) {
	s.serveJSON(w, http.StatusOK, core.ParseBreadcrumbs(r.URL.Query().Get("path")))
}
