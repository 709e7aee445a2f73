package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.xavd.id/advent/core"
	"go.xavd.id/advent/log"
)

const (
	rssPath         = "/rss.xml"
	atomPath        = "/atom.xml"
	jsonFeedPath    = "/feed.json"
	writeupsPath    = "/api/writeups"
	conceptsPath    = "/api/concepts"
	breadcrumbsPath = "/api/breadcrumbs"
	healthPath      = "/healthz"
)

func (s *Server) makeRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(s.withRecoverer)
	r.Use(log.WithZap)
	r.Use(middleware.CleanPath)
	r.Use(middleware.GetHead)

	r.Get(rssPath, s.feedGet(core.FeedRSS))
	r.Get(atomPath, s.feedGet(core.FeedAtom))
	r.Get(jsonFeedPath, s.feedGet(core.FeedJSON))

	r.Get(writeupsPath, s.writeupsGet)
	r.Get(conceptsPath, s.conceptsGet)
	r.Get(breadcrumbsPath, s.breadcrumbsGet)

	r.Get(healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.serveErrorJSON(w, http.StatusNotFound, nil)
	})

	return r
}
