package server

import (
	"net/http"

	"go.xavd.id/advent/core"
)

func (s *Server) feedGet(format core.FeedFormat) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww, err := core.GetPublishedWriteups(r.Context(), s.store, s.c.Production())
		if err != nil {
			s.serveErrorJSON(w, http.StatusInternalServerError, err)
			return
		}

		feed, err := core.RenderFeed(&core.Feed{
			Title:       s.c.Site.Title,
			Description: s.c.Site.Description,
			Site:        s.c.AbsoluteURL("/"),
			Items:       core.BuildFeed(ww),
		}, format)
		if err != nil {
			s.serveErrorJSON(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Cache-Control", "no-cache")
		_, err = w.Write([]byte(feed))
		if err != nil {
			s.log.Warnw("could not write feed", "path", r.URL.Path, "err", err)
		}
	}
}
