package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.xavd.id/advent/core"
	"go.xavd.id/advent/log"
)

type Server struct {
	c     *core.Config
	store core.Store
	log   *zap.SugaredLogger

	server *http.Server
}

func NewServer(c *core.Config, store core.Store) *Server {
	return &Server{
		c:     c,
		store: store,
		log:   log.S().Named("server"),
	}
}

func (s *Server) Start() error {
	addr := ":" + strconv.Itoa(s.c.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.server = &http.Server{
		Handler:           s.makeRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Infow("listening", "addr", ln.Addr().String(), "production", s.c.Production())
	return s.server.Serve(ln)
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
