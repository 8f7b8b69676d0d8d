package handler

import (
	"net/http"

	"dao/core"
	"dao/handler/hc"
	"dao/handler/rest"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Server server
type Server struct {
	cfg    *core.Config
	ledger core.Ledger
}

// New new server function
func New(
	cfg *core.Config,
	ledger core.Ledger,
) Server {
	return Server{
		cfg:    cfg,
		ledger: ledger,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	// statuses change with every vote
	r.Use(middleware.NoCache)
	r.Mount("/", rest.Handle(s.cfg.App.Name, s.ledger))

	return r
}

// HandleHealthCheck handle hc request
func (s Server) HandleHealthCheck(version string) http.Handler {
	return hc.Handle(s.cfg.App.Name, version)
}
