package rest

import (
	"net/http"

	"dao/core"
	"dao/handler/render"

	"github.com/go-chi/chi"
	"github.com/twitchtv/twirp"
)

// Handle handle rest api request
func Handle(name string, ledger core.Ledger) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Err(w, twirp.NotFoundError("not found"))
	})

	router.Route("/proposals", func(r chi.Router) {
		r.Get("/", handleProposals(ledger))
		r.Post("/", handleCreateProposal(ledger))
		r.Post("/recompute", handleRecompute(ledger))
		r.Get("/{id}", handleProposal(ledger))
		r.Post("/{id}/votes", handleVote(ledger))
	})

	router.Get("/members", handleMembers(ledger))
	router.Get("/members/{id}", handleMember(ledger))
	router.Get("/treasury", handleTreasury(ledger))
	router.Get("/report", handleReport(name, ledger))

	return router
}
