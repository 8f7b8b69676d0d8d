package rest

import (
	"net/http"

	"dao/core"
	"dao/handler/render"
	"dao/handler/views"

	"github.com/go-chi/chi"
)

func handleMembers(ledger core.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := ledger.Members(r.Context())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{
			"data": views.MemberViews(members),
		})
	}
}

func handleMember(ledger core.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		member, err := ledger.Member(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{
			"data": views.MemberView(*member),
		})
	}
}

func handleTreasury(ledger core.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, render.H{
			"data": views.Treasury{Balance: ledger.Treasury()},
		})
	}
}
