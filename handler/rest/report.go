package rest

import (
	"net/http"

	"dao/core"
	"dao/handler/render"
	"dao/service/proposal"
)

func handleReport(name string, ledger core.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		proposals, err := ledger.DisplayProposals(ctx, 0, 0)
		if err != nil {
			render.Err(w, err)
			return
		}

		view, err := proposal.Render(name, ledger.Treasury(), proposals)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.Text(w, string(view))
	}
}
