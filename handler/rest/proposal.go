package rest

import (
	"fmt"
	"net/http"

	"dao/core"
	"dao/handler/render"
	"dao/handler/views"

	"github.com/asaskevich/govalidator"
	"github.com/fox-one/pkg/logger"
	"github.com/yiplee/structs"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

func handleProposals(ledger core.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Cursor int64 `schema:"cursor"`
			Limit  int   `schema:"limit"`
		}
		if e := bindQuery(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		if params.Limit <= 0 {
			params.Limit = defaultLimit
		} else if params.Limit > maxLimit {
			params.Limit = maxLimit
		}

		// one extra row tells whether another page exists
		proposals, err := ledger.DisplayProposals(ctx, params.Cursor, params.Limit+1)
		if err != nil {
			render.Err(w, err)
			return
		}

		var nextCursor string
		if len(proposals) > params.Limit {
			proposals = proposals[:params.Limit]
			nextCursor = fmt.Sprint(proposals[len(proposals)-1].ID)
		}

		render.JSON(w, render.H{
			"data": render.H{
				"proposals": views.ProposalViews(proposals),
				"pagination": render.H{
					"next_cursor": nextCursor,
					"has_next":    nextCursor != "",
				},
			},
		})
	}
}

func handleProposal(ledger core.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := proposalID(r)
		if err != nil {
			render.Err(w, err)
			return
		}

		proposal, err := ledger.DisplayProposal(ctx, id)
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{
			"data": views.ProposalView(*proposal),
		})
	}
}

func handleCreateProposal(ledger core.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body struct {
			Title       string `json:"title" valid:"required"`
			Description string `json:"description" valid:"required"`
		}
		if err := bindBody(r, &body); err != nil {
			render.BadRequest(w, err)
			return
		}

		if _, err := govalidator.ValidateStruct(body); err != nil {
			render.BadRequest(w, err)
			return
		}

		proposal, err := ledger.SubmitProposal(ctx, body.Title, body.Description)
		if err != nil {
			render.Err(w, err)
			return
		}

		view := views.ProposalView(*proposal)
		logger.FromContext(ctx).WithFields(structs.Map(view)).Debugln("proposal created")

		render.JSON(w, render.H{
			"data": view,
		})
	}
}

func handleVote(ledger core.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := proposalID(r)
		if err != nil {
			render.Err(w, err)
			return
		}

		var body struct {
			Choice string `json:"choice"`
		}
		if err := bindBody(r, &body); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := ledger.CastVote(ctx, id, core.NormalizeVoteChoice(body.Choice)); err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}

func handleRecompute(ledger core.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ledger.RecomputeStatuses(r.Context()); err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}
