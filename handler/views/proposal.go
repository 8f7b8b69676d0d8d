package views

import (
	"time"

	"dao/core"
)

type (
	Votes struct {
		Yes int64 `json:"yes"`
		No  int64 `json:"no"`
	}

	Proposal struct {
		ID          int64     `json:"id"`
		CreatedAt   time.Time `json:"created_at"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Status      string    `json:"status"`
		Votes       Votes     `json:"votes"`
	}
)

func ProposalView(p core.Proposal) Proposal {
	return Proposal{
		ID:          p.ID,
		CreatedAt:   p.CreatedAt,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status.String(),
		Votes: Votes{
			Yes: p.YesCount,
			No:  p.NoCount,
		},
	}
}

func ProposalViews(ps []*core.Proposal) []Proposal {
	var items = make([]Proposal, len(ps))
	for i, item := range ps {
		items[i] = ProposalView(*item)
	}
	return items
}
