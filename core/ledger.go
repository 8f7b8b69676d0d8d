package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Ledger the organization ledger, owns members, proposals and the treasury
type Ledger interface {
	SubmitProposal(ctx context.Context, title, description string) (*Proposal, error)
	CastVote(ctx context.Context, proposalID int64, choice string) error
	RecomputeStatuses(ctx context.Context) error
	ListProposals(ctx context.Context) ([]*Proposal, error)
	FindProposal(ctx context.Context, proposalID int64) (*Proposal, error)
	// PageProposals proposals with id > fromID, at most limit
	PageProposals(ctx context.Context, fromID int64, limit int) ([]*Proposal, error)
	// DisplayProposals recompute statuses then page, atomically
	DisplayProposals(ctx context.Context, fromID int64, limit int) ([]*Proposal, error)
	// DisplayProposal recompute statuses then find, atomically
	DisplayProposal(ctx context.Context, proposalID int64) (*Proposal, error)
	Members(ctx context.Context) ([]*Member, error)
	Member(ctx context.Context, id string) (*Member, error)
	Treasury() decimal.Decimal
}
