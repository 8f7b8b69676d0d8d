package core

import (
	"context"
	"time"
)

// ProposalStatus proposal status
type ProposalStatus int

const (
	_ ProposalStatus = iota
	// ProposalStatusPending not evaluated yet
	ProposalStatusPending
	// ProposalStatusAccepted more yes than no
	ProposalStatusAccepted
	// ProposalStatusRejected no more yes than no, ties included
	ProposalStatusRejected
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusPending:
		return "Pending"
	case ProposalStatusAccepted:
		return "Accepted"
	case ProposalStatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

type (
	// Proposal proposal info
	Proposal struct {
		ID          int64          `json:"id,omitempty"`
		CreatedAt   time.Time      `json:"created_at,omitempty"`
		Title       string         `json:"title,omitempty"`
		Description string         `json:"description,omitempty"`
		YesCount    int64          `json:"yes_count"`
		NoCount     int64          `json:"no_count"`
		Status      ProposalStatus `json:"status,omitempty"`
	}

	// ProposalStore proposal store interface
	ProposalStore interface {
		// Create assign the next sequential id and save the proposal
		Create(ctx context.Context, proposal *Proposal) error
		Find(ctx context.Context, id int64) (*Proposal, error)
		Update(ctx context.Context, proposal *Proposal) error
		// List proposals with id > fromID in creation order, limit <= 0 means all
		List(ctx context.Context, fromID int64, limit int) ([]*Proposal, error)
	}
)

// Evaluate strict majority, a tie (0 to 0 included) is rejected.
// Note: ties reject on purpose, there is no Pending outcome once evaluated.
func (p *Proposal) Evaluate() ProposalStatus {
	if p.YesCount > p.NoCount {
		return ProposalStatusAccepted
	}

	return ProposalStatusRejected
}

// Vote add one vote to the matching counter
func (p *Proposal) Vote(choice VoteChoice) error {
	switch choice {
	case VoteYes:
		p.YesCount++
	case VoteNo:
		p.NoCount++
	default:
		return ErrInvalidChoice
	}

	return nil
}
