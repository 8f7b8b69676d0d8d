package core

import "context"

type (
	// Member dao member and the tokens it holds
	Member struct {
		ID      string `json:"id,omitempty"`
		Balance int64  `json:"balance"`
	}

	// MemberStore member store interface
	MemberStore interface {
		Find(ctx context.Context, id string) (*Member, error)
		List(ctx context.Context) ([]*Member, error)
	}
)
