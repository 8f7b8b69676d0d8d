package views

import (
	"dao/core"

	"github.com/shopspring/decimal"
)

type (
	Member struct {
		ID      string `json:"id"`
		Balance int64  `json:"balance"`
	}

	Treasury struct {
		Balance decimal.Decimal `json:"balance"`
	}
)

func MemberView(m core.Member) Member {
	return Member{
		ID:      m.ID,
		Balance: m.Balance,
	}
}

func MemberViews(ms []*core.Member) []Member {
	var items = make([]Member, len(ms))
	for i, m := range ms {
		items[i] = MemberView(*m)
	}
	return items
}
