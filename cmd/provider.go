package cmd

import (
	"dao/core"
	"dao/handler"
	"dao/pkg/number"
	"dao/pkg/resthttp"
	"dao/service/ledger"
	"dao/store/member"
	"dao/store/proposal"
)

func provideConfig() *core.Config {
	return &cfg
}

// ---------------store-----------------------------------------

func provideMemberStore() core.MemberStore {
	members := make([]*core.Member, 0, len(cfg.Members))
	for _, m := range cfg.Members {
		if m.Balance < 0 {
			panic("member " + m.ID + " has a negative balance")
		}

		members = append(members, &core.Member{
			ID:      m.ID,
			Balance: m.Balance,
		})
	}

	store, err := member.New(members)
	if err != nil {
		panic(err)
	}

	return store
}

func provideProposalStore() core.ProposalStore {
	return proposal.New()
}

// ------------------service------------------------------------

func provideLedger() core.Ledger {
	treasury, err := number.Amount(cfg.App.Treasury)
	if err != nil {
		panic(err)
	}

	return ledger.New(
		provideMemberStore(),
		provideProposalStore(),
		treasury,
	)
}

// ------------------handler------------------------------------

func provideServer(l core.Ledger) handler.Server {
	return handler.New(provideConfig(), l)
}

// ------------------client-------------------------------------

func provideClient() *resthttp.Client {
	return resthttp.New(cfg.Server.Host)
}
