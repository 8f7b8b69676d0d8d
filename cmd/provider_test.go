package cmd

import (
	"context"
	"testing"

	"dao/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideLedger(t *testing.T) {
	cfg = core.Config{
		App: core.App{Name: "dao", Treasury: "1000"},
		Members: []core.MemberConfig{
			{ID: "alice", Balance: 100},
			{ID: "bob", Balance: 200},
		},
	}

	l := provideLedger()
	assert.Equal(t, "1000", l.Treasury().String())

	members, err := l.Members(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "alice", members[0].ID)

	cfg.App.Treasury = "-5"
	assert.Panics(t, func() { provideLedger() })

	cfg.App.Treasury = "1000"
	cfg.Members = append(cfg.Members, core.MemberConfig{ID: "eve", Balance: -1})
	assert.Panics(t, func() { provideMemberStore() })

	cfg.Members = []core.MemberConfig{
		{ID: "alice", Balance: 100},
		{ID: "alice", Balance: 5},
	}
	assert.Panics(t, func() { provideMemberStore() })
}
