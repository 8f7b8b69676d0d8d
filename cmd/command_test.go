package cmd

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"dao/core"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommandServer(t *testing.T) {
	t.Helper()

	// skip config file and logging setup
	initialized = true
	cfg = core.Config{
		App: core.App{Name: "dao", Treasury: "1000"},
		Members: []core.MemberConfig{
			{ID: "alice", Balance: 100},
			{ID: "bob", Balance: 200},
			{ID: "carol", Balance: 50},
		},
	}

	mux := chi.NewMux()
	mux.Mount("/api", provideServer(provideLedger()).HandleRestAPI())

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg.Server.Host = srv.URL
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestProposalCommands(t *testing.T) {
	newCommandServer(t)

	out, err := execute(t, "proposal", "submit", "Upgrade protocol", "desc")
	require.NoError(t, err)
	assert.Contains(t, out, "Proposal 'Upgrade protocol' submitted successfully! id 1")

	out, err = execute(t, "proposal", "submit", "Lower fees", "desc")
	require.NoError(t, err)
	assert.Contains(t, out, "id 2")

	t.Run("submit requires title and description", func(t *testing.T) {
		_, err := execute(t, "proposal", "submit", "", "desc")
		assert.True(t, errors.Is(err, core.ErrInvalidArgument))

		_, err = execute(t, "proposal", "submit", "only title")
		assert.Error(t, err)
	})

	t.Run("vote", func(t *testing.T) {
		out, err := execute(t, "proposal", "vote", "1", "Yes")
		require.NoError(t, err)
		assert.Contains(t, out, "Your vote on proposal 1 has been cast as 'yes'")

		_, err = execute(t, "proposal", "vote", "1", "yes")
		require.NoError(t, err)
		_, err = execute(t, "pp", "vote", "1", "NO")
		require.NoError(t, err)
	})

	t.Run("vote errors", func(t *testing.T) {
		_, err := execute(t, "proposal", "vote", "1", "maybe")
		assert.True(t, errors.Is(err, core.ErrInvalidChoice))

		_, err = execute(t, "proposal", "vote", "nonexistent_id", "yes")
		assert.True(t, errors.Is(err, core.ErrProposalNotFound))

		_, err = execute(t, "proposal", "vote", "9", "yes")
		assert.True(t, errors.Is(err, core.ErrProposalNotFound))
	})

	t.Run("show", func(t *testing.T) {
		out, err := execute(t, "proposal", "show", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "#1 Upgrade protocol")
		assert.Contains(t, out, "Status: Accepted")
		assert.Contains(t, out, "Votes: Yes - 2, No - 1")

		out, err = execute(t, "proposal", "show", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Status: Rejected")

		_, err = execute(t, "proposal", "show", "abc")
		assert.True(t, errors.Is(err, core.ErrProposalNotFound))
	})

	t.Run("list pages through every proposal", func(t *testing.T) {
		out, err := execute(t, "proposal", "list", "--limit", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "Upgrade protocol")
		assert.Contains(t, out, "Lower fees")
		assert.Contains(t, out, "Accepted")
	})

	t.Run("recompute", func(t *testing.T) {
		_, err := execute(t, "proposal", "recompute")
		require.NoError(t, err)
	})

	t.Run("report", func(t *testing.T) {
		out, err := execute(t, "report")
		require.NoError(t, err)
		assert.Contains(t, out, "Current Treasury Balance: $1000")
		assert.Contains(t, out, "### #2 Lower fees")
	})
}

func TestMemberCommands(t *testing.T) {
	newCommandServer(t)

	out, err := execute(t, "member", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "carol")

	out, err = execute(t, "member", "show", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "bob holds 200 tokens")

	_, err = execute(t, "member", "show", "dave")
	assert.True(t, errors.Is(err, core.ErrMemberNotFound))

	out, err = execute(t, "treasury")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Treasury Balance: $1000")
}
