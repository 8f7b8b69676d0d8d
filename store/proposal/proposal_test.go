package proposal

import (
	"context"
	"testing"

	"dao/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalStore(t *testing.T) {
	ctx := context.Background()
	store := New()

	for i := 1; i <= 5; i++ {
		p := &core.Proposal{Title: "p", Status: core.ProposalStatusPending}
		require.NoError(t, store.Create(ctx, p))
		assert.EqualValues(t, i, p.ID)
	}

	t.Run("find", func(t *testing.T) {
		p, err := store.Find(ctx, 3)
		require.NoError(t, err)
		assert.EqualValues(t, 3, p.ID)

		_, err = store.Find(ctx, 0)
		assert.Equal(t, core.ErrProposalNotFound, err)

		_, err = store.Find(ctx, 6)
		assert.Equal(t, core.ErrProposalNotFound, err)
	})

	t.Run("find returns a copy", func(t *testing.T) {
		p, err := store.Find(ctx, 1)
		require.NoError(t, err)
		p.YesCount = 100

		p, err = store.Find(ctx, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 0, p.YesCount)
	})

	t.Run("update", func(t *testing.T) {
		p, err := store.Find(ctx, 2)
		require.NoError(t, err)
		p.NoCount = 4
		require.NoError(t, store.Update(ctx, p))

		p, err = store.Find(ctx, 2)
		require.NoError(t, err)
		assert.EqualValues(t, 4, p.NoCount)

		assert.Equal(t, core.ErrProposalNotFound, store.Update(ctx, &core.Proposal{ID: 9}))
	})

	t.Run("list", func(t *testing.T) {
		all, err := store.List(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i, p := range all {
			assert.EqualValues(t, i+1, p.ID)
		}

		page, err := store.List(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.EqualValues(t, 3, page[0].ID)
		assert.EqualValues(t, 4, page[1].ID)

		tail, err := store.List(ctx, 4, 10)
		require.NoError(t, err)
		require.Len(t, tail, 1)
		assert.EqualValues(t, 5, tail[0].ID)

		empty, err := store.List(ctx, 5, 10)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}
