package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		yes    int64
		no     int64
		expect ProposalStatus
	}{
		{"no votes", 0, 0, ProposalStatusRejected},
		{"tie", 3, 3, ProposalStatusRejected},
		{"majority yes", 2, 1, ProposalStatusAccepted},
		{"majority no", 1, 2, ProposalStatusRejected},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Proposal{YesCount: c.yes, NoCount: c.no}
			assert.Equal(t, c.expect, p.Evaluate())
		})
	}
}

func TestProposalVote(t *testing.T) {
	var p Proposal
	require.NoError(t, p.Vote(VoteYes))
	require.NoError(t, p.Vote(VoteNo))
	require.NoError(t, p.Vote(VoteYes))
	assert.EqualValues(t, 2, p.YesCount)
	assert.EqualValues(t, 1, p.NoCount)

	assert.Equal(t, ErrInvalidChoice, p.Vote("maybe"))
	assert.EqualValues(t, 2, p.YesCount)
	assert.EqualValues(t, 1, p.NoCount)
}

func TestParseVoteChoice(t *testing.T) {
	c, err := ParseVoteChoice("yes")
	require.NoError(t, err)
	assert.Equal(t, VoteYes, c)

	for _, s := range []string{"Yes", "maybe", "", " no"} {
		_, err := ParseVoteChoice(s)
		assert.Equal(t, ErrInvalidChoice, err, s)
	}

	c, err = ParseVoteChoice(NormalizeVoteChoice(" No "))
	require.NoError(t, err)
	assert.Equal(t, VoteNo, c)
}

func TestProposalStatusString(t *testing.T) {
	assert.Equal(t, "Pending", ProposalStatusPending.String())
	assert.Equal(t, "Accepted", ProposalStatusAccepted.String())
	assert.Equal(t, "Rejected", ProposalStatusRejected.String())
}
