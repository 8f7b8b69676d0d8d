package core

import "strings"

// VoteChoice the side a vote is cast for
type VoteChoice string

const (
	// VoteYes vote for the proposal
	VoteYes VoteChoice = "yes"
	// VoteNo vote against the proposal
	VoteNo VoteChoice = "no"
)

func (c VoteChoice) String() string {
	return string(c)
}

// ParseVoteChoice only the normalized lowercase form is accepted
func ParseVoteChoice(s string) (VoteChoice, error) {
	switch c := VoteChoice(s); c {
	case VoteYes, VoteNo:
		return c, nil
	default:
		return "", ErrInvalidChoice
	}
}

// NormalizeVoteChoice lowercase user input like "Yes" before parsing
func NormalizeVoteChoice(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
