package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrInvalidArgument invalid argument
	ErrInvalidArgument ErrorCode = 100001

	// ErrProposalNotFound no proposal with the given id
	ErrProposalNotFound ErrorCode = 100200
	// ErrInvalidChoice vote choice is neither yes nor no
	ErrInvalidChoice ErrorCode = 100201

	// ErrMemberNotFound no member
	ErrMemberNotFound ErrorCode = 100300
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	switch e {
	case ErrInvalidArgument:
		return "invalid argument"
	case ErrProposalNotFound:
		return "proposal not found"
	case ErrInvalidChoice:
		return "vote must be 'yes' or 'no'"
	case ErrMemberNotFound:
		return "member not found"
	default:
		return e.String()
	}
}
