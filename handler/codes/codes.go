package codes

import (
	"errors"
	"strconv"

	"dao/core"

	"github.com/twitchtv/twirp"
)

const (
	// CustomCodeKey code key
	CustomCodeKey = "custom_code"

	// InvalidArguments invalid arguments
	InvalidArguments = 100001
)

// Get get error code
func Get(code twirp.ErrorCode) int {
	switch code {
	case twirp.InvalidArgument:
		return InvalidArguments
	default:
		return twirp.ServerHTTPStatusFromErrorCode(code)
	}
}

// From classify err as a twirp error carrying the custom code
func From(err error) twirp.Error {
	if twerr, ok := err.(twirp.Error); ok {
		return twerr
	}

	var code core.ErrorCode
	if !errors.As(err, &code) {
		return twirp.InternalErrorWith(err)
	}

	var twerr twirp.Error
	switch code {
	case core.ErrProposalNotFound, core.ErrMemberNotFound:
		twerr = twirp.NotFoundError(code.Error())
	case core.ErrInvalidChoice, core.ErrInvalidArgument:
		twerr = twirp.InvalidArgumentError("argument", code.Error())
	default:
		twerr = twirp.InternalError(code.Error())
	}

	return twerr.WithMeta(CustomCodeKey, code.String())
}

// Custom the custom code of a twirp error, falls back to Get
func Custom(twerr twirp.Error) int {
	if v := twerr.Meta(CustomCodeKey); v != "" {
		if code, err := strconv.Atoi(v); err == nil {
			return code
		}
	}

	return Get(twerr.Code())
}
