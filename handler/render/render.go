package render

import (
	"encoding/json"
	"net/http"

	"dao/handler/codes"

	"github.com/sirupsen/logrus"
	"github.com/twitchtv/twirp"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		logrus.WithError(err).Errorln("render json")
	}
}

// Text render with text
func Text(w http.ResponseWriter, t string) {
	w.Header().Set("Content-Type", "application/text")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(t)); err != nil {
		logrus.WithError(err).Errorln("render text")
	}
}

// Error write error
func Error(w http.ResponseWriter, statusCode, errCode int, err error) {
	writeError(w, statusCode, errorResponse{Code: errCode, Msg: err.Error()})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, codes.InvalidArguments, err)
}

// Err classify err and write it with the matching status and custom code
func Err(w http.ResponseWriter, err error) {
	twerr := codes.From(err)

	resp := errorResponse{
		Code: codes.Custom(twerr),
		Msg:  twerr.Msg(),
	}

	if twerr.Code() == twirp.Internal {
		logrus.WithError(err).Errorln("internal error")
		resp.Msg = "internal error"
		if ResponseErrorMessageAsHint {
			resp.Hint = err.Error()
		}
	}

	writeError(w, twirp.ServerHTTPStatusFromErrorCode(twerr.Code()), resp)
}

func writeError(w http.ResponseWriter, statusCode int, resp errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	enc := json.NewEncoder(w)
	if err := enc.Encode(resp); err != nil {
		logrus.WithError(err).Errorln("render error")
	}
}
