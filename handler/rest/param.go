package rest

import (
	"encoding/json"
	"net/http"

	"dao/core"

	"github.com/go-chi/chi"
	"github.com/gorilla/schema"
	"github.com/spf13/cast"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func bindQuery(r *http.Request, v interface{}) error {
	return queryDecoder.Decode(v, r.URL.Query())
}

func bindBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// proposalID an id that can not be parsed can not exist either
func proposalID(r *http.Request) (int64, error) {
	id, err := cast.ToInt64E(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, core.ErrProposalNotFound
	}

	return id, nil
}
