package resthttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dao/core"
	"dao/handler/views"

	"github.com/fox-one/pkg/uuid"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// HeaderKeyRequestID request id header key
	headerKeyRequestID = "X-Request-Id"
)

// Error error replied by the api server
type Error struct {
	Status int    `json:"-"`
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Hint   string `json:"hint,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Msg)
}

// Unwrap the domain error, if the code is one
func (e *Error) Unwrap() error {
	switch code := core.ErrorCode(e.Code); code {
	case core.ErrProposalNotFound, core.ErrInvalidChoice, core.ErrInvalidArgument, core.ErrMemberNotFound:
		return code
	default:
		return nil
	}
}

// Client dao api client
type Client struct {
	client *resty.Client
}

// New new api client
func New(host string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(host, "/") + "/api").
		SetHeader("Content-Type", "application/json").
		SetHeader("Charset", "utf-8").
		SetTimeout(10 * time.Second)

	return &Client{client: c}
}

// Request new resty request with a fresh request id
func (c *Client) Request(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetHeader(headerKeyRequestID, uuid.New())
}

// Execute do network request
func (c *Client) Execute(ctx context.Context, method, uri string, body interface{}, resp interface{}) error {
	request := c.Request(ctx)
	if body != nil {
		request = request.SetBody(body)
	}

	r, err := request.Execute(strings.ToUpper(method), uri)
	if err != nil {
		return err
	}

	logrus.WithField("request_id", r.Request.Header.Get(headerKeyRequestID)).
		Debugf("%s %s: %s", method, uri, r.Status())

	return ParseResponse(r, resp)
}

// ParseResponse parse response
func ParseResponse(r *resty.Response, obj interface{}) error {
	if !r.IsSuccess() {
		e := &Error{Status: r.StatusCode()}
		if err := json.Unmarshal(r.Body(), e); err != nil || e.Msg == "" {
			e.Msg = strings.TrimSpace(string(r.Body()))
		}
		return e
	}

	if obj == nil {
		return nil
	}

	return json.Unmarshal(r.Body(), obj)
}

// Page one page of proposals
type Page struct {
	Proposals  []views.Proposal `json:"proposals"`
	Pagination struct {
		NextCursor string `json:"next_cursor"`
		HasNext    bool   `json:"has_next"`
	} `json:"pagination"`
}

func (c *Client) ListProposals(ctx context.Context, cursor int64, limit int) (*Page, error) {
	var resp struct {
		Data Page `json:"data"`
	}

	uri := "/proposals?cursor=" + strconv.FormatInt(cursor, 10) + "&limit=" + strconv.Itoa(limit)
	if err := c.Execute(ctx, "GET", uri, nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) FindProposal(ctx context.Context, id int64) (*views.Proposal, error) {
	var resp struct {
		Data views.Proposal `json:"data"`
	}

	if err := c.Execute(ctx, "GET", "/proposals/"+strconv.FormatInt(id, 10), nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) SubmitProposal(ctx context.Context, title, description string) (*views.Proposal, error) {
	var resp struct {
		Data views.Proposal `json:"data"`
	}

	body := map[string]string{
		"title":       title,
		"description": description,
	}
	if err := c.Execute(ctx, "POST", "/proposals", body, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) CastVote(ctx context.Context, id int64, choice string) error {
	body := map[string]string{"choice": choice}
	return c.Execute(ctx, "POST", "/proposals/"+strconv.FormatInt(id, 10)+"/votes", body, nil)
}

func (c *Client) RecomputeStatuses(ctx context.Context) error {
	return c.Execute(ctx, "POST", "/proposals/recompute", nil, nil)
}

func (c *Client) Members(ctx context.Context) ([]views.Member, error) {
	var resp struct {
		Data []views.Member `json:"data"`
	}

	if err := c.Execute(ctx, "GET", "/members", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *Client) Member(ctx context.Context, id string) (*views.Member, error) {
	var resp struct {
		Data views.Member `json:"data"`
	}

	if err := c.Execute(ctx, "GET", "/members/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (c *Client) Treasury(ctx context.Context) (decimal.Decimal, error) {
	var resp struct {
		Data views.Treasury `json:"data"`
	}

	if err := c.Execute(ctx, "GET", "/treasury", nil, &resp); err != nil {
		return decimal.Zero, err
	}

	return resp.Data.Balance, nil
}

// Report markdown report of the treasury and proposals
func (c *Client) Report(ctx context.Context) (string, error) {
	r, err := c.Request(ctx).Get("/report")
	if err != nil {
		return "", err
	}

	if err := ParseResponse(r, nil); err != nil {
		return "", err
	}

	return r.String(), nil
}
