// Package client talks to the CRM REST API with a cookie session. It backs
// the board CLI and the end-to-end tests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/localcrm/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client is a session-holding API client. It is safe for concurrent use.
type Client struct {
	base *url.URL
	http *http.Client
}

// New creates a Client for the server at baseURL, e.g. http://localhost:4000.
// A nil httpClient gets a default one; a cookie jar is attached if missing.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q: scheme and host are required", baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	return &Client{base: base, http: httpClient}, nil
}

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api %d: %s: %s", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

// Unwrap maps the status back onto the domain sentinels.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return domain.ErrValidation
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return nil
	}
}

// Do sends a JSON request and decodes the "data" member of the response
// into out. in and out may be nil.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
	}
	u := c.base.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	env := struct {
		Data any `json:"data"`
	}{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Details = body.Details
	}
	return apiErr
}

// Login opens a session. The cookie is kept in the client's jar.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var u userJSON
	in := map[string]string{"email": email, "password": password}
	if err := c.Do(ctx, http.MethodPost, "/api/auth/login", in, &u); err != nil {
		return nil, err
	}
	return u.toDomain(), nil
}

// Logout ends the session.
func (c *Client) Logout(ctx context.Context) error {
	return c.Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Me returns the logged-in user.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var u userJSON
	if err := c.Do(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return u.toDomain(), nil
}

// ListDeals returns deals matching f. Empty filter fields are not sent.
func (c *Client) ListDeals(ctx context.Context, f domain.DealFilter) ([]domain.Deal, error) {
	q := url.Values{}
	for _, kv := range [][2]string{
		{"stage_id", f.StageID},
		{"owner_user_id", f.OwnerUserID},
		{"start_date", f.StartDate},
		{"end_date", f.EndDate},
		{"search", f.Search},
	} {
		if kv[1] != "" {
			q.Set(kv[0], kv[1])
		}
	}
	path := "/api/deals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list []dealJSON
	if err := c.Do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	out := make([]domain.Deal, 0, len(list))
	for i := range list {
		d, err := list[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

// GetDeal returns one deal.
func (c *Client) GetDeal(ctx context.Context, id int64) (*domain.Deal, error) {
	var d dealJSON
	if err := c.Do(ctx, http.MethodGet, "/api/deals/"+strconv.FormatInt(id, 10), nil, &d); err != nil {
		return nil, err
	}
	return d.toDomain()
}

// ListStages returns every stage.
func (c *Client) ListStages(ctx context.Context) ([]domain.Stage, error) {
	var list []stageJSON
	if err := c.Do(ctx, http.MethodGet, "/api/stages", nil, &list); err != nil {
		return nil, err
	}
	out := make([]domain.Stage, len(list))
	for i, s := range list {
		out[i] = s.toDomain()
	}
	return out, nil
}

// PatchDealStage moves a deal and returns it as re-read by the server.
func (c *Client) PatchDealStage(ctx context.Context, dealID, stageID int64) (*domain.Deal, error) {
	var d dealJSON
	in := map[string]int64{"stage_id": stageID}
	path := "/api/deals/" + strconv.FormatInt(dealID, 10) + "/stage"
	if err := c.Do(ctx, http.MethodPatch, path, in, &d); err != nil {
		return nil, err
	}
	return d.toDomain()
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
