// Package procore implements the HTTP client for the local backend proxy
// in front of the Procore API: the authorization-code token exchange plus
// list, filter, create, update and delete calls for accident logs.
package procore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gajare/accident-logs/internal/model"
)

const defaultTimeout = 10 * time.Second

// Client communicates with the backend proxy. It holds at most one bearer
// token at a time; all authenticated requests use exactly this token until
// it is replaced by the next successful exchange.
type Client struct {
	baseURL   string
	companyID string
	httpc     *http.Client
	token     string
}

// NewClient creates a Client for the proxy at baseURL. companyID is
// optional; when set it is sent as the Procore-Company-Id header on every
// authenticated request. A non-positive timeout falls back to 10s.
func NewClient(baseURL, companyID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		companyID: companyID,
		httpc:     &http.Client{Timeout: timeout},
	}
}

// SetToken replaces the held bearer token.
func (c *Client) SetToken(token string) { c.token = token }

// Token returns the held bearer token, or "" when unauthenticated.
func (c *Client) Token() string { return c.token }

// HasToken reports whether a bearer token is held.
func (c *Client) HasToken() bool { return c.token != "" }

// AuthorizeURL builds the provider authorization URL the user opens to
// obtain a one-time code out-of-band.
func AuthorizeURL(authorizeURL, clientID, redirectURI string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", clientID)
	q.Set("redirect_uri", redirectURI)
	return authorizeURL + "?" + q.Encode()
}

type tokenRequest struct {
	Code string `json:"code"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ExchangeCode trades a one-time authorization code for a bearer token via
// the proxy's token endpoint and stores the token on the client. The code
// is trimmed first; an empty code fails validation without any request.
// No retries on failure.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", &ValidationError{Fields: []string{"authorization code"}}
	}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/token", nil, tokenRequest{Code: code}, &resp, false); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", &TransportError{Op: "token exchange", Err: fmt.Errorf("no access token in response")}
	}

	c.token = resp.AccessToken
	return c.token, nil
}

// FetchLogs retrieves accident logs, using the filter endpoint when any
// criteria are set and the plain list endpoint otherwise. Record order is
// whatever the backend returns.
func (c *Client) FetchLogs(ctx context.Context, criteria model.FilterCriteria) ([]model.AccidentLog, error) {
	if !c.HasToken() {
		return nil, ErrNoToken
	}

	path := "/api/accident-logs"
	var query url.Values
	if !criteria.IsEmpty() {
		path = "/api/accident-logs/filter"
		query = criteria.Values()
	}

	var logs []model.AccidentLog
	if err := c.do(ctx, http.MethodGet, path, query, nil, &logs, true); err != nil {
		return nil, err
	}
	return logs, nil
}

// GetLog retrieves a single record, used to populate the edit form.
func (c *Client) GetLog(ctx context.Context, id int) (model.AccidentLog, error) {
	if !c.HasToken() {
		return model.AccidentLog{}, ErrNoToken
	}

	var rec model.AccidentLog
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/accident-logs/%d", id), nil, nil, &rec, true); err != nil {
		return model.AccidentLog{}, err
	}
	return rec, nil
}

// CreateLog submits a new record. Required fields are checked before any
// request; the combined datetime is derived from the discrete fields.
func (c *Client) CreateLog(ctx context.Context, draft model.LogDraft) (model.AccidentLog, error) {
	if !c.HasToken() {
		return model.AccidentLog{}, ErrNoToken
	}
	if missing := draft.MissingFields(); len(missing) > 0 {
		return model.AccidentLog{}, &ValidationError{Fields: missing}
	}
	draft.DeriveDatetime()

	var created model.AccidentLog
	if err := c.do(ctx, http.MethodPost, "/api/accident-logs", nil, draft, &created, true); err != nil {
		return model.AccidentLog{}, err
	}
	return created, nil
}

// UpdateLog submits changed fields for an existing record. Same body shape
// and validation as CreateLog.
func (c *Client) UpdateLog(ctx context.Context, id int, draft model.LogDraft) (model.AccidentLog, error) {
	if !c.HasToken() {
		return model.AccidentLog{}, ErrNoToken
	}
	if missing := draft.MissingFields(); len(missing) > 0 {
		return model.AccidentLog{}, &ValidationError{Fields: missing}
	}
	draft.DeriveDatetime()

	var updated model.AccidentLog
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/accident-logs/%d", id), nil, draft, &updated, true); err != nil {
		return model.AccidentLog{}, err
	}
	return updated, nil
}

// DeleteLog removes a record. Irreversible; callers are responsible for
// confirming with the user first.
func (c *Client) DeleteLog(ctx context.Context, id int) error {
	if !c.HasToken() {
		return ErrNoToken
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/accident-logs/%d", id), nil, nil, nil, true)
}

// do issues a single request and decodes the response into out (when
// non-nil). Non-2xx responses become BackendError with the body's error
// field; network and decode failures become TransportError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	op := method + " " + path

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token)
		if c.companyID != "" {
			req.Header.Set("Procore-Company-Id", c.companyID)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return backendError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}
	return nil
}

// backendError extracts the error field from a non-2xx JSON body, falling
// back to a generic message when the body is not in the expected shape.
func backendError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return &BackendError{Status: resp.StatusCode, Message: payload.Error}
	}
	return &BackendError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}
}
