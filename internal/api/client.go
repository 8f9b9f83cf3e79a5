package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/auth"
	"github.com/edusga/sga-admin/internal/config"
)

// Client is the single HTTP adapter every service goes through. It owns
// the base URL and timeout, injects the session's bearer token, stamps a
// request id, and normalizes every failure into *Error.
type Client struct {
	baseURL string
	http    *http.Client
	session *auth.Session
	log     zerolog.Logger
}

// NewClient builds the adapter. The session is injected here once; no
// other layer reads credentials.
func NewClient(cfg *config.Config, session *auth.Session, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		session: session,
		log:     log.With().Str("component", "api_client").Logger(),
	}
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Code: ErrValidation, Message: err.Error()}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{Code: ErrNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token, ok := c.session.AccessToken(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("request")

	resp, err := c.http.Do(req)
	if err != nil {
		// Request sent but no response received.
		c.log.Debug().Err(err).Str("path", path).Msg("transport failure")
		return &Error{Code: ErrNetwork, Message: GetMessage(ErrNetwork)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Code: ErrNetwork, Message: GetMessage(ErrNetwork)}
	}

	c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("response")

	if resp.StatusCode == http.StatusUnauthorized {
		// Token expired or invalid: drop credentials, then still surface
		// the rejection to the caller.
		c.session.Clear()
		apiErr := normalize(resp.StatusCode, raw)
		apiErr.Code = ErrSessionExpired
		if apiErr.Message == "" {
			apiErr.Message = GetMessage(ErrSessionExpired)
		}
		return apiErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalize(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := unmarshalBody(raw, out); err != nil {
		return &Error{Code: ErrHTTP, Message: err.Error(), Status: resp.StatusCode}
	}
	return nil
}

// errorBody is the shape Django REST error responses usually carry.
type errorBody struct {
	Message string              `json:"message"`
	Detail  string              `json:"detail"`
	Errors  map[string][]string `json:"errors"`
}

// normalize converts a non-2xx response into the common error shape,
// extracting message and field errors from the body when present.
func normalize(status int, raw []byte) *Error {
	code := ErrHTTP
	switch {
	case status == http.StatusForbidden:
		code = ErrForbidden
	case status == http.StatusNotFound:
		code = ErrNotFound
	case status >= 500:
		code = ErrServer
	}

	apiErr := &Error{Code: code, Status: status, Message: GetMessage(code)}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}
	if body.Message != "" {
		apiErr.Message = body.Message
	} else if body.Detail != "" {
		apiErr.Message = body.Detail
	}
	if len(body.Errors) > 0 {
		apiErr.Fields = make(map[string]string, len(body.Errors))
		for field, msgs := range body.Errors {
			apiErr.Fields[field] = strings.Join(msgs, " ")
		}
	}
	return apiErr
}

// paginatedEnvelope is the DRF list wrapper. The client unwraps it so
// services always see plain collections; fetching further pages is not
// supported.
type paginatedEnvelope struct {
	Count   int             `json:"count"`
	Results json.RawMessage `json:"results"`
}

func unmarshalBody(raw []byte, out any) error {
	err := json.Unmarshal(raw, out)
	if err == nil {
		return nil
	}
	var env paginatedEnvelope
	if envErr := json.Unmarshal(raw, &env); envErr == nil && env.Results != nil {
		return json.Unmarshal(env.Results, out)
	}
	return err
}
