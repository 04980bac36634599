package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// HTTPClient talks to the GophAuth HTTP API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type messageResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp messageResponse
	return c.do(ctx, http.MethodGet, "/", "", nil, &resp)
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	var resp messageResponse
	return c.do(ctx, http.MethodPost, "/auth/register", "", req, &resp)
}

func (c *HTTPClient) Login(ctx context.Context, name, password string) (string, error) {
	var resp messageResponse
	body := map[string]string{"name": name, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.New("server returned no token")
	}
	return resp.Token, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token, id string) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), token, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// do sends one request and decodes a 2xx body into out. Transport failures
// become ErrUnavailable, 401 becomes ErrUnauthorized and any other non-2xx
// status an *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var m messageResponse
		_ = json.Unmarshal(data, &m)
		if m.Msg == "" {
			m.Msg = http.StatusText(resp.StatusCode)
		}
		apiErr := &APIError{Status: resp.StatusCode, Message: m.Msg}
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
		}
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
