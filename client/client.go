// Package client 平台的 Go SDK，封装登录态与 REST 调用
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL string
	hc      *http.Client
	session *Session
}

// Session 一次登录的产物，access 过期后用 Refresh 换新
type Session struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	Role         Role   `json:"role"`
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError 非 2xx 响应，ErrorType 仅登录失败时有值
type APIError struct {
	Status    int    `json:"-"`
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
}

func (e *APIError) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.ErrorType, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) Session() *Session {
	return c.session
}

// Login 成功后保存会话并拉取 profile 补全角色
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
		User         struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}

	c.session = &Session{
		Token:        resp.Token,
		RefreshToken: resp.RefreshToken,
		UserID:       resp.User.ID,
		Username:     resp.User.Username,
	}

	profile, err := c.Profile(ctx)
	if err != nil {
		c.session = nil
		return nil, err
	}
	c.session.Role = Role(profile.Role)
	return c.session, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.session = nil
	return nil
}

// Refresh 用 refresh token 换发新一对 token
func (c *Client) Refresh(ctx context.Context) error {
	if c.session == nil {
		return fmt.Errorf("not logged in")
	}
	var resp struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
	}
	body := map[string]string{"refreshToken": c.session.RefreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/token/refresh", body, &resp); err != nil {
		return err
	}
	c.session.Token = resp.Token
	c.session.RefreshToken = resp.RefreshToken
	return nil
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var list []User
	if err := c.do(ctx, http.MethodGet, "/api/auth/users", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) RegisterUser(ctx context.Context, in RegisterUserInput) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if json.Unmarshal(data, apiErr) != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}
