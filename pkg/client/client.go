// Package client is a typed HTTP client for the clinic API. It tracks the
// caller's login session and attaches the bearer token to every request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Session holds the bearer token for a logged-in user. It is safe for
// concurrent use; the token is set on login and cleared on logout or when
// the server rejects it.
type Session struct {
	mu    sync.RWMutex
	token string
}

func (s *Session) set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Active reports whether the session holds a token.
func (s *Session) Active() bool {
	return s.Token() != ""
}

// Clear drops the token, returning the session to the logged-out state.
func (s *Session) Clear() {
	s.set("")
}

// Client talks to one clinic API server.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New returns a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		session: &Session{},
	}
}

// Session exposes the client's login session.
func (c *Client) Session() *Session {
	return c.session
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, email, password, name string) (*User, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var u User
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login authenticates and stores the returned token on the session.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.session.set(resp.Token)
	return &resp.User, nil
}

// Logout clears the session locally. The server keeps no session state.
func (c *Client) Logout() {
	c.session.Clear()
}

// CreatePatient adds a patient record for the logged-in user.
func (c *Client) CreatePatient(ctx context.Context, in PatientInput) (*Patient, error) {
	var p Patient
	if err := c.do(ctx, http.MethodPost, "/patients", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPatients returns one page of the user's patients, newest first.
func (c *Client) ListPatients(ctx context.Context, page, limit int) (*PatientList, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/patients"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list PatientList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdatePatient replaces the patient's fields.
func (c *Client) UpdatePatient(ctx context.Context, id string, in PatientInput) (*Patient, error) {
	var p Patient
	if err := c.do(ctx, http.MethodPut, "/patients/"+url.PathEscape(id), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePatient removes the patient and their chat history.
func (c *Client) DeletePatient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/patients/"+url.PathEscape(id), nil, nil)
}

// ChatHistory returns the patient's full chat thread, oldest first.
func (c *Client) ChatHistory(ctx context.Context, patientID string) (*ChatThread, error) {
	var thread ChatThread
	path := "/chat?patientId=" + url.QueryEscape(patientID)
	if err := c.do(ctx, http.MethodGet, path, nil, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// SendMessage appends a message to the patient's thread and returns the
// assistant's reply.
func (c *Client) SendMessage(ctx context.Context, patientID, message string) (*Message, error) {
	body := map[string]string{"patientId": patientID, "message": message}
	var reply Message
	if err := c.do(ctx, http.MethodPost, "/chat", body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Health pings the server's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The token is no longer good; drop the session.
		c.session.Clear()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
			apiErr.Detail = errBody.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
