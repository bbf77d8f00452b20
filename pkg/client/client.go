// Package client is a small JSON client for the blog API, used by the
// blogctl command and usable by any Go consumer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"blogapi/internal/model"
)

// ErrNotFound is returned when the server reports a missing post.
var ErrNotFound = errors.New("post not found")

// APIError is any non-2xx response other than not-found, decoded from the
// server's error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for f, msg := range e.Fields {
			parts = append(parts, f+": "+msg)
		}
		return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

type errorPayload struct {
	RequestID string `json:"request_id"`
	Error     struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

// Client talks to a running blog API server.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
// Outgoing requests carry trace propagation via otelhttp.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc: &http.Client{
			// Generous timeout: create/update bodies may inline base64 images.
			Timeout:   60 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// NewWithHTTPClient creates a Client using the provided http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

// ListPosts fetches the full collection, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post, or ErrNotFound.
func (c *Client) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+id, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a new post and returns the stored representation.
func (c *Client) CreatePost(ctx context.Context, in model.PostInput) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodPost, "/posts", in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost fully replaces a post's fields, or returns ErrNotFound.
func (c *Client) UpdatePost(ctx context.Context, id string, in model.PostInput) (*model.Post, error) {
	var post model.Post
	if err := c.do(ctx, http.MethodPut, "/posts/"+id, in, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post, or returns ErrNotFound.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
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

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Code: "UNKNOWN", Message: resp.Status}
	var payload errorPayload
	if decErr := json.NewDecoder(resp.Body).Decode(&payload); decErr == nil && payload.Error.Code != "" {
		apiErr.Code = payload.Error.Code
		apiErr.Message = payload.Error.Message
		apiErr.Fields = payload.Error.Fields
	}
	return apiErr
}
