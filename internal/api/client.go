// Package api is the client for the upstream storefront REST API. It owns
// URL building, auth header attachment, and the error contract; everything
// above it works with typed models.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const DefaultBaseURL = "http://localhost:5000"

// Error is any non-2xx upstream response. Callers decide recoverability;
// the client never retries.
type Error struct {
	Status  int
	Message string
	Body    any
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsStatus reports whether err is an upstream *Error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

func New(base string, log *zap.Logger) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
		log:  log,
	}
}

func (c *Client) BaseURL() string { return c.base }

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.base + path
}

// do performs one request. The body, when present, carries its own content
// type (JSON for the get/post helpers, the writer's boundary for multipart).
// Responses are parsed by their declared content type: JSON is decoded,
// anything else is kept as text, 204 carries nothing.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	isJSON := strings.Contains(res.Header.Get("Content-Type"), "application/json")
	var parsed any
	if isJSON && len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	} else if res.StatusCode != http.StatusNoContent && len(raw) > 0 {
		parsed = string(raw)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &Error{Status: res.StatusCode, Message: errorMessage(parsed), Body: parsed}
		c.log.Debug("upstream error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
		)
		return apiErr
	}

	if out != nil && isJSON && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// errorMessage pulls the upstream's "message" field when there is one.
func errorMessage(body any) string {
	if m, ok := body.(map[string]any); ok {
		if s, ok := m["message"].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, "", out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	var rd io.Reader
	var contentType string
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, http.MethodPost, path, token, rd, contentType, out)
}

// PostMultipart sends fields and an optional file as multipart/form-data,
// letting the form boundary set the content type instead of JSON.
func (c *Client) PostMultipart(ctx context.Context, path, token string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, token, &buf, w.FormDataContentType(), out)
}
