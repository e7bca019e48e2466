package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Gabrielduah055/menHealthClient/internal/model"
)

func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var ps []model.Product
	err := c.get(ctx, "/api/products", "", &ps)
	return ps, err
}

func (c *Client) ProductBySlug(ctx context.Context, slug string) (model.Product, error) {
	var p model.Product
	err := c.get(ctx, "/api/products/"+url.PathEscape(slug), "", &p)
	return p, err
}

func (c *Client) Blogs(ctx context.Context) ([]model.BlogPost, error) {
	var bs []model.BlogPost
	err := c.get(ctx, "/api/blogs", "", &bs)
	return bs, err
}

func (c *Client) BlogBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	var b model.BlogPost
	err := c.get(ctx, "/api/blogs/"+url.PathEscape(slug), "", &b)
	return b, err
}

// IncrementBlogView bumps the post's view counter and returns the new count.
func (c *Client) IncrementBlogView(ctx context.Context, id string) (int, error) {
	var out struct {
		Views int `json:"views"`
	}
	err := c.post(ctx, fmt.Sprintf("/api/blogs/%s/view", url.PathEscape(id)), "", nil, &out)
	return out.Views, err
}

func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var cs []model.Category
	err := c.get(ctx, "/api/categories", "", &cs)
	return cs, err
}

func (c *Client) Comments(ctx context.Context, postID string) ([]model.Comment, error) {
	var cs []model.Comment
	err := c.get(ctx, fmt.Sprintf("/api/blogs/%s/comments", url.PathEscape(postID)), "", &cs)
	return cs, err
}

func (c *Client) AddComment(ctx context.Context, token, postID, content string) (model.Comment, error) {
	var cm model.Comment
	body := map[string]string{"content": content}
	err := c.post(ctx, fmt.Sprintf("/api/blogs/%s/comments", url.PathEscape(postID)), token, body, &cm)
	return cm, err
}

func (c *Client) CreateOrder(ctx context.Context, token string, order model.OrderRequest) error {
	return c.post(ctx, "/api/orders", token, order, nil)
}

// LoginResult is the tri-state login response: a token plus user on
// success, requiresVerification for an unverified account, neither on error.
type LoginResult struct {
	Token                string          `json:"token,omitempty"`
	User                 *model.AuthUser `json:"user,omitempty"`
	RequiresVerification bool            `json:"requiresVerification,omitempty"`
	Email                string          `json:"email,omitempty"`
	Message              string          `json:"message,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	body := map[string]string{"email": email, "password": password}
	err := c.post(ctx, "/api/auth/login", "", body, &out)
	return out, err
}

// Register creates an unverified account and returns the email the
// verification code was sent to.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	var out struct {
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/api/auth/register", "", req, &out); err != nil {
		return "", err
	}
	return out.Email, nil
}

func (c *Client) VerifyEmail(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	return c.post(ctx, "/api/auth/verify-email", "", body, nil)
}

func (c *Client) ResendCode(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "/api/auth/resend-code", "", body, nil)
}

func (c *Client) Me(ctx context.Context, token string) (model.AuthUser, error) {
	var u model.AuthUser
	err := c.get(ctx, "/api/auth/me", token, &u)
	return u, err
}
