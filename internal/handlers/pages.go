package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Gabrielduah055/menHealthClient/internal/api"
	"github.com/Gabrielduah055/menHealthClient/internal/model"
	"github.com/Gabrielduah055/menHealthClient/internal/share"
)

// Pages renders the read-only storefront pages. Upstream failures on list
// pages degrade to empty sections; only a missing detail record is a 404.
type Pages struct {
	API        *api.Client
	PublicBase string
	Log        *zap.Logger
}

func NewPages(client *api.Client, publicBase string, log *zap.Logger) *Pages {
	return &Pages{API: client, PublicBase: publicBase, Log: log}
}

func (h *Pages) Home(c *gin.Context) {
	ctx := c.Request.Context()

	var products []model.Product
	var posts []model.BlogPost
	var g errgroup.Group
	g.Go(func() error {
		ps, err := h.API.Products(ctx)
		if err != nil {
			h.Log.Warn("home: products fetch failed", zap.Error(err))
			return nil
		}
		products = activeProducts(ps)
		return nil
	})
	g.Go(func() error {
		bs, err := h.API.Blogs(ctx)
		if err != nil {
			h.Log.Warn("home: blogs fetch failed", zap.Error(err))
			return nil
		}
		posts = publishedPosts(bs)
		return nil
	})
	_ = g.Wait()

	if len(products) > 4 {
		products = products[:4]
	}
	if len(posts) > 3 {
		posts = posts[:3]
	}
	render(c, http.StatusOK, "home", gin.H{
		"Products": products,
		"Posts":    posts,
	})
}

func (h *Pages) Products(c *gin.Context) {
	ps, err := h.API.Products(c.Request.Context())
	if err != nil {
		h.Log.Warn("products fetch failed", zap.Error(err))
	}
	render(c, http.StatusOK, "products", gin.H{
		"Products": activeProducts(ps),
	})
}

func (h *Pages) ProductDetail(c *gin.Context) {
	slug := c.Param("slug")
	p, err := h.API.ProductBySlug(c.Request.Context(), slug)
	if err != nil {
		if api.IsNotFound(err) {
			h.NotFound(c)
			return
		}
		h.Log.Warn("product fetch failed", zap.String("slug", slug), zap.Error(err))
		h.Unavailable(c)
		return
	}
	render(c, http.StatusOK, "product", gin.H{
		"Product": p,
		"Error":   c.Query("error"),
	})
}

func (h *Pages) BlogIndex(c *gin.Context) {
	ctx := c.Request.Context()

	var posts []model.BlogPost
	var categories []model.Category
	var g errgroup.Group
	g.Go(func() error {
		bs, err := h.API.Blogs(ctx)
		if err != nil {
			h.Log.Warn("blogs fetch failed", zap.Error(err))
			return nil
		}
		posts = publishedPosts(bs)
		return nil
	})
	g.Go(func() error {
		cs, err := h.API.Categories(ctx)
		if err != nil {
			h.Log.Warn("categories fetch failed", zap.Error(err))
			return nil
		}
		categories = cs
		return nil
	})
	_ = g.Wait()

	render(c, http.StatusOK, "blog", gin.H{
		"Posts":      posts,
		"Categories": categories,
	})
}

func (h *Pages) BlogDetail(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.API.BlogBySlug(c.Request.Context(), slug)
	if err != nil {
		if api.IsNotFound(err) {
			h.NotFound(c)
			return
		}
		h.Log.Warn("blog fetch failed", zap.String("slug", slug), zap.Error(err))
		h.Unavailable(c)
		return
	}

	// Fire-and-forget view bump; the page never waits on it.
	go func(id string) {
		if _, err := h.API.IncrementBlogView(context.Background(), id); err != nil {
			h.Log.Debug("view increment failed", zap.String("post", id), zap.Error(err))
		}
	}(post.ID)

	comments, err := h.API.Comments(c.Request.Context(), post.ID)
	if err != nil {
		h.Log.Warn("comments fetch failed", zap.String("post", post.ID), zap.Error(err))
		comments = nil
	}

	render(c, http.StatusOK, "blog_post", gin.H{
		"Post":         post,
		"Comments":     comments,
		"ShareLinks":   share.Links(h.PublicBase, post.Slug, post.Title),
		"CommentFlash": c.Query("comment"),
		"CommentError": c.Query("error"),
	})
}

func (h *Pages) NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "not_found", nil)
}

// Unavailable is the degraded state for transient upstream failures: the
// record may well exist, so it must not render as a 404.
func (h *Pages) Unavailable(c *gin.Context) {
	render(c, http.StatusBadGateway, "unavailable", nil)
}

func activeProducts(ps []model.Product) []model.Product {
	out := ps[:0]
	for _, p := range ps {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func publishedPosts(bs []model.BlogPost) []model.BlogPost {
	out := bs[:0]
	for i := range bs {
		if bs[i].Published() {
			out = append(out, bs[i])
		}
	}
	return out
}
