package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Gabrielduah055/menHealthClient/internal/api"
	"github.com/Gabrielduah055/menHealthClient/internal/cart"
)

type CartHTTP struct {
	API *api.Client
	Log *zap.Logger
}

func NewCartHTTP(client *api.Client, log *zap.Logger) *CartHTTP {
	return &CartHTTP{API: client, Log: log}
}

// cartLine is the cart page's view of one line, with the extended price
// already computed.
type cartLine struct {
	Item      cart.Item
	LineTotal decimal.Decimal
}

func (h *CartHTTP) Page(c *gin.Context) {
	store := cartFrom(c)
	items := store.Items()
	lines := make([]cartLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, cartLine{
			Item:      it,
			LineTotal: it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	render(c, http.StatusOK, "cart", gin.H{
		"Lines":    lines,
		"Subtotal": store.Subtotal(),
	})
}

// Add looks the product up by slug so the stored line carries a full
// snapshot, then merges it into the cart.
func (h *CartHTTP) Add(c *gin.Context) {
	slug := c.PostForm("slug")
	qty, err := strconv.Atoi(c.DefaultPostForm("qty", "1"))
	if err != nil {
		qty = 1
	}

	p, err := h.API.ProductBySlug(c.Request.Context(), slug)
	if err != nil {
		h.Log.Warn("cart add: product fetch failed", zap.String("slug", slug), zap.Error(err))
		c.Redirect(http.StatusFound, "/products")
		return
	}

	cartFrom(c).AddItem(p, qty)
	c.Redirect(http.StatusFound, backTo(c, "/cart"))
}

func (h *CartHTTP) Update(c *gin.Context) {
	qty, err := strconv.Atoi(c.PostForm("qty"))
	if err != nil {
		c.Redirect(http.StatusFound, "/cart")
		return
	}
	cartFrom(c).UpdateQty(c.PostForm("slug"), qty)
	c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHTTP) Remove(c *gin.Context) {
	cartFrom(c).RemoveItem(c.PostForm("slug"))
	c.Redirect(http.StatusFound, "/cart")
}

func (h *CartHTTP) Clear(c *gin.Context) {
	cartFrom(c).Clear()
	c.Redirect(http.StatusFound, "/cart")
}

// backTo honors an explicit return target from the form, falling back to
// the given default. Only local paths are accepted.
func backTo(c *gin.Context, def string) string {
	if to := c.PostForm("return"); len(to) > 1 && to[0] == '/' && to[1] != '/' {
		return to
	}
	return def
}
