package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Gabrielduah055/menHealthClient/internal/api"
	"github.com/Gabrielduah055/menHealthClient/internal/model"
)

var (
	flatShipping = decimal.NewFromInt(45)
	taxRate      = decimal.RequireFromString("0.0164")
)

// Totals is the order summary box: subtotal, flat shipping, tax, total.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func computeTotals(subtotal decimal.Decimal) Totals {
	shipping := decimal.Zero
	if subtotal.IsPositive() {
		shipping = flatShipping
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

type CheckoutHTTP struct {
	API *api.Client
	Log *zap.Logger
}

func NewCheckoutHTTP(client *api.Client, log *zap.Logger) *CheckoutHTTP {
	return &CheckoutHTTP{API: client, Log: log}
}

// Page renders the checkout form prefilled from the signed-in user. The
// route sits behind RequireAuth.
func (h *CheckoutHTTP) Page(c *gin.Context) {
	store := cartFrom(c)
	user := sessionFrom(c).User()
	render(c, http.StatusOK, "checkout", gin.H{
		"Items":    store.Items(),
		"Totals":   computeTotals(store.Subtotal()),
		"FullName": user.FullName,
		"Email":    user.Email,
		"Phone":    user.Phone,
		"Address":  "",
		"Notes":    "",
	})
}

func (h *CheckoutHTTP) Submit(c *gin.Context) {
	store := cartFrom(c)
	sess := sessionFrom(c)

	fullName := strings.TrimSpace(c.PostForm("fullName"))
	email := strings.TrimSpace(c.PostForm("email"))
	phone := strings.TrimSpace(c.PostForm("phone"))
	address := strings.TrimSpace(c.PostForm("address"))
	notes := strings.TrimSpace(c.PostForm("deliveryNotes"))

	fail := func(status int, msg string) {
		render(c, status, "checkout", gin.H{
			"Error":    msg,
			"Items":    store.Items(),
			"Totals":   computeTotals(store.Subtotal()),
			"FullName": fullName,
			"Email":    email,
			"Phone":    phone,
			"Address":  address,
			"Notes":    notes,
		})
	}

	if fullName == "" || email == "" || phone == "" || address == "" {
		fail(http.StatusBadRequest, "Please fill in all required fields.")
		return
	}
	items := store.Items()
	if len(items) == 0 {
		fail(http.StatusBadRequest, "Your cart is empty.")
		return
	}

	totals := computeTotals(store.Subtotal())
	lines := make([]model.OrderLine, 0, len(items))
	for _, it := range items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		lines = append(lines, model.OrderLine{
			ProductID:     it.Product.ID,
			NameSnapshot:  it.Product.Name,
			PriceSnapshot: it.Product.Price,
			Qty:           it.Quantity,
			LineTotal:     it.Product.Price.Mul(qty),
		})
	}
	order := model.OrderRequest{
		Customer: model.OrderCustomer{
			Name:    fullName,
			Email:   email,
			Phone:   phone,
			Address: address,
		},
		Items:         lines,
		TotalAmount:   totals.Total,
		DeliveryNotes: notes,
	}

	if err := h.API.CreateOrder(c.Request.Context(), sess.Token(), order); err != nil {
		h.Log.Warn("order submit failed", zap.Error(err))
		fail(http.StatusBadGateway, loginError(err))
		return
	}

	store.Clear()
	render(c, http.StatusOK, "checkout_success", gin.H{"Email": email})
}
