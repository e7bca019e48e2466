package cart

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gabrielduah055/menHealthClient/internal/model"
)

// CookieKey matches the storage key the web client has always used, so a
// deploy does not orphan existing carts.
const CookieKey = "menshealth_cart"

const cookieMaxAge = 30 * 24 * time.Hour

// MemoryStorage keeps the mirrored list in memory.
type MemoryStorage struct {
	items []Item
}

func NewMemoryStorage(items ...Item) *MemoryStorage {
	return &MemoryStorage{items: items}
}

func (m *MemoryStorage) Load() ([]Item, error) {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *MemoryStorage) Save(items []Item) error {
	m.items = make([]Item, len(items))
	copy(m.items, items)
	return nil
}

// storedLine is the per-line snapshot that goes into the cookie. Browsers
// cap a cookie at roughly 4KB, so descriptions, galleries and timestamps
// stay out; the cart page and the order payload only need these fields.
type storedLine struct {
	ID       string          `json:"id"`
	Slug     string          `json:"slug"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity"`
}

// CookieStorage mirrors the cart into a base64url-wrapped JSON cookie. The
// request cookie is read once per Load; Save only writes the response.
type CookieStorage struct {
	r *http.Request
	w http.ResponseWriter
}

func NewCookieStorage(w http.ResponseWriter, r *http.Request) *CookieStorage {
	return &CookieStorage{r: r, w: w}
}

func (c *CookieStorage) Load() ([]Item, error) {
	ck, err := c.r.Cookie(CookieKey)
	if err != nil || ck.Value == "" {
		return nil, nil
	}
	raw, err := base64.URLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil, err
	}
	var lines []storedLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		p := model.Product{ID: l.ID, Slug: l.Slug, Name: l.Name, Price: l.Price}
		if l.Image != "" {
			p.Images = []string{l.Image}
		}
		items = append(items, Item{Product: p, Quantity: l.Quantity})
	}
	return items, nil
}

func (c *CookieStorage) Save(items []Item) error {
	lines := make([]storedLine, 0, len(items))
	for _, it := range items {
		l := storedLine{
			ID:       it.Product.ID,
			Slug:     it.Product.Slug,
			Name:     it.Product.Name,
			Price:    it.Product.Price,
			Quantity: it.Quantity,
		}
		if len(it.Product.Images) > 0 {
			l.Image = it.Product.Images[0]
		}
		lines = append(lines, l)
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	http.SetCookie(c.w, &http.Cookie{
		Name:     CookieKey,
		Value:    base64.URLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(cookieMaxAge.Seconds()),
	})
	return nil
}
