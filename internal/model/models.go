package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The upstream API speaks plain JSON numbers for money.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	StockQty    int             `json:"stockQty"`
	Images      []string        `json:"images"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type BlogAuthor struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

type BlogPost struct {
	ID            string        `json:"_id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	CoverImageURL string        `json:"coverImageUrl,omitempty"`
	Excerpt       string        `json:"excerpt,omitempty"`
	Content       string        `json:"content"`
	Status        string        `json:"status"`
	Tags          []string      `json:"tags"`
	Category      *BlogCategory `json:"category,omitempty"`
	Author        *BlogAuthor   `json:"author,omitempty"`
	Views         int           `json:"views,omitempty"`
	AllowComments bool          `json:"allowComments"`
	PublishedAt   *time.Time    `json:"publishedAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (p *BlogPost) Published() bool { return p.Status == "published" }

// BlogCategory is either a populated category object or a bare id string on
// the wire, depending on whether the upstream expanded the reference.
type BlogCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

func (c *BlogCategory) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		c.ID = id
		return nil
	}
	type plain BlogCategory
	return json.Unmarshal(data, (*plain)(c))
}

type CommentReply struct {
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID         string         `json:"_id"`
	PostID     string         `json:"postId"`
	UserID     string         `json:"userId,omitempty"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Content    string         `json:"content"`
	IsApproved bool           `json:"isApproved"`
	ShareToken string         `json:"shareToken,omitempty"`
	ShareCount int            `json:"shareCount,omitempty"`
	Replies    []CommentReply `json:"replies"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type AuthUser struct {
	ID           string `json:"_id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	Location     string `json:"location,omitempty"`
	IsVerified   bool   `json:"isVerified"`
}

// OrderCustomer and OrderLine make up the payload POSTed to /api/orders.
// Prices are snapshotted at submit time so later catalog edits cannot change
// what the customer agreed to pay.
type OrderCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderLine struct {
	ProductID     string          `json:"productId"`
	NameSnapshot  string          `json:"nameSnapshot"`
	PriceSnapshot decimal.Decimal `json:"priceSnapshot"`
	Qty           int             `json:"qty"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
}

type OrderRequest struct {
	Customer      OrderCustomer   `json:"customer"`
	Items         []OrderLine     `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	DeliveryNotes string          `json:"deliveryNotes,omitempty"`
}

type RegisterRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Location    string `json:"location,omitempty"`
}
