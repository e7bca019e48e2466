// Package cart holds the shopping cart: an ordered list of product lines
// mirrored through a persistence port on every mutation. One cart has at
// most one line per product slug.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/Gabrielduah055/menHealthClient/internal/model"
)

type Item struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Storage is where the cart line list is mirrored. Load errors mean an
// empty cart, save errors are swallowed: losing a cart is acceptable,
// breaking a page render is not.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

type Store struct {
	storage Storage
	items   []Item
}

func NewStore(storage Storage) *Store {
	items, err := storage.Load()
	if err != nil {
		items = nil
	}
	return &Store{storage: storage, items: items}
}

// AddItem merges the quantity into an existing line for the same slug or
// appends a new line. Non-positive quantities are ignored.
func (s *Store) AddItem(p model.Product, qty int) {
	if qty <= 0 {
		return
	}
	for i := range s.items {
		if s.items[i].Product.Slug == p.Slug {
			s.items[i].Quantity += qty
			s.persist()
			return
		}
	}
	s.items = append(s.items, Item{Product: p, Quantity: qty})
	s.persist()
}

// UpdateQty sets the exact quantity for a line; qty <= 0 removes it.
func (s *Store) UpdateQty(slug string, qty int) {
	if qty <= 0 {
		s.RemoveItem(slug)
		return
	}
	for i := range s.items {
		if s.items[i].Product.Slug == slug {
			s.items[i].Quantity = qty
			s.persist()
			return
		}
	}
}

func (s *Store) RemoveItem(slug string) {
	kept := s.items[:0]
	for _, it := range s.items {
		if it.Product.Slug != slug {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.persist()
}

func (s *Store) Clear() {
	s.items = nil
	s.persist()
}

func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) TotalQty() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

func (s *Store) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func (s *Store) persist() {
	_ = s.storage.Save(s.items)
}
