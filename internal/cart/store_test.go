package cart

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabrielduah055/menHealthClient/internal/model"
)

func product(slug string, price string) model.Product {
	return model.Product{
		ID:    "id-" + slug,
		Name:  slug,
		Slug:  slug,
		Price: decimal.RequireFromString(price),
	}
}

func TestStore_AddItem(t *testing.T) {
	t.Run("merges lines with the same slug", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		p := product("pulse-check", "24.99")

		s.AddItem(p, 2)
		s.AddItem(p, 3)

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("ignores non-positive quantities", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())

		s.AddItem(product("a", "10"), 0)
		s.AddItem(product("a", "10"), -3)

		assert.Empty(t, s.Items())
		assert.Equal(t, 0, s.TotalQty())
	})

	t.Run("keeps distinct products on separate lines", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())

		s.AddItem(product("a", "10"), 1)
		s.AddItem(product("b", "20"), 2)

		require.Len(t, s.Items(), 2)
		assert.Equal(t, 3, s.TotalQty())
	})
}

func TestStore_UpdateQty(t *testing.T) {
	t.Run("sets exact quantity", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		s.AddItem(product("a", "10"), 1)

		s.UpdateQty("a", 7)

		require.Len(t, s.Items(), 1)
		assert.Equal(t, 7, s.Items()[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		s.AddItem(product("a", "10"), 2)

		s.UpdateQty("a", 0)

		assert.Empty(t, s.Items())
	})

	t.Run("unknown slug is a no-op", func(t *testing.T) {
		s := NewStore(NewMemoryStorage())
		s.AddItem(product("a", "10"), 2)

		s.UpdateQty("missing", 4)

		require.Len(t, s.Items(), 1)
		assert.Equal(t, 2, s.Items()[0].Quantity)
	})
}

func TestStore_RemoveItem(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	s.AddItem(product("a", "10"), 2)

	s.RemoveItem("a")
	assert.Empty(t, s.Items())

	// Removing again is idempotent.
	s.RemoveItem("a")
	assert.Empty(t, s.Items())
}

func TestStore_Totals(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	assert.Equal(t, 0, s.TotalQty())
	assert.True(t, s.Subtotal().IsZero())

	s.AddItem(product("pulse-check", "24.99"), 1)
	assert.Equal(t, 1, s.TotalQty())
	assert.True(t, s.Subtotal().Equal(decimal.RequireFromString("24.99")),
		"got %s", s.Subtotal())

	s.UpdateQty("pulse-check", 3)
	assert.Equal(t, 3, s.TotalQty())
	assert.True(t, s.Subtotal().Equal(decimal.RequireFromString("74.97")),
		"got %s", s.Subtotal())

	s.Clear()
	assert.Equal(t, 0, s.TotalQty())
	assert.True(t, s.Subtotal().IsZero())
}

func TestStore_PersistRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	first := NewStore(storage)
	first.AddItem(product("a", "10.50"), 2)
	first.AddItem(product("b", "3.25"), 1)

	second := NewStore(storage)

	opts := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(first.Items(), second.Items(), opts); diff != "" {
		t.Fatalf("reloaded cart differs (-want +got):\n%s", diff)
	}
}

type failingStorage struct{}

func (failingStorage) Load() ([]Item, error) { return nil, errors.New("storage unavailable") }
func (failingStorage) Save([]Item) error     { return errors.New("storage unavailable") }

func TestStore_StorageFailures(t *testing.T) {
	// Unreadable storage means an empty cart, and failed writes never
	// surface to the caller.
	s := NewStore(failingStorage{})
	assert.Empty(t, s.Items())

	s.AddItem(product("a", "10"), 1)
	assert.Equal(t, 1, s.TotalQty())
}
