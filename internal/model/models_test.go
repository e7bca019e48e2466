package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogCategory_UnmarshalJSON(t *testing.T) {
	t.Run("bare id string", func(t *testing.T) {
		var post BlogPost
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"b1","category":"cat-42"}`), &post))
		require.NotNil(t, post.Category)
		assert.Equal(t, "cat-42", post.Category.ID)
		assert.Empty(t, post.Category.Name)
	})

	t.Run("expanded object", func(t *testing.T) {
		var post BlogPost
		raw := `{"_id":"b1","category":{"_id":"cat-42","name":"Sleep","slug":"sleep"}}`
		require.NoError(t, json.Unmarshal([]byte(raw), &post))
		require.NotNil(t, post.Category)
		assert.Equal(t, "cat-42", post.Category.ID)
		assert.Equal(t, "Sleep", post.Category.Name)
	})

	t.Run("absent", func(t *testing.T) {
		var post BlogPost
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"b1"}`), &post))
		assert.Nil(t, post.Category)
	})
}

func TestMoneyOnTheWire(t *testing.T) {
	// The upstream sends numbers; order payloads must send numbers back.
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"p1","price":24.99}`), &p))
	assert.True(t, p.Price.Equal(decimal.RequireFromString("24.99")))

	line := OrderLine{
		ProductID:     "p1",
		NameSnapshot:  "Pulse Check",
		PriceSnapshot: p.Price,
		Qty:           3,
		LineTotal:     p.Price.Mul(decimal.NewFromInt(3)),
	}
	out, err := json.Marshal(line)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"priceSnapshot":24.99`)
	assert.Contains(t, string(out), `"lineTotal":74.97`)
}
