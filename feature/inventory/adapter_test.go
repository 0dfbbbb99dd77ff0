package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdapter(t *testing.T) {
	a := Adapter{}
	existing := product("Widget", 100, 5, date(2024, 1, 1))
	existing.ID = 9

	assert.Equal(t, "product", a.Name())
	assert.Equal(t, "Widget", a.Key(existing))

	t.Run("Newer", func(t *testing.T) {
		assert.True(t, a.Newer(product("Widget", 1, 1, date(2024, 1, 2)), existing))
		assert.False(t, a.Newer(product("Widget", 1, 1, date(2024, 1, 1)), existing))
		assert.False(t, a.Newer(product("Widget", 1, 1, date(2023, 12, 31)), existing))
	})

	t.Run("Same Day Later Hour Is Not Newer", func(t *testing.T) {
		late := product("Widget", 1, 1, time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC))
		assert.False(t, a.Newer(late, existing))
	})

	t.Run("Merge Keeps Identity", func(t *testing.T) {
		candidate := product("Widget", 250, 2, date(2024, 2, 1))
		candidate.ID = 77

		merged := a.Merge(existing, candidate)
		assert.Equal(t, uint(9), merged.ID)
		assert.Equal(t, "Widget", merged.Name)
		assert.Equal(t, int64(250), merged.PriceCents)
		assert.Equal(t, 2, merged.Quantity)
		assert.True(t, date(2024, 2, 1).Equal(merged.UpdatedOn))
	})
}
