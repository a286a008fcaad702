package cart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cafetec/cafetec-api/internal/models"
)

func product(id uint, price float64) models.Product {
	return models.Product{ID: id, Name: "producto", Price: price, Category: "Café"}
}

func TestAddMergesDuplicateProducts(t *testing.T) {
	c := New()
	c.Add(product(1, 2.50), 1, "")
	c.Add(product(1, 2.50), 1, "")

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, uint(2), items[0].Quantity)
}

func TestAddKeepsDistinctProducts(t *testing.T) {
	c := New()
	c.Add(product(1, 2.50), 2, "sin azúcar")
	c.Add(product(2, 4.00), 1, "")

	require.Equal(t, 2, c.Len())
	items := c.Items()
	require.Equal(t, "sin azúcar", items[0].Note)
}

func TestTotalIsSumOfPriceTimesQuantity(t *testing.T) {
	c := New()
	c.Add(product(1, 2.50), 3, "")
	c.Add(product(2, 4.00), 2, "")
	require.InDelta(t, 3*2.50+2*4.00, c.Total(), 1e-9)

	// recomputed live on every mutation
	require.True(t, c.SetQuantity(1, 1))
	require.InDelta(t, 1*2.50+2*4.00, c.Total(), 1e-9)

	c.Remove(2)
	require.InDelta(t, 2.50, c.Total(), 1e-9)
}

func TestSetQuantityRejectsNonPositive(t *testing.T) {
	c := New()
	c.Add(product(1, 2.50), 2, "")

	require.False(t, c.SetQuantity(1, 0))
	require.False(t, c.SetQuantity(1, -3))
	require.Equal(t, uint(2), c.Items()[0].Quantity)
}

func TestSetNote(t *testing.T) {
	c := New()
	c.Add(product(1, 2.50), 1, "")
	c.SetNote(1, "sin verdura")
	require.Equal(t, "sin verdura", c.Items()[0].Note)
}

func TestRemoveAndEmpty(t *testing.T) {
	c := New()
	require.True(t, c.Empty())

	c.Add(product(1, 2.50), 1, "")
	require.False(t, c.Empty())

	c.Remove(1)
	require.True(t, c.Empty())
	require.Zero(t, c.Total())
}
