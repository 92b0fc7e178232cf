// cart_test.go - Tests for the cart reducer and wrapper
// Run with: go test ./...

package cart

import (
	"testing"

	"go-shop-backend/models"

	"github.com/stretchr/testify/assert"
)

var (
	widget = models.Product{ID: 1, Name: "Widget", Price: 19.99}
	gadget = models.Product{ID: 2, Name: "Gadget", Price: 5.00}
)

// checkTotal asserts the running total matches a from-scratch sum of
// quantity × price over the current items.
func checkTotal(t *testing.T, state State) {
	t.Helper()
	var want float64
	for _, item := range state.Items {
		want += item.Product.Price * float64(item.Quantity)
	}
	assert.InDelta(t, want, state.Total, 1e-9)
}

func TestAddItemMergesQuantity(t *testing.T) {
	state := State{}
	state = Reduce(state, Action{Type: AddItem, Product: &widget, Quantity: 2})
	state = Reduce(state, Action{Type: AddItem, Product: &widget, Quantity: 3})

	assert.Len(t, state.Items, 1) // Same product collapses into one line
	assert.Equal(t, 5, state.Items[0].Quantity)
	assert.InDelta(t, 5*widget.Price, state.Total, 1e-9)
	checkTotal(t, state)
}

func TestAddItemAppendsDistinctProducts(t *testing.T) {
	state := State{}
	state = Reduce(state, Action{Type: AddItem, Product: &widget, Quantity: 1})
	state = Reduce(state, Action{Type: AddItem, Product: &gadget, Quantity: 4})

	assert.Len(t, state.Items, 2)
	assert.Equal(t, uint(1), state.Items[0].ProductID) // Insertion order preserved
	assert.Equal(t, uint(2), state.Items[1].ProductID)
	checkTotal(t, state)
}

func TestRemoveItem(t *testing.T) {
	state := State{}
	state = Reduce(state, Action{Type: AddItem, Product: &widget, Quantity: 2})
	state = Reduce(state, Action{Type: AddItem, Product: &gadget, Quantity: 1})
	state = Reduce(state, Action{Type: RemoveItem, ProductID: widget.ID})

	assert.Len(t, state.Items, 1)
	assert.Equal(t, gadget.ID, state.Items[0].ProductID)
	checkTotal(t, state)
}

func TestRemoveUnknownItemIsNoOp(t *testing.T) {
	state := State{}
	state = Reduce(state, Action{Type: AddItem, Product: &widget, Quantity: 2})
	next := Reduce(state, Action{Type: RemoveItem, ProductID: 999})

	assert.Equal(t, state.Items, next.Items)
	assert.Equal(t, state.Total, next.Total)
}

func TestUpdateQuantityReplaces(t *testing.T) {
	state := State{}
	state = Reduce(state, Action{Type: AddItem, Product: &widget, Quantity: 2})
	state = Reduce(state, Action{Type: UpdateQuantity, ProductID: widget.ID, Quantity: 7})

	assert.Equal(t, 7, state.Items[0].Quantity)
	checkTotal(t, state)
}

func TestClearAlwaysEmpties(t *testing.T) {
	state := State{}
	state = Reduce(state, Action{Type: AddItem, Product: &widget, Quantity: 2})
	state = Reduce(state, Action{Type: AddItem, Product: &gadget, Quantity: 3})
	state = Reduce(state, Action{Type: Clear})

	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
}

// TestTotalInvariantAcrossSequence drives the reducer through a mixed
// command sequence and re-checks the total invariant after every step.
func TestTotalInvariantAcrossSequence(t *testing.T) {
	actions := []Action{
		{Type: AddItem, Product: &widget, Quantity: 2},
		{Type: AddItem, Product: &gadget, Quantity: 1},
		{Type: AddItem, Product: &widget, Quantity: 3},
		{Type: UpdateQuantity, ProductID: gadget.ID, Quantity: 10},
		{Type: RemoveItem, ProductID: widget.ID},
		{Type: AddItem, Product: &widget, Quantity: 1},
		{Type: Clear},
		{Type: AddItem, Product: &gadget, Quantity: 2},
	}
	state := State{}
	for _, action := range actions {
		state = Reduce(state, action)
		checkTotal(t, state)
	}
}

// TestReduceIsPure verifies the input state is never mutated.
func TestReduceIsPure(t *testing.T) {
	state := State{}
	state = Reduce(state, Action{Type: AddItem, Product: &widget, Quantity: 2})

	_ = Reduce(state, Action{Type: AddItem, Product: &widget, Quantity: 5})
	_ = Reduce(state, Action{Type: UpdateQuantity, ProductID: widget.ID, Quantity: 9})
	_ = Reduce(state, Action{Type: RemoveItem, ProductID: widget.ID})

	assert.Equal(t, 2, state.Items[0].Quantity) // Original untouched
	assert.InDelta(t, 2*widget.Price, state.Total, 1e-9)
}

func TestCartCheckout(t *testing.T) {
	c := New()
	c.AddItem(&widget, 2)
	c.AddItem(&gadget, 1)
	assert.InDelta(t, 44.98, c.Total(), 1e-9)

	total, items := c.Checkout()
	assert.InDelta(t, 44.98, total, 1e-9)
	assert.Equal(t, models.OrderItems{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
	}, items)

	// Submission discards the cart
	assert.Empty(t, c.Items())
	assert.Zero(t, c.Total())
}
