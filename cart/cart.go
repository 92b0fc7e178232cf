// cart.go - Pure reducer for the shopping cart state machine

package cart // Declares the package name

import "go-shop-backend/models"

// Item - One cart line: the product reference, the quantity, and a
// denormalized snapshot of the product used for display and totals.
type Item struct {
	ProductID uint           `json:"productId"`
	Quantity  int            `json:"quantity"`
	Product   models.Product `json:"product"`
}

// State - The cart contents and the running total. The zero value is a
// valid empty cart.
type State struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// ActionType tags the four cart commands.
type ActionType int

const (
	AddItem        ActionType = iota // Add a product (merges quantity if already present)
	RemoveItem                       // Drop a product's line
	UpdateQuantity                   // Replace a line's quantity
	Clear                            // Reset to the empty cart
)

// Action - A tagged cart command. Which payload fields are meaningful
// depends on Type: AddItem uses Product+Quantity, RemoveItem uses
// ProductID, UpdateQuantity uses ProductID+Quantity, Clear uses none.
type Action struct {
	Type      ActionType
	Product   *models.Product
	ProductID uint
	Quantity  int
}

// Reduce applies one action to the cart and returns the next state.
// It is a pure function: the input state is never mutated, and the
// total is always recomputed from scratch rather than adjusted
// incrementally, so it cannot drift. Quantity clamping is the caller's
// responsibility.
func Reduce(state State, action Action) State {
	switch action.Type {
	case AddItem:
		items := make([]Item, len(state.Items))
		copy(items, state.Items)
		merged := false
		for i := range items {
			if items[i].ProductID == action.Product.ID {
				items[i].Quantity += action.Quantity
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, Item{
				ProductID: action.Product.ID,
				Quantity:  action.Quantity,
				Product:   *action.Product,
			})
		}
		return State{Items: items, Total: total(items)}

	case RemoveItem:
		items := make([]Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ProductID != action.ProductID {
				items = append(items, item)
			}
		}
		return State{Items: items, Total: total(items)}

	case UpdateQuantity:
		items := make([]Item, len(state.Items))
		copy(items, state.Items)
		for i := range items {
			if items[i].ProductID == action.ProductID {
				items[i].Quantity = action.Quantity
				break
			}
		}
		return State{Items: items, Total: total(items)}

	case Clear:
		return State{Items: []Item{}, Total: 0}

	default:
		return state
	}
}

// total sums quantity × unit price over all lines.
func total(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

// Cart - Convenience wrapper dispatching actions against a held state,
// for in-process consumers that do not want to thread State manually.
type Cart struct {
	state State
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{state: State{Items: []Item{}}}
}

func (c *Cart) AddItem(product *models.Product, quantity int) {
	c.state = Reduce(c.state, Action{Type: AddItem, Product: product, Quantity: quantity})
}

func (c *Cart) RemoveItem(productID uint) {
	c.state = Reduce(c.state, Action{Type: RemoveItem, ProductID: productID})
}

func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	c.state = Reduce(c.state, Action{Type: UpdateQuantity, ProductID: productID, Quantity: quantity})
}

func (c *Cart) Clear() {
	c.state = Reduce(c.state, Action{Type: Clear})
}

// Items returns the current cart lines.
func (c *Cart) Items() []Item {
	return c.state.Items
}

// Total returns the current running total.
func (c *Cart) Total() float64 {
	return c.state.Total
}

// Checkout converts the cart into an order payload (total plus thin
// {productId, quantity} line items) and clears the cart, matching the
// storefront flow where submission discards the client cart.
func (c *Cart) Checkout() (float64, models.OrderItems) {
	items := make(models.OrderItems, 0, len(c.state.Items))
	for _, item := range c.state.Items {
		items = append(items, models.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	totalValue := c.state.Total
	c.Clear()
	return totalValue, items
}
