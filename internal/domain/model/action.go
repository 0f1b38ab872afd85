package model

// ActionType names a quantity transition.
type ActionType string

const (
	// ActionIncrement moves one unit from stock into the order.
	ActionIncrement ActionType = "increment"
	// ActionDecrement moves one unit from the order back into stock.
	ActionDecrement ActionType = "decrement"
)

// Valid reports whether t is a known action type.
func (t ActionType) Valid() bool {
	return t == ActionIncrement || t == ActionDecrement
}

// Action is a quantity adjustment dispatched by the client.
//
// @Description Quantity adjustment for one product
// @Example {"type": "increment", "productId": 1}
type Action struct {
	Type      ActionType `json:"type" binding:"required,oneof=increment decrement" example:"increment"`
	ProductID int64      `json:"productId" example:"1"`
} // @name Action

// Increment builds an increment action for productID.
func Increment(productID int64) Action {
	return Action{Type: ActionIncrement, ProductID: productID}
}

// Decrement builds a decrement action for productID.
func Decrement(productID int64) Action {
	return Action{Type: ActionDecrement, ProductID: productID}
}
