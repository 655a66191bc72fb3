package models

// CartItem is one line of the cart: an item bound to a customization and a quantity
type CartItem struct {
	Coffee              CoffeeItem          `bson:"coffee" json:"coffee"`
	Quantity            int                 `bson:"quantity" json:"quantity"`
	Customizations      CoffeeCustomization `bson:"customizations" json:"customizations"`
	SpecialInstructions string              `bson:"special_instructions" json:"special_instructions"`
}

// Subtotal is the line price times its quantity
func (ci CartItem) Subtotal() float64 {
	return ci.Coffee.Price * float64(ci.Quantity)
}

// SameLine reports whether the line holds itemID with exactly the given customization
func (ci CartItem) SameLine(itemID string, c CoffeeCustomization) bool {
	return ci.Coffee.ID == itemID && ci.Customizations.Equal(c)
}

// Cart is the read model returned to clients
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"item_count"`
}

// CartTotal sums price times quantity over lines
func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

// CartItemCount sums quantities over lines
func CartItemCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
