package entity

// CartItem is one line of a shopping cart.
// A cart holds at most one item per product ID and every quantity is at least 1.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price times quantity for the line.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// CartItems is an ordered cart content.
type CartItems []CartItem

// TotalItems returns the sum of all quantities.
func (items CartItems) TotalItems() int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}

	return total
}

// TotalPrice returns the sum of price times quantity over all lines.
func (items CartItems) TotalPrice() float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}

	return total
}

// IndexOf returns the position of the line holding productID, or -1.
func (items CartItems) IndexOf(productID int64) int {
	for i, item := range items {
		if item.Product.ID == productID {
			return i
		}
	}

	return -1
}
