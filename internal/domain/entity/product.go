// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

// Rating is the aggregated review score reported by the catalog.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a single sellable item. It is either fetched from the remote catalog
// or authored locally by a signed-in visitor.
type Product struct {
	ID          int64   `json:"id"`                    // Catalog ID, or the creation time in milliseconds for local products.
	Title       string  `json:"title"`                 // Display title.
	Price       float64 `json:"price"`                 // Unit price.
	Description string  `json:"description"`           // Long description.
	Category    string  `json:"category"`              // Free-form category name.
	Image       string  `json:"image"`                 // Image URL.
	Rating      *Rating `json:"rating,omitempty"`      // Nil for products without reviews, which includes every local product.
	Local       bool    `json:"_local,omitempty"`      // Marks a locally authored product.
	OwnerEmail  string  `json:"_ownerEmail,omitempty"` // Owner of a locally authored product.
}

// ProductDraft holds the fields a visitor supplies when authoring a local product.
type ProductDraft struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description" validate:"required,min=10"`
	Price       float64 `json:"price" validate:"gt=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"required,url"`
}

// ToProduct builds an unsaved local product from the draft.
func (d ProductDraft) ToProduct(id int64, ownerEmail string) Product {
	return Product{
		ID:          id,
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Category:    d.Category,
		Image:       d.Image,
		Local:       true,
		OwnerEmail:  ownerEmail,
	}
}
