package dto

// AddToCartRequest input to add a product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"` // defaults to 1
}

// UpdateCartQuantityRequest input to set the quantity of a cart line.
// Quantity below 1 removes the line.
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse one cart line with its product snapshot.
type CartLineResponse struct {
	ProductID string            `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Product   ProductResponse   `json:"product"`
	Category  *CategoryResponse `json:"category,omitempty"`
}

// CartResponse the whole cart. ItemCount is the sum of all quantities.
type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"item_count"`
}

// CheckoutRequest contact details to turn the cart into an inquiry.
type CheckoutRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}
