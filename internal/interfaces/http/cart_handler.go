package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinopos/storefront-api/internal/application/cart"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/application/usecase"
	"github.com/sinopos/storefront-api/internal/domain"
)

// CartHandler handles the authenticated user's cart.
type CartHandler struct {
	uc        *cart.UseCase
	inquiries *usecase.InquiryUseCase
}

// NewCartHandler builds the handler.
func NewCartHandler(uc *cart.UseCase, inquiries *usecase.InquiryUseCase) *CartHandler {
	return &CartHandler{uc: uc, inquiries: inquiries}
}

// Get godoc
// @Summary      The current cart
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Add a product to the cart (quantities accumulate)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "Product and quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.AddToCart(GetUserID(c), in.ProductID, in.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Set a cart line's quantity (0 removes it)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "Product id"
// @Param        body       body  dto.UpdateCartQuantityRequest  true  "New quantity"
// @Success      200        {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	productID := c.Params("productId")
	var in dto.UpdateCartQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.UpdateQuantity(GetUserID(c), productID, in.Quantity)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Remove a cart line
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "Product id"
// @Success      200        {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.RemoveFromCart(GetUserID(c), c.Params("productId"))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Empty the cart
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.ClearCart(GetUserID(c))
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Turn the cart into a quote inquiry and clear it
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Contact details"
// @Success      201   {object}  dto.InquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Checkout(GetUserID(c), in, h.inquiries)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name and email are required, and the cart must not be empty"})
		}
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func cartError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id required"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id is required"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
