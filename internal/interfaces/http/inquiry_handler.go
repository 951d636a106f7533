package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/application/usecase"
	"github.com/sinopos/storefront-api/internal/domain"
)

// InquiryHandler exposes the public inquiry form and the admin inbox.
type InquiryHandler struct {
	uc *usecase.InquiryUseCase
}

// NewInquiryHandler builds the handler.
func NewInquiryHandler(uc *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Create godoc
// @Summary      Submit an inquiry (public)
// @Tags         inquiries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInquiryRequest  true  "Inquiry data"
// @Success      201   {object}  dto.InquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inquiries [post]
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInquiryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email and message are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Admin inbox, cursor-paged, newest first
// @Tags         admin-inquiries
// @Security     Bearer
// @Produce      json
// @Param        cursor  query  string  false  "created_at cursor (RFC3339Nano); empty = from now"
// @Param        status  query  string  false  "Status filter"  Enums(pending, replied, closed)
// @Success      200     {object}  dto.InquiryListResponse
// @Router       /api/admin/inquiries [get]
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("cursor"), c.Query("status"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid cursor or status"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UnreadCount godoc
// @Summary      Number of unread inquiries
// @Tags         admin-inquiries
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UnreadCountResponse
// @Router       /api/admin/inquiries/unread [get]
func (h *InquiryHandler) UnreadCount(c *fiber.Ctx) error {
	out, err := h.uc.UnreadCount()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      One inquiry; opening it marks it read
// @Tags         admin-inquiries
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Inquiry id"
// @Success      200  {object}  dto.InquiryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/inquiries/{id} [get]
func (h *InquiryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inquiry not found"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Move an inquiry between pending/replied/closed
// @Tags         admin-inquiries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Inquiry id"
// @Param        body  body  dto.UpdateInquiryStatusRequest  true  "New status"
// @Success      200   {object}  dto.InquiryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/inquiries/{id}/status [put]
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateInquiryStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status must be pending, replied or closed"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inquiry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inquiry not found"})
	}
	return c.JSON(out)
}

// SetRead godoc
// @Summary      Flip an inquiry's read flag
// @Tags         admin-inquiries
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "Inquiry id"
// @Param        body  body  dto.SetInquiryReadRequest  true  "Read flag"
// @Success      204
// @Router       /api/admin/inquiries/{id}/read [put]
func (h *InquiryHandler) SetRead(c *fiber.Ctx) error {
	var in dto.SetInquiryReadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.uc.SetRead(c.Params("id"), in.Read); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inquiry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Delete one inquiry
// @Tags         admin-inquiries
// @Security     Bearer
// @Param        id  path  string  true  "Inquiry id"
// @Success      204
// @Router       /api/admin/inquiries/{id} [delete]
func (h *InquiryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inquiry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteMany godoc
// @Summary      Bulk-delete inquiries
// @Tags         admin-inquiries
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.DeleteInquiriesRequest  true  "Ids to delete"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/inquiries [delete]
func (h *InquiryHandler) DeleteMany(c *fiber.Ctx) error {
	var in dto.DeleteInquiriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if len(in.IDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ids must not be empty"})
	}
	if err := h.uc.DeleteMany(in.IDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
