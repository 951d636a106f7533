package dto

import "time"

// CreateInquiryRequest input from a storefront visitor (no auth required).
type CreateInquiryRequest struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Message   string `json:"message" validate:"required,min=1"`
	Source    string `json:"source"`
}

// UpdateInquiryStatusRequest admin status transition.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending replied closed"`
}

// SetInquiryReadRequest admin read-flag toggle.
type SetInquiryReadRequest struct {
	Read bool `json:"read"`
}

// DeleteInquiriesRequest admin bulk delete.
type DeleteInquiriesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// InquiryResponse one inquiry row.
type InquiryResponse struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	ProductID string    `json:"product_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// InquiryListResponse cursor-paged admin list.
type InquiryListResponse struct {
	Items []InquiryResponse `json:"items"`
	CursorPageResponse
}

// UnreadCountResponse number of unread inquiries.
type UnreadCountResponse struct {
	Unread int `json:"unread"`
}
