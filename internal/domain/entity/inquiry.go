package entity

import "time"

// Inquiry statuses. Only admins move an inquiry through these.
const (
	InquiryStatusPending = "pending"
	InquiryStatusReplied = "replied"
	InquiryStatusClosed  = "closed"
)

// Inquiry sources.
const (
	InquirySourceProduct = "product" // "request quote" on a product page
	InquirySourceContact = "contact" // general contact form
	InquirySourceCart    = "cart"    // cart checkout flow
)

// Inquiry is a sales lead left by a storefront visitor (no account required).
type Inquiry struct {
	ID        string
	Number    string // human-quotable reference, e.g. INQ-20260830142501-0007
	ProductID string // empty for general inquiries
	Name      string
	Email     string
	Phone     string
	Company   string
	Message   string
	Source    string
	Status    string
	IsRead    bool
	CreatedAt time.Time
}

// ValidStatus reports whether s is a known inquiry status.
func ValidStatus(s string) bool {
	return s == InquiryStatusPending || s == InquiryStatusReplied || s == InquiryStatusClosed
}
