package cart

import (
	"fmt"
	"strings"

	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
)

// InquiryCreator is the slice of the inquiry use case checkout needs.
type InquiryCreator interface {
	Create(in dto.CreateInquiryRequest) (*dto.InquiryResponse, error)
}

// Checkout turns a non-empty cart into an inquiry and clears the cart.
// The inquiry message lists every line with its quantity; the visitor's
// contact details come from the request. On any failure the cart is left
// untouched.
func (uc *UseCase) Checkout(userID string, in dto.CheckoutRequest, inquiries InquiryCreator) (*dto.InquiryResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	mu := uc.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	lines, err := uc.repo.ListLines(userID)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("checkout cart read failed")
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	resp, err := inquiries.Create(dto.CreateInquiryRequest{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
		Message: checkoutMessage(lines, in.Message),
		Source:  entity.InquirySourceCart,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("checkout inquiry failed")
		return nil, err
	}
	if err := uc.repo.DeleteByUser(userID); err != nil {
		// The inquiry exists; a stale cart is recoverable, losing the
		// inquiry is not. Log and return success.
		uc.log.Error().Err(err).Str("user_id", userID).Msg("checkout cart clear failed")
	}
	return resp, nil
}

func checkoutMessage(lines []*entity.CartLine, note string) string {
	var b strings.Builder
	b.WriteString("Quote request:\n")
	for _, line := range lines {
		name := line.Product.NameEN
		if name == "" {
			name = line.Product.NameZH
		}
		fmt.Fprintf(&b, "- %s x%d\n", name, line.Item.Quantity)
	}
	if note != "" {
		b.WriteString("\n")
		b.WriteString(note)
	}
	return b.String()
}
