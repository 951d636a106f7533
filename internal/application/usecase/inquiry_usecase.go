package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
	"github.com/sinopos/storefront-api/pkg/ident"
)

// InquiryUseCase creates visitor inquiries and serves the admin inbox.
// Admin listing is cursor-paged by created_at so the page stays correct
// while new inquiries arrive.
type InquiryUseCase struct {
	repo     repository.InquiryRepository
	numbers  *ident.Generator
	pageSize int
}

// NewInquiryUseCase builds the use case. pageSize is the admin list size (20).
func NewInquiryUseCase(repo repository.InquiryRepository, pageSize int) *InquiryUseCase {
	if pageSize < 1 {
		pageSize = 20
	}
	return &InquiryUseCase{
		repo:     repo,
		numbers:  ident.New("INQ"),
		pageSize: pageSize,
	}
}

// Create records a visitor inquiry. No authentication required.
func (uc *InquiryUseCase) Create(in dto.CreateInquiryRequest) (*dto.InquiryResponse, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	source := in.Source
	if source == "" {
		source = entity.InquirySourceContact
	}
	inquiry := &entity.Inquiry{
		ID:        uuid.New().String(),
		Number:    uc.numbers.Next(),
		ProductID: in.ProductID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Message:   in.Message,
		Source:    source,
		Status:    entity.InquiryStatusPending,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(inquiry); err != nil {
		return nil, err
	}
	return toInquiryResponse(inquiry), nil
}

// List returns one admin page older than the cursor (RFC3339Nano timestamp;
// empty means "from now"), optionally filtered by status.
func (uc *InquiryUseCase) List(cursor, status string) (*dto.InquiryListResponse, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	before := time.Now()
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		before = t
	}
	list, err := uc.repo.ListBefore(before, uc.pageSize, status)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InquiryResponse, 0, len(list))
	for _, in := range list {
		items = append(items, *toInquiryResponse(in))
	}
	resp := &dto.InquiryListResponse{Items: items}
	if len(list) == uc.pageSize {
		resp.NextCursor = list[len(list)-1].CreatedAt.Format(time.RFC3339Nano)
	}
	return resp, nil
}

// GetByID fetches one inquiry; reading it marks it read.
func (uc *InquiryUseCase) GetByID(id string) (*dto.InquiryResponse, error) {
	inquiry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, nil
	}
	if !inquiry.IsRead {
		if err := uc.repo.SetRead(id, true); err != nil {
			return nil, err
		}
		inquiry.IsRead = true
	}
	return toInquiryResponse(inquiry), nil
}

// UnreadCount returns the number of unread inquiries (inbox badge).
func (uc *InquiryUseCase) UnreadCount() (*dto.UnreadCountResponse, error) {
	n, err := uc.repo.CountUnread()
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Unread: n}, nil
}

// UpdateStatus moves an inquiry between pending, replied and closed.
func (uc *InquiryUseCase) UpdateStatus(id, status string) (*dto.InquiryResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	inquiry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	inquiry.Status = status
	return toInquiryResponse(inquiry), nil
}

// SetRead flips the read flag explicitly (mark unread is allowed).
func (uc *InquiryUseCase) SetRead(id string, read bool) error {
	return uc.repo.SetRead(id, read)
}

// Delete removes one inquiry.
func (uc *InquiryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// DeleteMany removes inquiries in bulk.
func (uc *InquiryUseCase) DeleteMany(ids []string) error {
	if len(ids) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.repo.DeleteMany(ids)
}
