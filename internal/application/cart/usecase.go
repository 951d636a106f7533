// Package cart keeps an authenticated user's cart consistent between callers
// and the store: last-write-wins, read-after-write (every mutation is
// followed by a re-read that reflects it), no optimistic state.
package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/domain"
	"github.com/sinopos/storefront-api/internal/domain/entity"
	"github.com/sinopos/storefront-api/internal/domain/repository"
	"github.com/sinopos/storefront-api/pkg/logger"
)

// UseCase serializes cart mutations per user: a mutation's trailing re-read
// always reflects that mutation, never a stale concurrent one. Different
// users never contend — each cart is scoped to its own user id.
type UseCase struct {
	repo  repository.CartItemRepository
	log   *logger.Logger
	locks sync.Map // userID -> *sync.Mutex
}

// NewUseCase builds the cart use case.
func NewUseCase(repo repository.CartItemRepository, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, log: log}
}

// Get returns the user's cart with product snapshots, remote default order.
func (uc *UseCase) Get(userID string) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return uc.fetch(userID)
}

// AddToCart adds qty of a product (default 1). An existing (user, product)
// row absorbs the quantity atomically — two adds yield one row with the
// summed quantity, never two rows.
func (uc *UseCase) AddToCart(userID, productID string, qty int) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if qty < 1 {
		qty = 1
	}
	mu := uc.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	now := time.Now()
	item := &entity.CartItem{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.AddQuantity(item); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Str("product_id", productID).Msg("cart add failed")
		return nil, err
	}
	return uc.fetch(userID)
}

// UpdateQuantity sets the quantity for (user, product). Below 1 the line is
// removed instead.
func (uc *UseCase) UpdateQuantity(userID, productID string, qty int) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if qty < 1 {
		return uc.RemoveFromCart(userID, productID)
	}
	mu := uc.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := uc.repo.SetQuantity(userID, productID, qty); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Str("product_id", productID).Msg("cart update failed")
		return nil, err
	}
	return uc.fetch(userID)
}

// RemoveFromCart deletes the line for (user, product).
func (uc *UseCase) RemoveFromCart(userID, productID string) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	mu := uc.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := uc.repo.Delete(userID, productID); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Str("product_id", productID).Msg("cart remove failed")
		return nil, err
	}
	return uc.fetch(userID)
}

// ClearCart deletes every line. The empty cart is returned directly, no
// re-read round trip needed.
func (uc *UseCase) ClearCart(userID string) (*dto.CartResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	mu := uc.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := uc.repo.DeleteByUser(userID); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("cart clear failed")
		return nil, err
	}
	return &dto.CartResponse{Items: []dto.CartLineResponse{}}, nil
}

// Lines returns the raw joined lines (used by the checkout flow).
func (uc *UseCase) Lines(userID string) ([]*entity.CartLine, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return uc.repo.ListLines(userID)
}

func (uc *UseCase) fetch(userID string) (*dto.CartResponse, error) {
	lines, err := uc.repo.ListLines(userID)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("cart fetch failed")
		return nil, err
	}
	resp := &dto.CartResponse{Items: make([]dto.CartLineResponse, 0, len(lines))}
	for _, line := range lines {
		item := dto.CartLineResponse{
			ProductID: line.Item.ProductID,
			Quantity:  line.Item.Quantity,
			Product:   *toProductResponse(line.Product),
		}
		if line.Category != nil {
			item.Category = toCategoryResponse(line.Category)
		}
		resp.Items = append(resp.Items, item)
		resp.ItemCount += line.Item.Quantity
	}
	return resp, nil
}

func (uc *UseCase) userLock(userID string) *sync.Mutex {
	v, _ := uc.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}
