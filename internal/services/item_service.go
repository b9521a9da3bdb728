package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"itemBack/internal/models"
)

const defaultPageLimit = 10

// ItemRepository is the persistence contract the item service depends on.
// The repository decides nothing about HTTP semantics; it reports absence via
// models.ErrItemNotFound and removal via a boolean.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItems(ctx context.Context) ([]models.Item, error)
	GetItemByID(ctx context.Context, id int) (models.Item, error)
	GetItemByUserAndID(ctx context.Context, userID, id int) (models.Item, error)
	UpdateItem(ctx context.Context, id int, name, description *string) (models.Item, error)
	DeleteItem(ctx context.Context, id int) (bool, error)
	GetItemsWithStores(ctx context.Context) ([]models.ItemWithStores, error)
	GetItemsWithStoresCustomSQL(ctx context.Context) ([]models.ItemWithStores, error)
	GetPaginatedItems(ctx context.Context, page, limit int) (models.PagedItems, error)
	GetPaginatedItemsCustomSQL(ctx context.Context, page, limit int) (models.PagedItems, error)
}

// ItemService owns the branching business logic: ownership checks on
// mutation and the translation of repository outcomes into APIErrors.
type ItemService struct {
	ItemRepo ItemRepository
}

func (s *ItemService) CreateItem(ctx context.Context, name, description string, userID int) (models.Item, error) {
	if strings.TrimSpace(name) == "" {
		return models.Item{}, models.NewAPIError(http.StatusBadRequest, models.CodeValidation, "Item name is required.")
	}

	item, err := s.ItemRepo.CreateItem(ctx, models.Item{
		Name:        name,
		Description: description,
		UserID:      userID,
	})
	if err != nil {
		return models.Item{}, models.NewAPIError(http.StatusInternalServerError, models.CodeItemCreateFailed, "Failed to create item.")
	}
	return item, nil
}

func (s *ItemService) GetItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.ItemRepo.GetItems(ctx)
	if err != nil {
		return nil, models.InternalError("Failed to fetch items.")
	}
	return items, nil
}

func (s *ItemService) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if errors.Is(err, models.ErrItemNotFound) {
		return models.Item{}, models.NewAPIError(http.StatusNotFound, models.CodeItemNotFound, "Item not found.")
	}
	if err != nil {
		return models.Item{}, models.InternalError("Failed to fetch item.")
	}
	return item, nil
}

// UpdateItem enforces the ownership rule: only the owner may change name or
// description. Supplying neither field is a no-op that returns the item
// unchanged, not an error.
func (s *ItemService) UpdateItem(ctx context.Context, id, requesterID int, name, description *string) (models.Item, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if errors.Is(err, models.ErrItemNotFound) {
		return models.Item{}, models.NewAPIError(http.StatusNotFound, models.CodeItemNotFound, "Item not found.")
	}
	if err != nil {
		return models.Item{}, models.InternalError("Failed to fetch item.")
	}

	if item.UserID != requesterID {
		return models.Item{}, models.NewAPIError(http.StatusForbidden, models.CodeForbidden, "Forbidden Access")
	}

	if name == nil && description == nil {
		return item, nil
	}

	updated, err := s.ItemRepo.UpdateItem(ctx, id, name, description)
	if errors.Is(err, models.ErrItemNotFound) {
		// Deleted between the ownership check and the write.
		return models.Item{}, models.NewAPIError(http.StatusNotFound, models.CodeItemUpdateFailed, "Item not found.")
	}
	if err != nil {
		return models.Item{}, models.NewAPIError(http.StatusInternalServerError, models.CodeItemUpdateFailed, "Failed to update item.")
	}
	return updated, nil
}

// DeleteItem returns a confirmation message rather than the removed entity.
func (s *ItemService) DeleteItem(ctx context.Context, id, requesterID int) (string, error) {
	item, err := s.ItemRepo.GetItemByID(ctx, id)
	if errors.Is(err, models.ErrItemNotFound) {
		return "", models.NewAPIError(http.StatusNotFound, models.CodeItemNotFound, "Item not found.")
	}
	if err != nil {
		return "", models.InternalError("Failed to fetch item.")
	}

	if item.UserID != requesterID {
		return "", models.NewAPIError(http.StatusForbidden, models.CodeForbidden, "Forbidden Access")
	}

	deleted, err := s.ItemRepo.DeleteItem(ctx, id)
	if err != nil {
		return "", models.NewAPIError(http.StatusInternalServerError, models.CodeItemDeleteFailed, "Failed to delete item.")
	}
	if !deleted {
		return "", models.NewAPIError(http.StatusNotFound, models.CodeItemDeleteFailed, "Item not found.")
	}
	return "Item deleted successfully.", nil
}

func (s *ItemService) GetItemsWithStores(ctx context.Context) ([]models.ItemWithStores, error) {
	items, err := s.ItemRepo.GetItemsWithStores(ctx)
	if err != nil {
		return nil, models.InternalError("Failed to fetch items with store details.")
	}
	return items, nil
}

func (s *ItemService) GetItemsWithStoresCustomSQL(ctx context.Context) ([]models.ItemWithStores, error) {
	items, err := s.ItemRepo.GetItemsWithStoresCustomSQL(ctx)
	if err != nil {
		return nil, models.InternalError("Failed to fetch items with store details.")
	}
	return items, nil
}

func (s *ItemService) GetPaginatedItems(ctx context.Context, page, limit int) (models.PagedItems, error) {
	page, limit = normalizePage(page, limit)
	result, err := s.ItemRepo.GetPaginatedItems(ctx, page, limit)
	if err != nil {
		return models.PagedItems{}, models.InternalError("Failed to fetch paginated items.")
	}
	return result, nil
}

func (s *ItemService) GetPaginatedItemsCustomSQL(ctx context.Context, page, limit int) (models.PagedItems, error) {
	page, limit = normalizePage(page, limit)
	result, err := s.ItemRepo.GetPaginatedItemsCustomSQL(ctx, page, limit)
	if err != nil {
		return models.PagedItems{}, models.InternalError("Failed to fetch paginated items.")
	}
	return result, nil
}

// normalizePage silently clamps out-of-range paging parameters instead of
// rejecting them.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}
