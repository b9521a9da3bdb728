package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"itemBack/internal/models"
	"itemBack/internal/repositories"
)

// ItemStoreService manages store listings attached to items. Mutations
// require ownership of the parent item; listing is public.
type ItemStoreService struct {
	StoreRepo *repositories.ItemStoreRepository
	ItemRepo  ItemRepository
}

func (s *ItemStoreService) CreateStore(ctx context.Context, requesterID int, store models.ItemStore) (models.ItemStore, error) {
	if strings.TrimSpace(store.StoreName) == "" || len(store.StoreName) > 255 {
		return models.ItemStore{}, models.NewAPIError(http.StatusBadRequest, models.CodeValidation, "Store name must be 1 to 255 characters.")
	}
	if store.Price < 0 {
		return models.ItemStore{}, models.NewAPIError(http.StatusBadRequest, models.CodeValidation, "Price must not be negative.")
	}
	if store.Stock < 0 {
		return models.ItemStore{}, models.NewAPIError(http.StatusBadRequest, models.CodeValidation, "Stock must not be negative.")
	}

	if err := s.authorizeItem(ctx, requesterID, store.ItemID); err != nil {
		return models.ItemStore{}, err
	}

	// Raw repository errors pass through here so the handler can classify
	// FK violations (item deleted between the ownership check and insert).
	created, err := s.StoreRepo.CreateStore(ctx, store)
	if err != nil {
		return models.ItemStore{}, err
	}
	return created, nil
}

func (s *ItemStoreService) GetStoresByItem(ctx context.Context, itemID int) ([]models.ItemStore, error) {
	if _, err := s.ItemRepo.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			return nil, models.NewAPIError(http.StatusNotFound, models.CodeItemNotFound, "Item not found.")
		}
		return nil, models.InternalError("Failed to fetch item.")
	}

	stores, err := s.StoreRepo.GetStoresByItemID(ctx, itemID)
	if err != nil {
		return nil, models.InternalError("Failed to fetch store listings.")
	}
	return stores, nil
}

func (s *ItemStoreService) UpdateStore(ctx context.Context, requesterID, storeID int, storeName *string, price *float64, stock *int) (models.ItemStore, error) {
	if storeName != nil && (strings.TrimSpace(*storeName) == "" || len(*storeName) > 255) {
		return models.ItemStore{}, models.NewAPIError(http.StatusBadRequest, models.CodeValidation, "Store name must be 1 to 255 characters.")
	}
	if price != nil && *price < 0 {
		return models.ItemStore{}, models.NewAPIError(http.StatusBadRequest, models.CodeValidation, "Price must not be negative.")
	}
	if stock != nil && *stock < 0 {
		return models.ItemStore{}, models.NewAPIError(http.StatusBadRequest, models.CodeValidation, "Stock must not be negative.")
	}

	store, err := s.StoreRepo.GetStoreByID(ctx, storeID)
	if errors.Is(err, models.ErrStoreNotFound) {
		return models.ItemStore{}, models.NewAPIError(http.StatusNotFound, models.CodeNotFound, "Store listing not found.")
	}
	if err != nil {
		return models.ItemStore{}, models.InternalError("Failed to fetch store listing.")
	}

	if err := s.authorizeItem(ctx, requesterID, store.ItemID); err != nil {
		return models.ItemStore{}, err
	}

	updated, err := s.StoreRepo.UpdateStore(ctx, storeID, storeName, price, stock)
	if err != nil {
		return models.ItemStore{}, models.InternalError("Failed to update store listing.")
	}
	return updated, nil
}

func (s *ItemStoreService) DeleteStore(ctx context.Context, requesterID, storeID int) (string, error) {
	store, err := s.StoreRepo.GetStoreByID(ctx, storeID)
	if errors.Is(err, models.ErrStoreNotFound) {
		return "", models.NewAPIError(http.StatusNotFound, models.CodeNotFound, "Store listing not found.")
	}
	if err != nil {
		return "", models.InternalError("Failed to fetch store listing.")
	}

	if err := s.authorizeItem(ctx, requesterID, store.ItemID); err != nil {
		return "", err
	}

	deleted, err := s.StoreRepo.DeleteStore(ctx, storeID)
	if err != nil {
		return "", models.InternalError("Failed to delete store listing.")
	}
	if !deleted {
		return "", models.NewAPIError(http.StatusNotFound, models.CodeNotFound, "Store listing not found.")
	}
	return "Store listing deleted successfully.", nil
}

// authorizeItem verifies in one query that the item exists and belongs to
// the requester; on a miss a second read classifies absent vs not-owner.
func (s *ItemStoreService) authorizeItem(ctx context.Context, requesterID, itemID int) error {
	_, err := s.ItemRepo.GetItemByUserAndID(ctx, requesterID, itemID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrItemNotFound) {
		return models.InternalError("Failed to fetch item.")
	}

	if _, err := s.ItemRepo.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			return models.NewAPIError(http.StatusNotFound, models.CodeItemNotFound, "Item not found.")
		}
		return models.InternalError("Failed to fetch item.")
	}
	return models.NewAPIError(http.StatusForbidden, models.CodeForbidden, "Forbidden Access")
}
