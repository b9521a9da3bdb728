package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"itemBack/internal/models"
)

// stubItemRepo records the arguments of its last calls and answers from
// canned fields. Methods a test does not arm fail loudly if reached.
type stubItemRepo struct {
	items map[int]models.Item

	createErr   error
	updateErr   error
	updateCalls int

	pagedResult models.PagedItems
	pagedPage   int
	pagedLimit  int
}

func (s *stubItemRepo) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	if s.createErr != nil {
		return models.Item{}, s.createErr
	}
	item.ID = 1
	return item, nil
}

func (s *stubItemRepo) GetItems(ctx context.Context) ([]models.Item, error) {
	return nil, nil
}

func (s *stubItemRepo) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, nil
}

func (s *stubItemRepo) GetItemByUserAndID(ctx context.Context, userID, id int) (models.Item, error) {
	item, ok := s.items[id]
	if !ok || item.UserID != userID {
		return models.Item{}, models.ErrItemNotFound
	}
	return item, nil
}

func (s *stubItemRepo) UpdateItem(ctx context.Context, id int, name, description *string) (models.Item, error) {
	s.updateCalls++
	if s.updateErr != nil {
		return models.Item{}, s.updateErr
	}
	item := s.items[id]
	if name != nil {
		item.Name = *name
	}
	if description != nil {
		item.Description = *description
	}
	s.items[id] = item
	return item, nil
}

func (s *stubItemRepo) DeleteItem(ctx context.Context, id int) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *stubItemRepo) GetItemsWithStores(ctx context.Context) ([]models.ItemWithStores, error) {
	return nil, nil
}

func (s *stubItemRepo) GetItemsWithStoresCustomSQL(ctx context.Context) ([]models.ItemWithStores, error) {
	return nil, nil
}

func (s *stubItemRepo) GetPaginatedItems(ctx context.Context, page, limit int) (models.PagedItems, error) {
	s.pagedPage, s.pagedLimit = page, limit
	return s.pagedResult, nil
}

func (s *stubItemRepo) GetPaginatedItemsCustomSQL(ctx context.Context, page, limit int) (models.PagedItems, error) {
	s.pagedPage, s.pagedLimit = page, limit
	return s.pagedResult, nil
}

func apiError(t *testing.T, err error) *models.APIError {
	t.Helper()
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *models.APIError, got %T: %v", err, err)
	}
	return apiErr
}

func TestCreateItem_RequiresName(t *testing.T) {
	svc := &ItemService{ItemRepo: &stubItemRepo{}}

	for _, name := range []string{"", "   "} {
		_, err := svc.CreateItem(context.Background(), name, "", 1)
		apiErr := apiError(t, err)
		if apiErr.Status != http.StatusBadRequest || apiErr.Code != models.CodeValidation {
			t.Errorf("name %q: got status %d code %d", name, apiErr.Status, apiErr.Code)
		}
	}
}

func TestCreateItem_RepoFailure(t *testing.T) {
	svc := &ItemService{ItemRepo: &stubItemRepo{createErr: errors.New("db down")}}

	_, err := svc.CreateItem(context.Background(), "Widget", "", 1)
	apiErr := apiError(t, err)
	if apiErr.Status != http.StatusInternalServerError || apiErr.Code != models.CodeItemCreateFailed {
		t.Errorf("got status %d code %d", apiErr.Status, apiErr.Code)
	}
}

func TestGetItemByID_NotFound(t *testing.T) {
	svc := &ItemService{ItemRepo: &stubItemRepo{items: map[int]models.Item{}}}

	_, err := svc.GetItemByID(context.Background(), 42)
	apiErr := apiError(t, err)
	if apiErr.Status != http.StatusNotFound || apiErr.Code != models.CodeItemNotFound {
		t.Errorf("got status %d code %d", apiErr.Status, apiErr.Code)
	}
}

func TestUpdateItem_OwnerOnly(t *testing.T) {
	repo := &stubItemRepo{items: map[int]models.Item{
		7: {ID: 7, Name: "Widget", UserID: 1},
	}}
	svc := &ItemService{ItemRepo: repo}

	name := "Stolen"
	_, err := svc.UpdateItem(context.Background(), 7, 2, &name, nil)
	apiErr := apiError(t, err)
	if apiErr.Status != http.StatusForbidden || apiErr.Code != models.CodeForbidden {
		t.Errorf("got status %d code %d", apiErr.Status, apiErr.Code)
	}
	if repo.updateCalls != 0 {
		t.Errorf("a rejected update must never reach the repository")
	}
	if repo.items[7].Name != "Widget" {
		t.Errorf("item changed despite ownership rejection")
	}
}

func TestUpdateItem_NoFieldsIsNoOp(t *testing.T) {
	repo := &stubItemRepo{items: map[int]models.Item{
		7: {ID: 7, Name: "Widget", UserID: 1},
	}}
	svc := &ItemService{ItemRepo: repo}

	item, err := svc.UpdateItem(context.Background(), 7, 1, nil, nil)
	if err != nil {
		t.Fatalf("empty update must succeed, got %v", err)
	}
	if item.Name != "Widget" {
		t.Errorf("expected unchanged item, got %+v", item)
	}
	if repo.updateCalls != 0 {
		t.Errorf("empty update must not write")
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	svc := &ItemService{ItemRepo: &stubItemRepo{items: map[int]models.Item{}}}

	name := "x"
	_, err := svc.UpdateItem(context.Background(), 42, 1, &name, nil)
	apiErr := apiError(t, err)
	if apiErr.Status != http.StatusNotFound || apiErr.Code != models.CodeItemNotFound {
		t.Errorf("got status %d code %d", apiErr.Status, apiErr.Code)
	}
}

func TestUpdateItem_GoneBetweenCheckAndWrite(t *testing.T) {
	repo := &stubItemRepo{
		items:     map[int]models.Item{7: {ID: 7, Name: "Widget", UserID: 1}},
		updateErr: models.ErrItemNotFound,
	}
	svc := &ItemService{ItemRepo: repo}

	name := "x"
	_, err := svc.UpdateItem(context.Background(), 7, 1, &name, nil)
	apiErr := apiError(t, err)
	if apiErr.Status != http.StatusNotFound || apiErr.Code != models.CodeItemUpdateFailed {
		t.Errorf("got status %d code %d", apiErr.Status, apiErr.Code)
	}
}

func TestDeleteItem(t *testing.T) {
	repo := &stubItemRepo{items: map[int]models.Item{
		7: {ID: 7, Name: "Widget", UserID: 1},
	}}
	svc := &ItemService{ItemRepo: repo}

	_, err := svc.DeleteItem(context.Background(), 7, 2)
	apiErr := apiError(t, err)
	if apiErr.Status != http.StatusForbidden || apiErr.Code != models.CodeForbidden {
		t.Errorf("non-owner delete: got status %d code %d", apiErr.Status, apiErr.Code)
	}
	if _, ok := repo.items[7]; !ok {
		t.Fatalf("item deleted despite ownership rejection")
	}

	msg, err := svc.DeleteItem(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if msg != "Item deleted successfully." {
		t.Errorf("unexpected confirmation %q", msg)
	}

	_, err = svc.DeleteItem(context.Background(), 7, 1)
	apiErr = apiError(t, err)
	if apiErr.Status != http.StatusNotFound || apiErr.Code != models.CodeItemNotFound {
		t.Errorf("second delete: got status %d code %d", apiErr.Status, apiErr.Code)
	}
}

func TestGetPaginatedItems_ClampsParameters(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"negative page", -3, 10, 1, 10},
		{"zero page", 0, 5, 1, 5},
		{"zero limit", 2, 0, 2, 10},
		{"negative limit", 1, -1, 1, 10},
		{"valid passthrough", 3, 25, 3, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubItemRepo{}
			svc := &ItemService{ItemRepo: repo}

			if _, err := svc.GetPaginatedItems(context.Background(), tt.page, tt.limit); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.pagedPage != tt.wantPage || repo.pagedLimit != tt.wantLimit {
				t.Errorf("repo saw page=%d limit=%d, want page=%d limit=%d",
					repo.pagedPage, repo.pagedLimit, tt.wantPage, tt.wantLimit)
			}

			if _, err := svc.GetPaginatedItemsCustomSQL(context.Background(), tt.page, tt.limit); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.pagedPage != tt.wantPage || repo.pagedLimit != tt.wantLimit {
				t.Errorf("custom sql repo saw page=%d limit=%d, want page=%d limit=%d",
					repo.pagedPage, repo.pagedLimit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}
