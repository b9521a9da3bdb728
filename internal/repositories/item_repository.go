package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"itemBack/internal/models"
)

type ItemRepository struct {
	DB *sql.DB
}

func (r *ItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	query := `INSERT INTO items (name, description, user_id, created_at, updated_at) VALUES (?, ?, ?, NOW(), NOW())`
	result, err := r.DB.ExecContext(ctx, query, item.Name, item.Description, item.UserID)
	if err != nil {
		return models.Item{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Item{}, err
	}
	return r.GetItemByID(ctx, int(id))
}

func (r *ItemRepository) GetItems(ctx context.Context) ([]models.Item, error) {
	query := `
		SELECT id, name, description, user_id, created_at, updated_at
		FROM items
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.UserID,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, id int) (models.Item, error) {
	var item models.Item
	query := `SELECT id, name, description, user_id, created_at, updated_at FROM items WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.UserID,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// GetItemByUserAndID checks existence and ownership in a single query.
func (r *ItemRepository) GetItemByUserAndID(ctx context.Context, userID, id int) (models.Item, error) {
	var item models.Item
	query := `SELECT id, name, description, user_id, created_at, updated_at FROM items WHERE id = ? AND user_id = ?`
	err := r.DB.QueryRowContext(ctx, query, id, userID).Scan(
		&item.ID, &item.Name, &item.Description, &item.UserID,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Item{}, models.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// UpdateItem applies a partial update: nil fields are left untouched.
// updated_at is refreshed on every real write. With no fields supplied the
// current row is returned unchanged.
func (r *ItemRepository) UpdateItem(ctx context.Context, id int, name, description *string) (models.Item, error) {
	var (
		sets   []string
		params []interface{}
	)

	if name != nil {
		sets = append(sets, "name = ?")
		params = append(params, *name)
	}
	if description != nil {
		sets = append(sets, "description = ?")
		params = append(params, *description)
	}
	if len(sets) == 0 {
		return r.GetItemByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	query := "UPDATE items SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	params = append(params, id)

	result, err := r.DB.ExecContext(ctx, query, params...)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Item{}, err
	}
	if rowsAffected == 0 {
		// Either the row is gone or the write was a same-value no-op;
		// the follow-up read distinguishes the two.
		return r.GetItemByID(ctx, id)
	}
	return r.GetItemByID(ctx, id)
}

// DeleteItem reports whether a row was actually removed.
func (r *ItemRepository) DeleteItem(ctx context.Context, id int) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// GetItemsWithStores eager-loads store listings in two round-trips: one items
// query, one item_stores query, grouped in memory. Every item appears exactly
// once, with an empty slice when it has no listings.
func (r *ItemRepository) GetItemsWithStores(ctx context.Context) ([]models.ItemWithStores, error) {
	items, err := r.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.ItemWithStores, 0, len(items))
	index := make(map[int]int, len(items))
	for i, item := range items {
		result = append(result, models.ItemWithStores{Item: item, Stores: []models.ItemStore{}})
		index[item.ID] = i
	}
	if len(items) == 0 {
		return result, nil
	}

	query := `
		SELECT id, item_id, store_name, price, stock, created_at, updated_at
		FROM item_stores
		ORDER BY item_id, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var store models.ItemStore
		if err := rows.Scan(
			&store.ID, &store.ItemID, &store.StoreName, &store.Price, &store.Stock,
			&store.CreatedAt, &store.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if i, ok := index[store.ItemID]; ok {
			result[i].Stores = append(result[i].Stores, store)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetItemsWithStoresCustomSQL produces the same logical result as
// GetItemsWithStores in a single round-trip, nesting listings through a JSON
// array aggregation subquery.
func (r *ItemRepository) GetItemsWithStoresCustomSQL(ctx context.Context) ([]models.ItemWithStores, error) {
	query := `
		SELECT
			i.id, i.name, i.description, i.user_id, i.created_at, i.updated_at,
			COALESCE(
				(
					SELECT JSON_ARRAYAGG(
						JSON_OBJECT(
							'id', ist.id,
							'item_id', ist.item_id,
							'store_name', ist.store_name,
							'price', ist.price,
							'stock', ist.stock,
							'created_at', DATE_FORMAT(ist.created_at, '%Y-%m-%dT%H:%i:%sZ'),
							'updated_at', DATE_FORMAT(ist.updated_at, '%Y-%m-%dT%H:%i:%sZ')
						)
					)
					FROM (
						SELECT * FROM item_stores st
						WHERE st.item_id = i.id
						ORDER BY st.id
					) ist
				),
				JSON_ARRAY()
			) AS stores
		FROM items i
		ORDER BY i.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]models.ItemWithStores, 0)
	for rows.Next() {
		var (
			item       models.ItemWithStores
			storesJSON []byte
		)
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.UserID,
			&item.CreatedAt, &item.UpdatedAt, &storesJSON,
		); err != nil {
			return nil, err
		}
		item.Stores = []models.ItemStore{}
		if len(storesJSON) > 0 {
			if err := json.Unmarshal(storesJSON, &item.Stores); err != nil {
				return nil, err
			}
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetPaginatedItems pages through the full items relation: a COUNT query for
// the total followed by a LIMIT/OFFSET read. A page past the end yields an
// empty items slice, not an error.
func (r *ItemRepository) GetPaginatedItems(ctx context.Context, page, limit int) (models.PagedItems, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&total); err != nil {
		return models.PagedItems{}, err
	}

	offset := (page - 1) * limit
	query := `
		SELECT id, name, description, user_id, created_at, updated_at
		FROM items
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return models.PagedItems{}, err
	}
	defer rows.Close()

	items := make([]models.Item, 0, limit)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.UserID,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return models.PagedItems{}, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return models.PagedItems{}, err
	}

	return models.PagedItems{
		Items:       items,
		TotalItems:  total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
	}, nil
}

// GetPaginatedItemsCustomSQL is the single round-trip variant: the total
// rides along on every row via a window function. An empty page falls back to
// a COUNT query so the metadata stays correct.
func (r *ItemRepository) GetPaginatedItemsCustomSQL(ctx context.Context, page, limit int) (models.PagedItems, error) {
	offset := (page - 1) * limit
	query := `
		SELECT id, name, description, user_id, created_at, updated_at,
		       COUNT(*) OVER() AS total_items
		FROM items
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return models.PagedItems{}, err
	}
	defer rows.Close()

	var total int
	items := make([]models.Item, 0, limit)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.UserID,
			&item.CreatedAt, &item.UpdatedAt, &total,
		); err != nil {
			return models.PagedItems{}, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return models.PagedItems{}, err
	}

	if len(items) == 0 {
		if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&total); err != nil {
			return models.PagedItems{}, err
		}
	}

	return models.PagedItems{
		Items:       items,
		TotalItems:  total,
		TotalPages:  totalPages(total, limit),
		CurrentPage: page,
	}, nil
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
