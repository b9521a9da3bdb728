package repositories

import (
	"context"
	"database/sql"
	"strings"

	"itemBack/internal/models"
)

type ItemStoreRepository struct {
	DB *sql.DB
}

func (r *ItemStoreRepository) CreateStore(ctx context.Context, store models.ItemStore) (models.ItemStore, error) {
	query := `
		INSERT INTO item_stores (item_id, store_name, price, stock, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query, store.ItemID, store.StoreName, store.Price, store.Stock)
	if err != nil {
		return models.ItemStore{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.ItemStore{}, err
	}
	return r.GetStoreByID(ctx, int(id))
}

func (r *ItemStoreRepository) GetStoreByID(ctx context.Context, id int) (models.ItemStore, error) {
	var store models.ItemStore
	query := `SELECT id, item_id, store_name, price, stock, created_at, updated_at FROM item_stores WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&store.ID, &store.ItemID, &store.StoreName, &store.Price, &store.Stock,
		&store.CreatedAt, &store.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.ItemStore{}, models.ErrStoreNotFound
	}
	if err != nil {
		return models.ItemStore{}, err
	}
	return store, nil
}

func (r *ItemStoreRepository) GetStoresByItemID(ctx context.Context, itemID int) ([]models.ItemStore, error) {
	query := `
		SELECT id, item_id, store_name, price, stock, created_at, updated_at
		FROM item_stores
		WHERE item_id = ?
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := make([]models.ItemStore, 0)
	for rows.Next() {
		var store models.ItemStore
		if err := rows.Scan(
			&store.ID, &store.ItemID, &store.StoreName, &store.Price, &store.Stock,
			&store.CreatedAt, &store.UpdatedAt,
		); err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *ItemStoreRepository) UpdateStore(ctx context.Context, id int, storeName *string, price *float64, stock *int) (models.ItemStore, error) {
	var (
		sets   []string
		params []interface{}
	)

	if storeName != nil {
		sets = append(sets, "store_name = ?")
		params = append(params, *storeName)
	}
	if price != nil {
		sets = append(sets, "price = ?")
		params = append(params, *price)
	}
	if stock != nil {
		sets = append(sets, "stock = ?")
		params = append(params, *stock)
	}
	if len(sets) == 0 {
		return r.GetStoreByID(ctx, id)
	}

	sets = append(sets, "updated_at = NOW()")
	query := "UPDATE item_stores SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	params = append(params, id)

	if _, err := r.DB.ExecContext(ctx, query, params...); err != nil {
		return models.ItemStore{}, err
	}
	return r.GetStoreByID(ctx, id)
}

func (r *ItemStoreRepository) DeleteStore(ctx context.Context, id int) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM item_stores WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
