package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"itemBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `INSERT INTO users (username, password, created_at, updated_at) VALUES (?, ?, NOW(), NOW())`
	result, err := r.DB.ExecContext(ctx, query, user.Username, user.Password)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return r.GetUserByID(ctx, int(id))
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	query := `SELECT id, username, password, created_at, updated_at FROM users WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	query := `SELECT id, username, password, created_at, updated_at FROM users WHERE username = ?`
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
