// internal/repository/postgres/users_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/minivenmo/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type usersRepo struct{ q querier }

func (r *usersRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	err := r.q.QueryRow(ctx,
		`INSERT INTO users(id, name) VALUES($1,$2) RETURNING created_at`,
		u.ID, u.Name,
	).Scan(&u.CreatedAt)
	if isUniqueViolation(err) {
		return models.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := r.q.QueryRow(ctx,
		`SELECT id, name, created_at FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Name, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *usersRepo) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(ctx,
		`SELECT id, name, created_at FROM users WHERE id = ANY($1) ORDER BY name`, ids)
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	return r.list(ctx, `SELECT id, name, created_at FROM users ORDER BY created_at DESC`)
}

func (r *usersRepo) list(ctx context.Context, q string, args ...any) ([]models.User, error) {
	rows, err := r.q.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
