package postgres

import (
	"context"
	"fmt"

	"github.com/baharkarakas/minivenmo/internal/models"
	repo "github.com/baharkarakas/minivenmo/internal/repository"
)

type friendshipsRepo struct{ q querier }

func (r *friendshipsRepo) Exists(ctx context.Context, userID, friendID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM friendships WHERE user_id=$1 AND friend_id=$2)`,
		userID, friendID,
	).Scan(&exists)
	return exists, err
}

func (r *friendshipsRepo) Create(ctx context.Context, f *models.Friendship) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO friendships(user_id, friend_id, created_at) VALUES($1,$2,$3) RETURNING id`,
		f.UserID, f.FriendID, f.CreatedAt,
	).Scan(&f.ID)
	if isUniqueViolation(err) {
		return repo.ErrDuplicateEdge
	}
	if err != nil {
		return fmt.Errorf("insert friendship: %w", err)
	}
	return nil
}

func (r *friendshipsRepo) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT friend_id FROM friendships WHERE user_id=$1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
