package sqlite

import (
	"context"
	"fmt"

	"github.com/baharkarakas/minivenmo/internal/models"
	repo "github.com/baharkarakas/minivenmo/internal/repository"
)

type friendshipsRepo struct{ q dbtx }

func (r *friendshipsRepo) Exists(ctx context.Context, userID, friendID string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM friendships WHERE user_id = ? AND friend_id = ?)",
		userID, friendID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}
	return exists, nil
}

func (r *friendshipsRepo) Create(ctx context.Context, f *models.Friendship) error {
	res, err := r.q.ExecContext(ctx,
		"INSERT INTO friendships (user_id, friend_id, created_at) VALUES (?, ?, ?)",
		f.UserID, f.FriendID, toUnix(f.CreatedAt),
	)
	if isUniqueViolation(err) {
		return repo.ErrDuplicateEdge
	}
	if err != nil {
		return fmt.Errorf("failed to insert friendship: %w", err)
	}
	if f.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read friendship id: %w", err)
	}
	return nil
}

func (r *friendshipsRepo) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT friend_id FROM friendships WHERE user_id = ? ORDER BY created_at, id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}
	return out, nil
}
