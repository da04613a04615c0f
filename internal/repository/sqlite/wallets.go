package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/baharkarakas/minivenmo/internal/models"
)

type walletsRepo struct{ q dbtx }

func (r *walletsRepo) Create(ctx context.Context, w *models.Wallet) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO wallets (id, user_id, balance, credit, credit_limit, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.UserID, w.Balance.String(), w.Credit.String(), w.CreditLimit.String(),
		toUnix(w.CreatedAt), toUnix(w.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert wallet: %w", err)
	}
	return nil
}

func (r *walletsRepo) GetByUserID(ctx context.Context, userID string) (models.Wallet, error) {
	var (
		w                models.Wallet
		created, updated int64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT id, user_id, balance, credit, credit_limit, created_at, updated_at
		   FROM wallets WHERE user_id = ?`, userID,
	).Scan(&w.ID, &w.UserID, &w.Balance, &w.Credit, &w.CreditLimit, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Wallet{}, models.ErrMissingWallet
	}
	if err != nil {
		return models.Wallet{}, fmt.Errorf("failed to get wallet: %w", err)
	}
	w.CreatedAt = fromUnix(created)
	w.UpdatedAt = fromUnix(updated)
	return w, nil
}

// GetForUpdate needs no row lock: the store's single connection already serializes transactions.
func (r *walletsRepo) GetForUpdate(ctx context.Context, userID string) (models.Wallet, error) {
	return r.GetByUserID(ctx, userID)
}

func (r *walletsRepo) Update(ctx context.Context, w models.Wallet) error {
	res, err := r.q.ExecContext(ctx,
		"UPDATE wallets SET balance = ?, credit = ?, updated_at = ? WHERE id = ?",
		w.Balance.String(), w.Credit.String(), toUnix(w.UpdatedAt), w.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	if n == 0 {
		return models.ErrMissingWallet
	}
	return nil
}
