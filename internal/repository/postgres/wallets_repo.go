package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/minivenmo/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type walletsRepo struct{ q querier }

const walletCols = `id, user_id, balance, credit, credit_limit, created_at, updated_at`

func (r *walletsRepo) Create(ctx context.Context, w *models.Wallet) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO wallets(`+walletCols+`) VALUES($1,$2,$3,$4,$5,$6,$7)`,
		w.ID, w.UserID, w.Balance, w.Credit, w.CreditLimit, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

func (r *walletsRepo) GetByUserID(ctx context.Context, userID string) (models.Wallet, error) {
	return r.get(ctx, `SELECT `+walletCols+` FROM wallets WHERE user_id=$1`, userID)
}

func (r *walletsRepo) GetForUpdate(ctx context.Context, userID string) (models.Wallet, error) {
	return r.get(ctx, `SELECT `+walletCols+` FROM wallets WHERE user_id=$1 FOR UPDATE`, userID)
}

func (r *walletsRepo) get(ctx context.Context, q, userID string) (models.Wallet, error) {
	var w models.Wallet
	err := r.q.QueryRow(ctx, q, userID).Scan(
		&w.ID, &w.UserID, &w.Balance, &w.Credit, &w.CreditLimit, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Wallet{}, models.ErrMissingWallet
	}
	if err != nil {
		return models.Wallet{}, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

func (r *walletsRepo) Update(ctx context.Context, w models.Wallet) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE wallets
		    SET balance = $2,
		        credit = $3,
		        updated_at = $4
		  WHERE id = $1`,
		w.ID, w.Balance, w.Credit, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrMissingWallet
	}
	return nil
}
