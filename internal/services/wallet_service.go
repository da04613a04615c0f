package services

import (
	"context"

	"github.com/baharkarakas/minivenmo/internal/models"
	repo "github.com/baharkarakas/minivenmo/internal/repository"
)

type WalletService struct{ store repo.Store }

func NewWalletService(s repo.Store) *WalletService { return &WalletService{store: s} }

// Current returns the wallet owned by userID.
func (s *WalletService) Current(ctx context.Context, userID string) (models.Wallet, error) {
	repos := s.store.Repos()
	if _, err := repos.Users.GetByID(ctx, userID); err != nil {
		return models.Wallet{}, err
	}
	return repos.Wallets.GetByUserID(ctx, userID)
}
