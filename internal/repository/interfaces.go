package repository

import (
	"context"

	"github.com/baharkarakas/minivenmo/internal/models"
)

type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type Wallets interface {
	Create(ctx context.Context, w *models.Wallet) error
	GetByUserID(ctx context.Context, userID string) (models.Wallet, error)
	// GetForUpdate reads the wallet and holds it against concurrent writers until the tx ends.
	GetForUpdate(ctx context.Context, userID string) (models.Wallet, error)
	Update(ctx context.Context, w models.Wallet) error
}

type Friendships interface {
	Exists(ctx context.Context, userID, friendID string) (bool, error)
	// Create inserts one directed edge. A duplicate edge returns ErrDuplicateEdge.
	Create(ctx context.Context, f *models.Friendship) error
	FriendIDs(ctx context.Context, userID string) ([]string, error)
}

type Activities interface {
	Create(ctx context.Context, a *models.Activity) error
	// ListInvolving returns activities whose actor or target is in userIDs, newest first.
	ListInvolving(ctx context.Context, userIDs []string) ([]models.ActivityView, error)
	ListAll(ctx context.Context) ([]models.ActivityView, error)
}

type Repositories struct {
	Users       Users
	Wallets     Wallets
	Friendships Friendships
	Activities  Activities
}

// Store is the storage handle passed to every service.
type Store interface {
	Repos() Repositories
	// WithTx runs fn in one transaction; repositories passed to fn are bound to it.
	// fn returning an error rolls everything back.
	WithTx(ctx context.Context, fn func(Repositories) error) error
	Ping(ctx context.Context) error
	Close() error
}
