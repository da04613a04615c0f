package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/baharkarakas/minivenmo/internal/models"
	repo "github.com/baharkarakas/minivenmo/internal/repository"
)

type UserService struct {
	store repo.Store
}

func NewUserService(s repo.Store) *UserService { return &UserService{store: s} }

// Create opens an account: one user and its wallet, written together.
func (s *UserService) Create(ctx context.Context, name string, initialBalance, creditLimit decimal.Decimal) (models.User, error) {
	ctx, span := tracer.Start(ctx, "users.create", trace.WithAttributes(attribute.String("name", name)))
	defer span.End()

	u := models.User{Name: name}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	w, err := models.NewWallet("", initialBalance, creditLimit)
	if err != nil {
		return models.User{}, err
	}

	err = s.store.WithTx(ctx, func(r repo.Repositories) error {
		if err := r.Users.Create(ctx, &u); err != nil {
			return err
		}
		w.UserID = u.ID
		return r.Wallets.Create(ctx, w)
	})
	if err != nil {
		fail(span, "create user", err, "name", u.Name)
		return models.User{}, err
	}
	u.Wallet = w
	return u, nil
}

// Get returns the user with its wallet. A user without a wallet is returned with Wallet nil.
func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	repos := s.store.Repos()
	u, err := repos.Users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	w, err := repos.Wallets.GetByUserID(ctx, id)
	switch {
	case err == nil:
		u.Wallet = &w
	case !errors.Is(err, models.ErrMissingWallet):
		return models.User{}, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.Repos().Users.List(ctx)
}
