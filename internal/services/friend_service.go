package services

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/baharkarakas/minivenmo/internal/events"
	"github.com/baharkarakas/minivenmo/internal/metrics"
	"github.com/baharkarakas/minivenmo/internal/models"
	repo "github.com/baharkarakas/minivenmo/internal/repository"
	"github.com/baharkarakas/minivenmo/internal/worker"
)

type FriendService struct {
	store  repo.Store
	notify notifier
}

func NewFriendService(s repo.Store, pub events.Publisher, wp *worker.Pool) *FriendService {
	return &FriendService{store: s, notify: notifier{pub: pub, wp: wp}}
}

// AddFriend makes userID and friendID mutual friends. It reports false without
// writing anything when they already are, or when userID == friendID.
func (s *FriendService) AddFriend(ctx context.Context, userID, friendID string) (bool, error) {
	ctx, span := tracer.Start(ctx, "friends.add", trace.WithAttributes(
		attribute.String("user_id", userID),
		attribute.String("friend_id", friendID),
	))
	defer span.End()

	users := s.store.Repos().Users
	if _, err := users.GetByID(ctx, userID); err != nil {
		fail(span, "add friend", err, "user_id", userID)
		return false, err
	}
	if _, err := users.GetByID(ctx, friendID); err != nil {
		fail(span, "add friend", err, "friend_id", friendID)
		return false, err
	}
	if userID == friendID {
		return false, nil
	}

	var (
		created bool
		act     *models.Activity
	)
	err := s.store.WithTx(ctx, func(r repo.Repositories) error {
		exists, err := r.Friendships.Exists(ctx, userID, friendID)
		if err != nil || exists {
			return err
		}
		for _, f := range models.NewFriendshipPair(userID, friendID) {
			if err := r.Friendships.Create(ctx, &f); err != nil {
				return err
			}
		}
		act = models.NewFriendshipActivity(userID, friendID)
		if err := r.Activities.Create(ctx, act); err != nil {
			return err
		}
		created = true
		return nil
	})
	if errors.Is(err, repo.ErrDuplicateEdge) {
		// a concurrent request inserted the pair first
		return false, nil
	}
	if err != nil {
		fail(span, "add friend", err, "user_id", userID, "friend_id", friendID)
		return false, err
	}
	if !created {
		return false, nil
	}

	metrics.FriendshipsTotal.Inc()
	slog.Info("friendship created", "user_id", userID, "friend_id", friendID)
	s.notify.activity(*act)
	return true, nil
}

// Friends lists the direct friends of userID.
func (s *FriendService) Friends(ctx context.Context, userID string) ([]models.User, error) {
	repos := s.store.Repos()
	if _, err := repos.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := repos.Friendships.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	return repos.Users.GetByIDs(ctx, ids)
}
