package services

import (
	"context"

	"github.com/baharkarakas/minivenmo/internal/models"
	repo "github.com/baharkarakas/minivenmo/internal/repository"
)

type FeedService struct{ store repo.Store }

func NewFeedService(s repo.Store) *FeedService { return &FeedService{store: s} }

// Activity is the personal feed of userID: every activity it acted in or was the target of.
func (s *FeedService) Activity(ctx context.Context, userID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "feed.activity")
	defer span.End()

	repos := s.store.Repos()
	if _, err := repos.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	views, err := repos.Activities.ListInvolving(ctx, []string{userID})
	if err != nil {
		fail(span, "activity feed", err, "user_id", userID)
		return nil, err
	}
	return RenderAll(views), nil
}

// Feed is the social feed: userID plus its direct friends, or everything when userID is empty.
func (s *FeedService) Feed(ctx context.Context, userID string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "feed.social")
	defer span.End()

	repos := s.store.Repos()
	var (
		views []models.ActivityView
		err   error
	)
	if userID == "" {
		views, err = repos.Activities.ListAll(ctx)
	} else {
		var ids []string
		ids, err = repos.Friendships.FriendIDs(ctx, userID)
		if err == nil {
			views, err = repos.Activities.ListInvolving(ctx, append(ids, userID))
		}
	}
	if err != nil {
		fail(span, "social feed", err, "user_id", userID)
		return nil, err
	}
	return RenderAll(views), nil
}
