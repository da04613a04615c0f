// Package events publishes recorded activities to external consumers.
package events

import (
	"context"
	"time"

	"github.com/baharkarakas/minivenmo/internal/models"
)

// Publisher delivers activity events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, ev ActivityEvent) error
	Close() error
}

// ActivityEvent is the wire form of a recorded activity.
type ActivityEvent struct {
	EventType   string    `json:"eventType"`
	ActivityID  int64     `json:"activityId"`
	ActorID     string    `json:"actorId"`
	TargetID    string    `json:"targetId,omitempty"`
	Amount      string    `json:"amount,omitempty"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

func FromActivity(a models.Activity) ActivityEvent {
	ev := ActivityEvent{
		EventType:  "activity." + string(a.Type),
		ActivityID: a.ID,
		ActorID:    a.ActorID,
		Timestamp:  a.CreatedAt,
	}
	if a.TargetID != nil {
		ev.TargetID = *a.TargetID
	}
	if a.Amount != nil {
		ev.Amount = a.Amount.StringFixed(2)
	}
	if a.Description != nil {
		ev.Description = *a.Description
	}
	return ev
}

// RoutingKey is the topic key the event is published under.
func (e ActivityEvent) RoutingKey() string { return e.EventType }
