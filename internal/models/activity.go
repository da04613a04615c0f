package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ActivityType string

const (
	ActivityPayment    ActivityType = "payment"
	ActivityFriendship ActivityType = "friendship"
)

// Activity is append-only. Feeds order by (CreatedAt, ID) descending.
type Activity struct {
	ID          int64            `json:"id"`
	Type        ActivityType     `json:"type"`
	ActorID     string           `json:"actor_id"`
	TargetID    *string          `json:"target_id,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ActivityView is an Activity with the names needed to render it.
type ActivityView struct {
	Activity
	ActorName  string
	TargetName string
}

func NewPaymentActivity(payerID, payeeID string, amount decimal.Decimal, description string) *Activity {
	return &Activity{
		Type:        ActivityPayment,
		ActorID:     payerID,
		TargetID:    &payeeID,
		Amount:      &amount,
		Description: &description,
		CreatedAt:   time.Now().UTC(),
	}
}

func NewFriendshipActivity(userID, friendID string) *Activity {
	return &Activity{
		Type:      ActivityFriendship,
		ActorID:   userID,
		TargetID:  &friendID,
		CreatedAt: time.Now().UTC(),
	}
}
