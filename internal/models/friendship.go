package models

import "time"

// Friendship is one directed edge. A mutual friendship is stored as two edges.
type Friendship struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	FriendID  string    `json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFriendshipPair returns both directed edges between a and b.
func NewFriendshipPair(a, b string) [2]Friendship {
	now := time.Now().UTC()
	return [2]Friendship{
		{UserID: a, FriendID: b, CreatedAt: now},
		{UserID: b, FriendID: a, CreatedAt: now},
	}
}
