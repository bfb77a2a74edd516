package models

import (
	"fmt"
	"time"
)

// Reaction is a single emoji response to another user's check-in, stored at
// reactions/{targetUserId}_{day}_{reactorUserId}. The key carries no emoji
// component, so a reactor holds at most one live reaction per target and day.
// Removed reactions are tombstoned via Deleted, never erased.
type Reaction struct {
	ID           string    `json:"id" firestore:"-"` // document ID, "{targetUserId}_{day}_{reactorUserId}"
	UserID       string    `json:"userId" firestore:"userId"` // the reactor
	TargetUserID string    `json:"targetUserId" firestore:"targetUserId"`
	Day          int       `json:"day" firestore:"day"`
	Emoji        string    `json:"emoji" firestore:"emoji"`
	Deleted      bool      `json:"deleted,omitempty" firestore:"deleted"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}

// ReactionKey builds the reaction document ID. The format is shared with
// existing stored data and must not change.
func ReactionKey(targetUserID string, day int, reactorUserID string) string {
	return fmt.Sprintf("%s_%d_%s", targetUserID, day, reactorUserID)
}
