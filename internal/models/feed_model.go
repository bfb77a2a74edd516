package models

import (
	"fmt"
	"time"
)

// FeedEntryTypeCheckIn is the only feed entry type currently emitted.
const FeedEntryTypeCheckIn = "checkin"

// FeedEntry records one user's completed check-in in their group's feed,
// stored at groups/{code}/feed/{userId}_{day}. The key guarantees at most
// one entry per user per day.
type FeedEntry struct {
	ID        string    `json:"id" firestore:"-"` // document ID, "{userId}_{day}"
	UserID    string    `json:"userId" firestore:"userId"`
	Day       int       `json:"day" firestore:"day"`
	Type      string    `json:"type" firestore:"type"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}

// FeedEntryKey builds the feed document ID for a user and day. The format is
// shared with existing stored data and must not change.
func FeedEntryKey(userID string, day int) string {
	return fmt.Sprintf("%s_%d", userID, day)
}
