package models

import "time"

// ChallengeLength is the number of days in the challenge.
const ChallengeLength = 75

// User represents a participant in the challenge.
type User struct {
	ID         string    `json:"id" firestore:"-"` // Firebase Auth UID, used as the document ID
	Name       string    `json:"name" firestore:"name"`
	Email      string    `json:"email" firestore:"email"`
	GroupCode  string    `json:"groupCode" firestore:"groupCode"` // empty when the user has no group
	CurrentDay int       `json:"currentDay" firestore:"currentDay"`
	Streak     int       `json:"streak" firestore:"streak"`
	Badges     []BadgeID `json:"badges" firestore:"badges"`
	Timezone   string    `json:"timezone" firestore:"timezone"` // IANA zone name, e.g. "America/Chicago"
	CreatedAt  time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// HasBadge reports whether the user already holds the given badge.
func (u *User) HasBadge(b BadgeID) bool {
	for _, have := range u.Badges {
		if have == b {
			return true
		}
	}
	return false
}
