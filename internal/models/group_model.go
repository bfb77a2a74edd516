package models

import "time"

// GroupCodeLength is the length of a group invite code.
const GroupCodeLength = 6

// Group is a cohort of users sharing a feed, stored at groups/{code}.
// The 6-character uppercase base-36 invite code is the document ID.
type Group struct {
	Code      string    `json:"code" firestore:"-"` // document ID
	Name      string    `json:"name" firestore:"name"`
	Members   []string  `json:"members" firestore:"members"` // user IDs, set semantics, order irrelevant
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
