package models

// InitializeProfileRequest is the body for POST /users/initialize. Identity
// comes from the verified token; the client only supplies its timezone.
type InitializeProfileRequest struct {
	Timezone string `json:"timezone,omitempty"`
}

// RecordCheckInRequest is the body for POST /checkins.
type RecordCheckInRequest struct {
	Day      int       `json:"day" binding:"required"`
	Tasks    TaskFlags `json:"tasks"`
	PhotoRef string    `json:"photoRef,omitempty"` // opaque payload reference, storage is external
	VideoRef string    `json:"videoRef,omitempty"`
}

// CreateGroupRequest is the body for POST /groups.
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// JoinGroupRequest is the body for POST /groups/join.
type JoinGroupRequest struct {
	Code string `json:"code" binding:"required"`
}

// ToggleReactionRequest is the body for POST /reactions.
type ToggleReactionRequest struct {
	TargetUserID string `json:"targetUserId" binding:"required"`
	Day          int    `json:"day" binding:"required"`
	Emoji        string `json:"emoji" binding:"required"`
}
