package models

import "time"

// TaskFlags holds the five daily task completion flags of a check-in.
type TaskFlags struct {
	WorkoutsDone bool `json:"workoutsDone" firestore:"workoutsDone"`
	FollowedDiet bool `json:"followedDiet" firestore:"followedDiet"`
	NoAlcohol    bool `json:"noAlcohol" firestore:"noAlcohol"`
	ReadTenPages bool `json:"readTenPages" firestore:"readTenPages"`
	TookPhoto    bool `json:"tookPhoto" firestore:"tookPhoto"`
}

// AllComplete reports whether every task of the day was done. Only fully
// complete days count toward the streak.
func (f TaskFlags) AllComplete() bool {
	return f.WorkoutsDone && f.FollowedDiet && f.NoAlcohol && f.ReadTenPages && f.TookPhoto
}

// CheckIn is one day's submission, stored at users/{uid}/checkIns/{day}.
// The day number is the document ID. Documents are overwritten on
// re-submission; only PhotoIsPublic changes after creation.
type CheckIn struct {
	Day           int       `json:"day" firestore:"-"` // document ID, decimal day string
	WorkoutsDone  bool      `json:"workoutsDone" firestore:"workoutsDone"`
	FollowedDiet  bool      `json:"followedDiet" firestore:"followedDiet"`
	NoAlcohol     bool      `json:"noAlcohol" firestore:"noAlcohol"`
	ReadTenPages  bool      `json:"readTenPages" firestore:"readTenPages"`
	TookPhoto     bool      `json:"tookPhoto" firestore:"tookPhoto"`
	PhotoURL      string    `json:"photoUrl,omitempty" firestore:"photoUrl"`
	PhotoIsPublic bool      `json:"photoIsPublic" firestore:"photoIsPublic"`
	VideoURL      string    `json:"videoUrl,omitempty" firestore:"videoUrl"`
	Timestamp     time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}

// Flags returns the task flags of the check-in.
func (c *CheckIn) Flags() TaskFlags {
	return TaskFlags{
		WorkoutsDone: c.WorkoutsDone,
		FollowedDiet: c.FollowedDiet,
		NoAlcohol:    c.NoAlcohol,
		ReadTenPages: c.ReadTenPages,
		TookPhoto:    c.TookPhoto,
	}
}

// SetFlags copies the task flags into the check-in.
func (c *CheckIn) SetFlags(f TaskFlags) {
	c.WorkoutsDone = f.WorkoutsDone
	c.FollowedDiet = f.FollowedDiet
	c.NoAlcohol = f.NoAlcohol
	c.ReadTenPages = f.ReadTenPages
	c.TookPhoto = f.TookPhoto
}
