package models

// BadgeID identifies a permanent achievement. Badge values are stored verbatim
// in user documents, so the strings must not change.
type BadgeID string

const (
	BadgeWeekWarrior  BadgeID = "week-warrior"  // reached day 7
	Badge30DayHero    BadgeID = "30-day-hero"   // reached day 30
	BadgeCompleted75  BadgeID = "completed-75"  // reached day 75
	BadgeStreakMaster BadgeID = "streak-master" // streak of 10 fully-complete days
)
