package core

import "challenge-backend-go/internal/models"

// dayBadges maps each day-based badge to the day it unlocks at.
var dayBadges = []struct {
	badge models.BadgeID
	day   int
}{
	{models.BadgeWeekWarrior, 7},
	{models.Badge30DayHero, 30},
	{models.BadgeCompleted75, models.ChallengeLength},
}

// streakMasterThreshold is the streak length that unlocks streak-master.
const streakMasterThreshold = 10

// EvaluateBadges returns the union of current with every badge that the given
// day and streak qualify for. Badges are never removed, the function performs
// no I/O, and calling it again with the same (or later) progress returns the
// same set.
func EvaluateBadges(day, streak int, current []models.BadgeID) []models.BadgeID {
	badges := make([]models.BadgeID, len(current))
	copy(badges, current)

	has := func(b models.BadgeID) bool {
		for _, have := range badges {
			if have == b {
				return true
			}
		}
		return false
	}

	for _, t := range dayBadges {
		if day >= t.day && !has(t.badge) {
			badges = append(badges, t.badge)
		}
	}
	if streak >= streakMasterThreshold && !has(models.BadgeStreakMaster) {
		badges = append(badges, models.BadgeStreakMaster)
	}

	return badges
}
