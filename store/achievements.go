package store

import (
	"time"

	"shinmen-coffee/models"
)

const (
	AchievementFirstSip       = "first-sip"
	AchievementCoffeeExplorer = "coffee-explorer"
	AchievementCoffeeMaster   = "coffee-master"
)

// Achievements returns the achievement board of a new profile
func Achievements() []models.Achievement {
	return []models.Achievement{
		{
			ID: AchievementFirstSip, Title: "First Sip", Icon: "☕",
			Description: "Place your first order",
			Rarity:      models.RarityCommon, MaxProgress: 1,
			Reward: models.Reward{Points: 10},
		},
		{
			ID: AchievementCoffeeExplorer, Title: "Coffee Explorer", Icon: "🗺️",
			Description: "Order from every category on the menu",
			Rarity:      models.RarityRare, MaxProgress: 5,
			Reward: models.Reward{Points: 50, Badge: "explorer"},
		},
		{
			ID: AchievementCoffeeMaster, Title: "Coffee Master", Icon: "👑",
			Description: "Place fifty orders",
			Rarity:      models.RarityLegendary, MaxProgress: 50,
			Reward: models.Reward{Points: 500, Badge: "master", Discount: 0.1},
		},
	}
}

// awardAchievements recomputes progress from the user's order history and
// credits rewards for newly unlocked achievements.
func awardAchievements(user *models.UserProfile, now time.Time) {
	if len(user.Achievements) == 0 {
		user.Achievements = Achievements()
	}

	categories := map[models.Category]struct{}{}
	for _, o := range user.OrderHistory {
		for _, line := range o.Items {
			categories[line.Coffee.Category] = struct{}{}
		}
	}
	orders := len(user.OrderHistory)

	for i := range user.Achievements {
		a := &user.Achievements[i]
		switch a.ID {
		case AchievementFirstSip, AchievementCoffeeMaster:
			a.Progress = min(orders, a.MaxProgress)
		case AchievementCoffeeExplorer:
			a.Progress = min(len(categories), a.MaxProgress)
		default:
			continue
		}
		if !a.Unlocked && a.Progress >= a.MaxProgress {
			at := now
			a.Unlocked = true
			a.UnlockedAt = &at
			user.LoyaltyPoints += a.Reward.Points
		}
	}
}
