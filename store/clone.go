package store

import (
	"slices"

	"shinmen-coffee/catalog"
	"shinmen-coffee/models"
)

func cloneItems(items []models.CoffeeItem) []models.CoffeeItem {
	if items == nil {
		return []models.CoffeeItem{}
	}
	out := make([]models.CoffeeItem, len(items))
	for i, item := range items {
		out[i] = catalog.Clone(item)
	}
	return out
}

func cloneLines(lines []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(lines))
	for i, line := range lines {
		line.Coffee = catalog.Clone(line.Coffee)
		line.Customizations = line.Customizations.Clone()
		out[i] = line
	}
	return out
}

func cloneOrder(o models.Order) models.Order {
	o.Items = cloneLines(o.Items)
	return o
}

func cloneOrders(orders []models.Order) []models.Order {
	if orders == nil {
		return nil
	}
	out := make([]models.Order, len(orders))
	for i, o := range orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func clonePreferences(p models.Preferences) models.Preferences {
	p.FavoriteDrinks = slices.Clone(p.FavoriteDrinks)
	p.DietaryRestrictions = slices.Clone(p.DietaryRestrictions)
	return p
}

func cloneProfile(p *models.UserProfile) *models.UserProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.Preferences = clonePreferences(p.Preferences)
	out.OrderHistory = cloneOrders(p.OrderHistory)
	out.Achievements = make([]models.Achievement, len(p.Achievements))
	for i, a := range p.Achievements {
		if a.UnlockedAt != nil {
			at := *a.UnlockedAt
			a.UnlockedAt = &at
		}
		out.Achievements[i] = a
	}
	return &out
}

func cloneAnimations(a models.AnimationState) models.AnimationState {
	if a.CurrentAnimation != nil {
		name := *a.CurrentAnimation
		a.CurrentAnimation = &name
	}
	a.AnimationQueue = slices.Clone(a.AnimationQueue)
	if a.AnimationQueue == nil {
		a.AnimationQueue = []string{}
	}
	return a
}

func cloneRecommendations(r models.AIRecommendations) models.AIRecommendations {
	return models.AIRecommendations{
		PersonalizedDrinks:          cloneItems(r.PersonalizedDrinks),
		SeasonalSuggestions:         cloneItems(r.SeasonalSuggestions),
		WeatherBasedRecommendations: cloneItems(r.WeatherBasedRecommendations),
		MoodBasedSuggestions:        cloneItems(r.MoodBasedSuggestions),
		TimeBasedRecommendations:    cloneItems(r.TimeBasedRecommendations),
	}
}
