package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rarity of an achievement
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Reward granted when an achievement unlocks
type Reward struct {
	Points   int     `bson:"points" json:"points"`
	Badge    string  `bson:"badge,omitempty" json:"badge,omitempty"`
	Discount float64 `bson:"discount,omitempty" json:"discount,omitempty"`
}

// Achievement is a gamified goal on the experience section
type Achievement struct {
	ID          string     `bson:"id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Icon        string     `bson:"icon" json:"icon"`
	Rarity      Rarity     `bson:"rarity" json:"rarity"`
	Progress    int        `bson:"progress" json:"progress"`
	MaxProgress int        `bson:"max_progress" json:"max_progress"`
	Reward      Reward     `bson:"reward" json:"reward"`
	Unlocked    bool       `bson:"unlocked" json:"unlocked"`
	UnlockedAt  *time.Time `bson:"unlocked_at,omitempty" json:"unlocked_at,omitempty"`
}

// Preferences of a signed-in customer
type Preferences struct {
	FavoriteDrinks       []string `bson:"favorite_drinks" json:"favorite_drinks"`
	PreferredStrength    int      `bson:"preferred_strength" json:"preferred_strength"`
	PreferredMilk        string   `bson:"preferred_milk" json:"preferred_milk"`
	PreferredTemperature int      `bson:"preferred_temperature" json:"preferred_temperature"`
	DietaryRestrictions  []string `bson:"dietary_restrictions" json:"dietary_restrictions"`
	CaffeineSensitivity  string   `bson:"caffeine_sensitivity" json:"caffeine_sensitivity"` // low, medium or high
}

// UserProfile is the session's view of a signed-in customer
type UserProfile struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name"`
	Email         string        `bson:"email" json:"email"`
	Preferences   Preferences   `bson:"preferences" json:"preferences"`
	OrderHistory  []Order       `bson:"order_history" json:"order_history"`
	LoyaltyPoints int           `bson:"loyalty_points" json:"loyalty_points"`
	Achievements  []Achievement `bson:"achievements" json:"achievements"`
}

// User represents a registered account
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password,omitempty" json:"-"`
	Preferences Preferences        `bson:"preferences" json:"preferences"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Profile builds the session profile for a registered account
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:           u.ID.Hex(),
		Name:         u.Name,
		Email:        u.Email,
		Preferences:  u.Preferences,
		OrderHistory: []Order{},
		Achievements: []Achievement{},
	}
}
