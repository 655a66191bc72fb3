// Package catalog holds the fixed coffee menu and the menu filter.
package catalog

import (
	"shinmen-coffee/models"
	"slices"
	"strings"
)

// CategoryInfo is a menu tab
type CategoryInfo struct {
	ID   models.Category `json:"id"`
	Name string          `json:"name"`
	Icon string          `json:"icon"`
}

var categories = []CategoryInfo{
	{ID: models.CategoryAll, Name: "All", Icon: "☕"},
	{ID: models.CategoryEspresso, Name: "Espresso", Icon: "⚡"},
	{ID: models.CategoryLatte, Name: "Lattes", Icon: "🥛"},
	{ID: models.CategoryCappuccino, Name: "Cappuccinos", Icon: "☁️"},
	{ID: models.CategoryColdBrew, Name: "Cold Brew", Icon: "🧊"},
	{ID: models.CategorySpecialty, Name: "Specialty", Icon: "✨"},
}

var items = []models.CoffeeItem{
	{
		ID:              "espresso-classic",
		Name:            "Classic Espresso",
		Description:     "Rich, bold, and perfectly balanced single shot of espresso",
		Price:           3.50,
		Category:        models.CategoryEspresso,
		Image:           "/images/espresso.jpg",
		Rating:          4.8,
		Reviews:         127,
		PreparationTime: 2,
		Calories:        5,
		Caffeine:        80,
		Allergens:       []string{},
		Available:       true,
		Customization: models.CoffeeCustomization{
			Size: models.SizeMedium, Strength: 8, Milk: models.MilkNone, Temperature: 160,
			Extras: []string{}, Sweetness: 0, Ice: models.IceNone,
		},
	},
	{
		ID:              "latte-art",
		Name:            "Artisan Latte",
		Description:     "Smooth espresso with velvety steamed milk and beautiful latte art",
		Price:           5.50,
		Category:        models.CategoryLatte,
		Image:           "/images/latte.jpg",
		Rating:          4.9,
		Reviews:         203,
		PreparationTime: 4,
		Calories:        120,
		Caffeine:        75,
		Allergens:       []string{"milk"},
		Available:       true,
		Customization: models.CoffeeCustomization{
			Size: models.SizeMedium, Strength: 6, Milk: models.MilkWhole, Temperature: 150,
			Extras: []string{}, Sweetness: 2, Ice: models.IceNone,
		},
	},
	{
		ID:              "cappuccino-perfect",
		Name:            "Perfect Cappuccino",
		Description:     "Equal parts espresso, steamed milk, and milk foam",
		Price:           4.75,
		Category:        models.CategoryCappuccino,
		Image:           "/images/cappuccino.jpg",
		Rating:          4.7,
		Reviews:         156,
		PreparationTime: 3,
		Calories:        80,
		Caffeine:        70,
		Allergens:       []string{"milk"},
		Available:       true,
		Customization: models.CoffeeCustomization{
			Size: models.SizeMedium, Strength: 7, Milk: models.MilkWhole, Temperature: 155,
			Extras: []string{}, Sweetness: 1, Ice: models.IceNone,
		},
	},
	{
		ID:              "cold-brew-smooth",
		Name:            "Smooth Cold Brew",
		Description:     "18-hour steeped cold brew with notes of chocolate and caramel",
		Price:           6.00,
		Category:        models.CategoryColdBrew,
		Image:           "/images/cold-brew.jpg",
		Rating:          4.6,
		Reviews:         89,
		PreparationTime: 1,
		Calories:        15,
		Caffeine:        200,
		Allergens:       []string{},
		Available:       true,
		Customization: models.CoffeeCustomization{
			Size: models.SizeMedium, Strength: 9, Milk: models.MilkNone, Temperature: 40,
			Extras: []string{}, Sweetness: 3, Ice: models.IceNormal,
		},
	},
	{
		ID:              "mocha-decadent",
		Name:            "Decadent Mocha",
		Description:     "Rich chocolate and espresso with steamed milk",
		Price:           6.50,
		Category:        models.CategorySpecialty,
		Image:           "/images/mocha.jpg",
		Rating:          4.8,
		Reviews:         134,
		PreparationTime: 5,
		Calories:        280,
		Caffeine:        85,
		Allergens:       []string{"milk", "chocolate"},
		Available:       true,
		Customization: models.CoffeeCustomization{
			Size: models.SizeMedium, Strength: 6, Milk: models.MilkWhole, Temperature: 150,
			Extras: []string{"chocolate"}, Sweetness: 7, Ice: models.IceNone,
		},
	},
	{
		ID:              "americano-bold",
		Name:            "Bold Americano",
		Description:     "Espresso with hot water for a clean, strong flavor",
		Price:           4.00,
		Category:        models.CategoryEspresso,
		Image:           "/images/americano.jpg",
		Rating:          4.5,
		Reviews:         98,
		PreparationTime: 2,
		Calories:        10,
		Caffeine:        90,
		Allergens:       []string{},
		Available:       true,
		Customization: models.CoffeeCustomization{
			Size: models.SizeMedium, Strength: 9, Milk: models.MilkNone, Temperature: 170,
			Extras: []string{}, Sweetness: 0, Ice: models.IceNone,
		},
	},
}

// Items returns a copy of the catalog
func Items() []models.CoffeeItem {
	out := make([]models.CoffeeItem, len(items))
	for i, item := range items {
		out[i] = Clone(item)
	}
	return out
}

// Categories returns the menu tabs, "all" first
func Categories() []CategoryInfo {
	return slices.Clone(categories)
}

// Clone deep-copies an item
func Clone(item models.CoffeeItem) models.CoffeeItem {
	item.Allergens = slices.Clone(item.Allergens)
	item.Customization = item.Customization.Clone()
	return item
}

// Find looks up an item by id
func Find(menu []models.CoffeeItem, id string) (models.CoffeeItem, bool) {
	for _, item := range menu {
		if item.ID == id {
			return item, true
		}
	}
	return models.CoffeeItem{}, false
}

// Filter keeps the items matching category AND containing query in their name or
// description, ignoring case. An empty or "all" category and a blank query match everything.
func Filter(menu []models.CoffeeItem, category models.Category, query string) []models.CoffeeItem {
	query = strings.ToLower(strings.TrimSpace(query))
	filtered := make([]models.CoffeeItem, 0, len(menu))
	for _, item := range menu {
		if category != "" && category != models.CategoryAll && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
