package models

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidCustomization is returned when a customization falls outside the allowed options
var ErrInvalidCustomization = errors.New("invalid customization")

// Category groups catalog items on the menu
type Category string

const (
	CategoryAll        Category = "all"
	CategoryEspresso   Category = "espresso"
	CategoryLatte      Category = "latte"
	CategoryCappuccino Category = "cappuccino"
	CategoryColdBrew   Category = "cold-brew"
	CategorySpecialty  Category = "specialty"
)

// Size of a drink
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Milk choice of a drink
type Milk string

const (
	MilkNone   Milk = "none"
	MilkOat    Milk = "oat"
	MilkAlmond Milk = "almond"
	MilkWhole  Milk = "whole"
	MilkSkim   Milk = "skim"
)

// Ice level of a drink
type Ice string

const (
	IceNone   Ice = "none"
	IceLight  Ice = "light"
	IceNormal Ice = "normal"
	IceExtra  Ice = "extra"
)

// CoffeeCustomization is the full set of options chosen for one drink
type CoffeeCustomization struct {
	Size        Size     `bson:"size" json:"size"`
	Strength    int      `bson:"strength" json:"strength"`       // 1-10
	Milk        Milk     `bson:"milk" json:"milk"`
	Temperature int      `bson:"temperature" json:"temperature"` // °F
	Extras      []string `bson:"extras" json:"extras"`
	Sweetness   int      `bson:"sweetness" json:"sweetness"` // 0-10
	Ice         Ice      `bson:"ice" json:"ice"`
}

// Equal reports whether two customizations select exactly the same options
func (c CoffeeCustomization) Equal(o CoffeeCustomization) bool {
	return c.Size == o.Size &&
		c.Strength == o.Strength &&
		c.Milk == o.Milk &&
		c.Temperature == o.Temperature &&
		c.Sweetness == o.Sweetness &&
		c.Ice == o.Ice &&
		slices.Equal(c.Extras, o.Extras)
}

// Clone returns a copy that shares no memory with c
func (c CoffeeCustomization) Clone() CoffeeCustomization {
	c.Extras = slices.Clone(c.Extras)
	if c.Extras == nil {
		c.Extras = []string{}
	}
	return c
}

// Validate checks every option against its allowed values
func (c CoffeeCustomization) Validate() error {
	switch c.Size {
	case SizeSmall, SizeMedium, SizeLarge:
	default:
		return fmt.Errorf("%w: size %q", ErrInvalidCustomization, c.Size)
	}
	switch c.Milk {
	case MilkNone, MilkOat, MilkAlmond, MilkWhole, MilkSkim:
	default:
		return fmt.Errorf("%w: milk %q", ErrInvalidCustomization, c.Milk)
	}
	switch c.Ice {
	case IceNone, IceLight, IceNormal, IceExtra:
	default:
		return fmt.Errorf("%w: ice %q", ErrInvalidCustomization, c.Ice)
	}
	if c.Strength < 1 || c.Strength > 10 {
		return fmt.Errorf("%w: strength %d out of 1-10", ErrInvalidCustomization, c.Strength)
	}
	if c.Sweetness < 0 || c.Sweetness > 10 {
		return fmt.Errorf("%w: sweetness %d out of 0-10", ErrInvalidCustomization, c.Sweetness)
	}
	if c.Temperature < 32 || c.Temperature > 212 {
		return fmt.Errorf("%w: temperature %d", ErrInvalidCustomization, c.Temperature)
	}
	return nil
}

// CoffeeItem is one entry of the catalog
type CoffeeItem struct {
	ID              string              `bson:"id" json:"id"`
	Name            string              `bson:"name" json:"name"`
	Description     string              `bson:"description" json:"description"`
	Price           float64             `bson:"price" json:"price"`
	Category        Category            `bson:"category" json:"category"`
	Image           string              `bson:"image" json:"image"`
	Customization   CoffeeCustomization `bson:"customization" json:"customization"`
	Rating          float64             `bson:"rating" json:"rating"`
	Reviews         int                 `bson:"reviews" json:"reviews"`
	PreparationTime int                 `bson:"preparation_time" json:"preparation_time"` // minutes
	Calories        int                 `bson:"calories" json:"calories"`
	Caffeine        int                 `bson:"caffeine" json:"caffeine"` // mg
	Allergens       []string            `bson:"allergens" json:"allergens"`
	Available       bool                `bson:"available" json:"available"`
}
