package pricing

import "errors"

var ErrInvalidCategory = errors.New("invalid room category")

// Category is the fixed room tier. It is immutable for the lifetime of a
// room; only the derived nightly rate moves when the hotel base price is
// edited.
type Category string

const (
	CategoryStandard  Category = "standard"
	CategoryDeluxe    Category = "deluxe"
	CategoryExecutive Category = "executive"
)

var categoryMultipliers = map[Category]float64{
	CategoryStandard:  1.00,
	CategoryDeluxe:    1.20,
	CategoryExecutive: 1.35,
}

func NewCategory(value string) (Category, error) {
	c := Category(value)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	_, ok := categoryMultipliers[c]
	return ok
}

// Multiplier is applied once to the hotel base price whenever a room's
// nightly rate is (re)computed, never per night.
func (c Category) Multiplier() float64 {
	return categoryMultipliers[c]
}

// NightlyRate derives a room's rate from the hotel base price.
func (c Category) NightlyRate(basePrice float64) float64 {
	return basePrice * c.Multiplier()
}
