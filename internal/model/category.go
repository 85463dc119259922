// Package model defines the core domain types shared across the application.
package model

// CategoryID identifies a category in the static registry. The set of valid
// ids is closed; lookups for unknown ids fall back to CategoryOther.
type CategoryID string

const (
	// CategoryFood covers meals and drinks.
	CategoryFood CategoryID = "food"
	// CategoryCommute covers recurring commute costs.
	CategoryCommute CategoryID = "commute"
	// CategoryTransport covers other transport costs.
	CategoryTransport CategoryID = "transport"
	// CategoryShopping covers retail purchases.
	CategoryShopping CategoryID = "shopping"
	// CategoryCoffee covers coffee and cafe visits.
	CategoryCoffee CategoryID = "coffee"
	// CategoryFitness covers gyms and sports.
	CategoryFitness CategoryID = "fitness"
	// CategorySaving covers money set aside.
	CategorySaving CategoryID = "saving"
	// CategoryIncome covers received money.
	CategoryIncome CategoryID = "income"
	// CategoryOther is the catch-all and the fallback for unknown ids.
	CategoryOther CategoryID = "other"
)

// Category holds the display metadata for a category id.
type Category struct {
	ID    CategoryID
	Label string
	Icon  string
	Color string
}
