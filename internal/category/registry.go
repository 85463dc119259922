// Package category holds the static category registry. The table is
// process-wide, read-only, and initialized once; stores and views consult
// it for display metadata only.
package category

import "github.com/yuhsinc/pocket-ledger/internal/model"

// registry lists every known category with its display metadata. Icons
// are Material icon names so records stay portable across frontends.
var registry = []model.Category{
	{ID: model.CategoryFood, Label: "飲食", Icon: "restaurant", Color: "#FFE0B2"},
	{ID: model.CategoryCommute, Label: "通勤", Icon: "directions-car", Color: "#A5F1D6"},
	{ID: model.CategoryTransport, Label: "交通", Icon: "commute", Color: "#B3E5FC"},
	{ID: model.CategoryShopping, Label: "購物", Icon: "shopping-bag", Color: "#CBB8FF"},
	{ID: model.CategoryCoffee, Label: "咖啡", Icon: "local-cafe", Color: "#D7CCC8"},
	{ID: model.CategoryFitness, Label: "健身", Icon: "fitness-center", Color: "#C8E6C9"},
	{ID: model.CategorySaving, Label: "存錢", Icon: "savings", Color: "#FFCCBC"},
	{ID: model.CategoryIncome, Label: "收入", Icon: "attach-money", Color: "#FFF9C4"},
	{ID: model.CategoryOther, Label: "其他", Icon: "more-horiz", Color: "#FFD180"},
}

var byID = func() map[model.CategoryID]model.Category {
	m := make(map[model.CategoryID]model.Category, len(registry))
	for _, c := range registry {
		m[c.ID] = c
	}
	return m
}()

// All returns every registered category in display order. The returned
// slice is a copy; callers may not mutate the registry.
func All() []model.Category {
	out := make([]model.Category, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the category for id, falling back to the catch-all
// category for unknown ids. It never fails: records referencing a retired
// or foreign id still render.
func Lookup(id model.CategoryID) model.Category {
	if c, ok := byID[id]; ok {
		return c
	}
	return byID[model.CategoryOther]
}

// Known reports whether id exists in the registry.
func Known(id model.CategoryID) bool {
	_, ok := byID[id]
	return ok
}

// Label is shorthand for Lookup(id).Label.
func Label(id model.CategoryID) string {
	return Lookup(id).Label
}
