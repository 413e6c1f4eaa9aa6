package models

// Category is one of the six folio charge categories. The value is the
// bilingual compound label ("Spanish/English") exactly as the extraction
// schema enumerates it; it doubles as display string and filter key, and
// equality is always exact-string.
type Category string

const (
	CategoryRoom         Category = "Habitación/Room"
	CategoryFoodBeverage Category = "Alimentos y Bebidas/Food & Beverage"
	CategoryTaxes        Category = "Impuestos/Taxes"
	CategoryTips         Category = "Propinas/Tips"
	CategoryDiscounts    Category = "Descuentos/Discounts"
	CategoryOther        Category = "Otros/Other"
)

// CategoryAll is the filter sentinel meaning "no category filter".
// It is never a valid transaction category.
const CategoryAll = "All"

// CategoryInfo carries the per-language labels and the chart color for a
// category, so callers never split the compound value on "/".
type CategoryInfo struct {
	LabelES string
	LabelEN string
	Color   string
}

var categoryInfos = map[Category]CategoryInfo{
	CategoryRoom:         {LabelES: "Habitación", LabelEN: "Room", Color: "#3B82F6"},
	CategoryFoodBeverage: {LabelES: "Alimentos y Bebidas", LabelEN: "Food & Beverage", Color: "#10B981"},
	CategoryTaxes:        {LabelES: "Impuestos", LabelEN: "Taxes", Color: "#F59E0B"},
	CategoryTips:         {LabelES: "Propinas", LabelEN: "Tips", Color: "#8B5CF6"},
	CategoryDiscounts:    {LabelES: "Descuentos", LabelEN: "Discounts", Color: "#EF4444"},
	CategoryOther:        {LabelES: "Otros", LabelEN: "Other", Color: "#6B7280"},
}

// Categories returns the closed category set in its fixed display order.
func Categories() []Category {
	return []Category{
		CategoryRoom,
		CategoryFoodBeverage,
		CategoryTaxes,
		CategoryTips,
		CategoryDiscounts,
		CategoryOther,
	}
}

// CategoryValues returns the category strings for use in the structured
// output schema sent to the extraction service.
func CategoryValues() []string {
	cats := Categories()
	values := make([]string, len(cats))
	for i, c := range cats {
		values[i] = string(c)
	}
	return values
}

// LookupCategory returns the label/color info for a category.
// Unknown categories fall back to the "Other" entry.
func LookupCategory(c Category) CategoryInfo {
	if info, ok := categoryInfos[c]; ok {
		return info
	}
	return categoryInfos[CategoryOther]
}

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c Category) bool {
	_, ok := categoryInfos[c]
	return ok
}
