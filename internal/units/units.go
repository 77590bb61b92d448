package units

import (
	"fmt"
	"strings"
)

// MeasurementCategory classifies which conversion table applies to a unit.
type MeasurementCategory string

const (
	CategoryWeight MeasurementCategory = "weight"
	CategoryVolume MeasurementCategory = "volume"
	CategoryCount  MeasurementCategory = "count"
	CategoryCustom MeasurementCategory = "custom"
)

// ConversionError is returned when a quantity cannot be converted because the
// category is unknown or a unit is absent from both the category table and the
// item's conversion profile.
type ConversionError struct {
	FromUnit string
	ToUnit   string
	Category MeasurementCategory
	Reason   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s (category %s): %s", e.FromUnit, e.ToUnit, e.Category, e.Reason)
}

// Factor tables express each unit's size in the category's canonical unit
// (kg for weight, l for volume, piece for count). Package-sized "pack" has no
// universal factor, so it stays at 1 and real package ratios come from the
// per-item conversion profile.
var weightFactors = map[string]float64{
	"mg": 0.000001,
	"g":  0.001,
	"kg": 1,
	"oz": 0.0283495,
	"lb": 0.453592,
}

var volumeFactors = map[string]float64{
	"ml":    0.001,
	"l":     1,
	"tsp":   0.00492892,
	"tbsp":  0.0147868,
	"cup":   0.24,
	"fl_oz": 0.0295735,
}

var countFactors = map[string]float64{
	"piece": 1,
	"dozen": 12,
	"pack":  1,
}

var categoryTables = map[MeasurementCategory]map[string]float64{
	CategoryWeight: weightFactors,
	CategoryVolume: volumeFactors,
	CategoryCount:  countFactors,
}

// Alias word lists used by CategoryForUnit when a unit string is not an exact
// table code (e.g. "kilogram", "litre").
var categoryAliases = map[MeasurementCategory][]string{
	CategoryWeight: {"gram", "kilo", "ounce", "pound", "weight"},
	CategoryVolume: {"liter", "litre", "milli", "gallon", "spoon", "fluid", "volume"},
	CategoryCount:  {"piece", "unit", "dozen", "pack", "count", "bottle", "can"},
}

// ConvertToBase converts quantity from fromUnit to toUnit within category.
// A per-item conversion profile takes precedence over the generic category
// table: when it holds a factor for fromUnit, the quantity is multiplied by
// that factor directly.
func ConvertToBase(quantity float64, fromUnit, toUnit string, category MeasurementCategory, profile map[string]float64) (float64, error) {
	if fromUnit == toUnit {
		return quantity, nil
	}

	if factor, ok := profile[fromUnit]; ok {
		return quantity * factor, nil
	}

	table, ok := categoryTables[category]
	if !ok {
		return 0, &ConversionError{
			FromUnit: fromUnit,
			ToUnit:   toUnit,
			Category: category,
			Reason:   "unrecognized measurement category",
		}
	}

	fromFactor, ok := table[fromUnit]
	if !ok {
		return 0, &ConversionError{
			FromUnit: fromUnit,
			ToUnit:   toUnit,
			Category: category,
			Reason:   fmt.Sprintf("unit %q not in category table or conversion profile", fromUnit),
		}
	}
	toFactor, ok := table[toUnit]
	if !ok {
		return 0, &ConversionError{
			FromUnit: fromUnit,
			ToUnit:   toUnit,
			Category: category,
			Reason:   fmt.Sprintf("unit %q not in category table or conversion profile", toUnit),
		}
	}

	return quantity * fromFactor / toFactor, nil
}

// CategoryForUnit classifies an arbitrary unit string. Exact table codes win;
// otherwise a case-insensitive substring match against the category alias
// lists is attempted. Unrecognized units fall back to the count category.
func CategoryForUnit(unit string) MeasurementCategory {
	for category, table := range categoryTables {
		if _, ok := table[unit]; ok {
			return category
		}
	}

	lower := strings.ToLower(unit)
	for _, category := range []MeasurementCategory{CategoryWeight, CategoryVolume, CategoryCount} {
		for _, alias := range categoryAliases[category] {
			if strings.Contains(lower, alias) {
				return category
			}
		}
	}

	return CategoryCount
}

// ValidCategory reports whether s is one of the known measurement categories.
func ValidCategory(s string) bool {
	switch MeasurementCategory(s) {
	case CategoryWeight, CategoryVolume, CategoryCount, CategoryCustom:
		return true
	}
	return false
}
