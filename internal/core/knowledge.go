package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is a nutritional/shopping category used by the full-list view.
type Category string

const (
	CategoryProtein    Category = "protein"
	CategoryDairy      Category = "dairy"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryGrains     Category = "grains"
	CategoryNuts       Category = "nuts"
	CategoryOils       Category = "oils"
	CategorySpices     Category = "spices"
	CategoryCondiments Category = "condiments"
)

// CategoryOrder is the fixed display order for the full grocery list.
var CategoryOrder = []Category{
	CategoryProtein,
	CategoryDairy,
	CategoryVegetables,
	CategoryFruits,
	CategoryGrains,
	CategoryNuts,
	CategoryOils,
	CategorySpices,
	CategoryCondiments,
}

// Aisle is a physical store section used to order the shopping-list view
// for efficient in-store navigation.
type Aisle string

const (
	AisleProduce     Aisle = "Produce"
	AisleMeatSeafood Aisle = "Meat & Seafood"
	AisleDairyEggs   Aisle = "Dairy & Eggs"
	AislePantry      Aisle = "Pantry & Dry Goods"
	AisleNuts        Aisle = "Nuts & Condiments"
	AisleOther       Aisle = "Other Items"
)

// AisleOrder is the fixed walking order through the store.
var AisleOrder = []Aisle{
	AisleProduce,
	AisleMeatSeafood,
	AisleDairyEggs,
	AislePantry,
	AisleNuts,
	AisleOther,
}

// Label returns the display label for an aisle, including its number in
// the walking order, e.g. "Produce (Aisle 1)".
func (a Aisle) Label() string {
	for i, aisle := range AisleOrder {
		if aisle == a {
			return fmt.Sprintf("%s (Aisle %d)", a, i+1)
		}
	}
	return string(a)
}

// servingSizes maps a lowercase ingredient name to its typical
// per-person serving amount. Ingredients not listed default to 1.
var servingSizes = map[string]float64{
	"chicken breast":  0.25,
	"chicken thighs":  0.25,
	"ground turkey":   0.25,
	"ground beef":     0.25,
	"lean beef":       0.25,
	"salmon fillet":   0.25,
	"salmon":          0.25,
	"white fish":      0.25,
	"cod fillet":      0.25,
	"tuna":            1,
	"shrimp":          0.25,
	"tofu":            0.25,
	"eggs":            2,
	"egg whites":      3,
	"greek yogurt":    1,
	"cottage cheese":  0.5,
	"milk":            1,
	"almond milk":     1,
	"cheddar cheese":  0.25,
	"feta cheese":     0.25,
	"mozzarella":      0.25,
	"parmesan":        2,
	"butter":          1,
	"brown rice":      0.25,
	"white rice":      0.25,
	"quinoa":          0.25,
	"oats":            0.5,
	"granola":         0.25,
	"whole wheat bread": 2,
	"whole wheat tortilla": 1,
	"pasta":           2,
	"sweet potato":    1,
	"potatoes":        1,
	"broccoli":        1,
	"spinach":         2,
	"kale":            1,
	"mixed greens":    2,
	"lettuce":         0.25,
	"tomatoes":        1,
	"cherry tomatoes": 0.5,
	"cucumber":        0.5,
	"bell peppers":    0.5,
	"red onion":       0.25,
	"onion":           0.5,
	"garlic":          2,
	"carrots":         1,
	"celery":          1,
	"zucchini":        0.5,
	"asparagus":       0.5,
	"mushrooms":       0.5,
	"cauliflower":     1,
	"green beans":     1,
	"avocado":         0.5,
	"banana":          1,
	"apple":           1,
	"berries":         0.5,
	"blueberries":     0.5,
	"strawberries":    0.5,
	"mango":           0.5,
	"orange":          1,
	"lemon":           0.5,
	"lime":            0.5,
	"almonds":         0.25,
	"walnuts":         0.25,
	"cashews":         0.25,
	"peanut butter":   2,
	"almond butter":   2,
	"chia seeds":      1,
	"flax seeds":      1,
	"olive oil":       1,
	"coconut oil":     1,
	"honey":           1,
	"maple syrup":     1,
	"hummus":          2,
	"salsa":           2,
	"soy sauce":       1,
	"protein powder":  1,
}

// servingUnits maps a lowercase ingredient name to its unit of measure.
// Ingredients not listed default to "each".
var servingUnits = map[string]string{
	"chicken breast":  "lb",
	"chicken thighs":  "lb",
	"ground turkey":   "lb",
	"ground beef":     "lb",
	"lean beef":       "lb",
	"salmon fillet":   "lb",
	"salmon":          "lb",
	"white fish":      "lb",
	"cod fillet":      "lb",
	"tuna":            "can",
	"shrimp":          "lb",
	"tofu":            "lb",
	"eggs":            "each",
	"egg whites":      "each",
	"greek yogurt":    "cup",
	"cottage cheese":  "cup",
	"milk":            "cup",
	"almond milk":     "cup",
	"cheddar cheese":  "cup",
	"feta cheese":     "cup",
	"mozzarella":      "cup",
	"parmesan":        "tbsp",
	"butter":          "tbsp",
	"brown rice":      "cup",
	"white rice":      "cup",
	"quinoa":          "cup",
	"oats":            "cup",
	"granola":         "cup",
	"whole wheat bread": "slice",
	"pasta":           "oz",
	"spinach":         "cup",
	"kale":            "cup",
	"mixed greens":    "cup",
	"lettuce":         "head",
	"cherry tomatoes": "cup",
	"broccoli":        "cup",
	"cauliflower":     "cup",
	"green beans":     "cup",
	"asparagus":       "bunch",
	"mushrooms":       "cup",
	"garlic":          "clove",
	"berries":         "cup",
	"blueberries":     "cup",
	"strawberries":    "cup",
	"mango":           "cup",
	"almonds":         "cup",
	"walnuts":         "cup",
	"cashews":         "cup",
	"peanut butter":   "tbsp",
	"almond butter":   "tbsp",
	"chia seeds":      "tbsp",
	"flax seeds":      "tbsp",
	"olive oil":       "tbsp",
	"coconut oil":     "tbsp",
	"honey":           "tbsp",
	"maple syrup":     "tbsp",
	"hummus":          "tbsp",
	"salsa":           "tbsp",
	"soy sauce":       "tbsp",
	"protein powder":  "scoop",
}

// categoryKeywords holds the substring keyword groups for category
// resolution, in priority order. A name can match several groups
// ("pepper" is in both vegetables and spices), so the first matching
// group in this order wins: protein, oils, dairy, vegetables, fruits,
// grains, nuts, spices. Names matching nothing fall back to condiments.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryProtein, []string{"chicken", "turkey", "beef", "steak", "pork", "salmon", "tuna", "fish", "cod", "shrimp", "tofu", "egg", "protein powder"}},
	{CategoryOils, []string{"oil", "ghee", "butter"}},
	{CategoryDairy, []string{"yogurt", "milk", "cheese", "mozzarella", "parmesan", "cream"}},
	{CategoryVegetables, []string{"broccoli", "spinach", "kale", "greens", "lettuce", "tomato", "cucumber", "pepper", "onion", "garlic", "carrot", "celery", "zucchini", "asparagus", "mushroom", "cauliflower", "green bean", "potato"}},
	{CategoryFruits, []string{"avocado", "banana", "apple", "berr", "mango", "orange", "lemon", "lime", "grape", "melon", "peach", "pear"}},
	{CategoryGrains, []string{"rice", "quinoa", "oat", "granola", "bread", "tortilla", "pasta", "noodle", "cereal"}},
	{CategoryNuts, []string{"almond", "walnut", "cashew", "peanut", "pecan", "pistachio", "seed"}},
	{CategorySpices, []string{"salt", "pepper", "cinnamon", "cumin", "paprika", "turmeric", "oregano", "basil", "ginger", "chili"}},
}

// storeAisles maps a lowercase ingredient name to its store section.
// Ingredients not listed default to Other Items.
var storeAisles = map[string]Aisle{
	"broccoli":        AisleProduce,
	"spinach":         AisleProduce,
	"kale":            AisleProduce,
	"mixed greens":    AisleProduce,
	"lettuce":         AisleProduce,
	"tomatoes":        AisleProduce,
	"cherry tomatoes": AisleProduce,
	"cucumber":        AisleProduce,
	"bell peppers":    AisleProduce,
	"red onion":       AisleProduce,
	"onion":           AisleProduce,
	"garlic":          AisleProduce,
	"carrots":         AisleProduce,
	"celery":          AisleProduce,
	"zucchini":        AisleProduce,
	"asparagus":       AisleProduce,
	"mushrooms":       AisleProduce,
	"cauliflower":     AisleProduce,
	"green beans":     AisleProduce,
	"sweet potato":    AisleProduce,
	"potatoes":        AisleProduce,
	"avocado":         AisleProduce,
	"banana":          AisleProduce,
	"apple":           AisleProduce,
	"berries":         AisleProduce,
	"blueberries":     AisleProduce,
	"strawberries":    AisleProduce,
	"mango":           AisleProduce,
	"orange":          AisleProduce,
	"lemon":           AisleProduce,
	"lime":            AisleProduce,
	"chicken breast":  AisleMeatSeafood,
	"chicken thighs":  AisleMeatSeafood,
	"ground turkey":   AisleMeatSeafood,
	"ground beef":     AisleMeatSeafood,
	"lean beef":       AisleMeatSeafood,
	"salmon fillet":   AisleMeatSeafood,
	"salmon":          AisleMeatSeafood,
	"white fish":      AisleMeatSeafood,
	"cod fillet":      AisleMeatSeafood,
	"shrimp":          AisleMeatSeafood,
	"eggs":            AisleDairyEggs,
	"egg whites":      AisleDairyEggs,
	"greek yogurt":    AisleDairyEggs,
	"cottage cheese":  AisleDairyEggs,
	"milk":            AisleDairyEggs,
	"almond milk":     AisleDairyEggs,
	"cheddar cheese":  AisleDairyEggs,
	"feta cheese":     AisleDairyEggs,
	"mozzarella":      AisleDairyEggs,
	"parmesan":        AisleDairyEggs,
	"butter":          AisleDairyEggs,
	"tofu":            AisleDairyEggs,
	"brown rice":      AislePantry,
	"white rice":      AislePantry,
	"quinoa":          AislePantry,
	"oats":            AislePantry,
	"granola":         AislePantry,
	"whole wheat bread": AislePantry,
	"whole wheat tortilla": AislePantry,
	"pasta":           AislePantry,
	"tuna":            AislePantry,
	"olive oil":       AislePantry,
	"coconut oil":     AislePantry,
	"protein powder":  AislePantry,
	"almonds":         AisleNuts,
	"walnuts":         AisleNuts,
	"cashews":         AisleNuts,
	"peanut butter":   AisleNuts,
	"almond butter":   AisleNuts,
	"chia seeds":      AisleNuts,
	"flax seeds":      AisleNuts,
	"honey":           AisleNuts,
	"maple syrup":     AisleNuts,
	"hummus":          AisleNuts,
	"salsa":           AisleNuts,
	"soy sauce":       AisleNuts,
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AmountPerPerson returns the typical per-person serving amount for an
// ingredient. Unknown ingredients default to 1.
func AmountPerPerson(name string) decimal.Decimal {
	if amt, ok := servingSizes[normalizeName(name)]; ok {
		return decimal.NewFromFloat(amt)
	}
	return decimal.NewFromInt(1)
}

// UnitFor returns the unit of measure for an ingredient, defaulting to
// "each" for unknown ingredients.
func UnitFor(name string) string {
	if unit, ok := servingUnits[normalizeName(name)]; ok {
		return unit
	}
	return "each"
}

// CategoryFor resolves an ingredient name to a shopping category by
// scanning for keyword substrings in the priority order fixed by
// categoryKeywords. Names matching no group return condiments.
func CategoryFor(name string) Category {
	n := normalizeName(name)
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(n, kw) {
				return group.category
			}
		}
	}
	return CategoryCondiments
}

// AisleFor returns the store section for an ingredient. Lookup is
// case-insensitive; unknown ingredients go to Other Items.
func AisleFor(name string) Aisle {
	if aisle, ok := storeAisles[normalizeName(name)]; ok {
		return aisle
	}
	return AisleOther
}
