package core

import "github.com/shopspring/decimal"

// MealSlot identifies one of the three daily meals.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// MealSlots is the fixed slot order within a day.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}

// WeekDays is the fixed day order within a week.
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Meal is a named dish with its ingredient list. Ingredient names keep
// their display casing; the same ingredient may appear in many meals.
type Meal struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// DayPlan maps meal slots to meals for a single day.
type DayPlan map[MealSlot]Meal

// WeekPlan maps day names (Monday..Sunday) to day plans.
type WeekPlan map[string]DayPlan

// Inventory is a snapshot of pantry on-hand amounts keyed by lowercase
// ingredient name.
type Inventory map[string]decimal.Decimal

// DemandLine is one consolidated ingredient requirement for a week,
// net of inventory. Amount is what still needs buying; TotalNeeded is
// the plan's gross demand before netting.
type DemandLine struct {
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	TotalNeeded     decimal.Decimal `json:"total_needed"`
	Unit            string          `json:"unit"`
	Category        Category        `json:"category"`
	InInventory     bool            `json:"in_inventory"`
	InventoryAmount decimal.Decimal `json:"inventory_amount"`
}

// PurchaseRecord is the latest purchase event for an ingredient. Each
// new check event overwrites the previous record for that ingredient.
type PurchaseRecord struct {
	Name         string          `json:"name"`
	EventID      string          `json:"event_id"`
	Amount       decimal.Decimal `json:"amount"`
	Unit         string          `json:"unit"`
	PurchaseDate string          `json:"purchase_date"`
	WeekID       int             `json:"week_id"`
}

// DefaultWeekPlan returns the built-in week-0 meal plan used to seed a
// fresh database. Callers may freely modify the returned value.
func DefaultWeekPlan() WeekPlan {
	return WeekPlan{
		"Monday": {
			SlotBreakfast: {Name: "Greek Yogurt Parfait", Ingredients: []string{"Greek Yogurt", "Berries", "Granola", "Honey", "Almonds"}},
			SlotLunch:     {Name: "Grilled Chicken Salad", Ingredients: []string{"Chicken Breast", "Mixed Greens", "Cherry Tomatoes", "Cucumber", "Olive Oil", "Lemon"}},
			SlotDinner:    {Name: "Salmon with Quinoa", Ingredients: []string{"Salmon Fillet", "Quinoa", "Broccoli", "Olive Oil", "Garlic"}},
		},
		"Tuesday": {
			SlotBreakfast: {Name: "Veggie Scramble", Ingredients: []string{"Eggs", "Spinach", "Bell Peppers", "Mushrooms", "Cheddar Cheese"}},
			SlotLunch:     {Name: "Turkey Wrap", Ingredients: []string{"Ground Turkey", "Whole Wheat Tortilla", "Lettuce", "Tomatoes", "Hummus"}},
			SlotDinner:    {Name: "Chicken Stir Fry", Ingredients: []string{"Chicken Breast", "Brown Rice", "Bell Peppers", "Broccoli", "Soy Sauce", "Garlic"}},
		},
		"Wednesday": {
			SlotBreakfast: {Name: "Overnight Oats", Ingredients: []string{"Oats", "Almond Milk", "Chia Seeds", "Banana", "Peanut Butter"}},
			SlotLunch:     {Name: "Quinoa Power Bowl", Ingredients: []string{"Quinoa", "Chickpeas", "Avocado", "Kale", "Olive Oil", "Lemon"}},
			SlotDinner:    {Name: "Baked Cod with Vegetables", Ingredients: []string{"Cod Fillet", "Sweet Potato", "Asparagus", "Olive Oil"}},
		},
		"Thursday": {
			SlotBreakfast: {Name: "Protein Smoothie", Ingredients: []string{"Protein Powder", "Banana", "Berries", "Almond Milk", "Flax Seeds"}},
			SlotLunch:     {Name: "Tuna Salad Sandwich", Ingredients: []string{"Tuna", "Whole Wheat Bread", "Lettuce", "Celery", "Greek Yogurt"}},
			SlotDinner:    {Name: "Turkey Meatballs with Pasta", Ingredients: []string{"Ground Turkey", "Pasta", "Tomatoes", "Garlic", "Parmesan"}},
		},
		"Friday": {
			SlotBreakfast: {Name: "Cottage Cheese Bowl", Ingredients: []string{"Cottage Cheese", "Strawberries", "Walnuts", "Honey"}},
			SlotLunch:     {Name: "Chicken Burrito Bowl", Ingredients: []string{"Chicken Breast", "Brown Rice", "Salsa", "Avocado", "Cheddar Cheese"}},
			SlotDinner:    {Name: "Shrimp Tacos", Ingredients: []string{"Shrimp", "Whole Wheat Tortilla", "Lettuce", "Lime", "Avocado"}},
		},
		"Saturday": {
			SlotBreakfast: {Name: "Banana Pancakes", Ingredients: []string{"Oats", "Banana", "Eggs", "Maple Syrup", "Blueberries"}},
			SlotLunch:     {Name: "Mediterranean Salad", Ingredients: []string{"Mixed Greens", "Feta Cheese", "Cucumber", "Red Onion", "Olive Oil"}},
			SlotDinner:    {Name: "Lean Beef with Roasted Vegetables", Ingredients: []string{"Lean Beef", "Potatoes", "Carrots", "Green Beans", "Olive Oil"}},
		},
		"Sunday": {
			SlotBreakfast: {Name: "Avocado Toast with Eggs", Ingredients: []string{"Whole Wheat Bread", "Avocado", "Eggs", "Cherry Tomatoes"}},
			SlotLunch:     {Name: "Tofu Buddha Bowl", Ingredients: []string{"Tofu", "Quinoa", "Spinach", "Carrots", "Cashews", "Soy Sauce"}},
			SlotDinner:    {Name: "Roast Chicken Dinner", Ingredients: []string{"Chicken Thighs", "Sweet Potato", "Cauliflower", "Olive Oil", "Garlic"}},
		},
	}
}
