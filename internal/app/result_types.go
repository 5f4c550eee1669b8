package app

import (
	"github.com/shopspring/decimal"

	"grocery-planner/internal/core"
)

// PricedCategory is one category bucket of the full grocery list, with
// store prices attached to each line when available.
type PricedCategory struct {
	Category core.Category     `json:"category"`
	Lines    []core.PricedLine `json:"lines"`
}

// GroceryListResult is returned by GetGroceryList.
type GroceryListResult struct {
	WeekOffset      int               `json:"week_offset"`
	HouseholdSize   int               `json:"household_size"`
	Categories      []PricedCategory  `json:"categories"`
	ItemCount       int               `json:"item_count"`
	PricesAvailable bool              `json:"prices_available"`
	Totals          []core.StoreTotal `json:"totals,omitempty"`
}

// ShoppingListResult is returned by GetShoppingList.
type ShoppingListResult struct {
	WeekOffset int               `json:"week_offset"`
	Aisles     []core.AisleGroup `json:"aisles"`
	ItemCount  int               `json:"item_count"`
}

// PantryItem is a single pantry row in a PantryResult.
type PantryItem struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PantryResult is returned by GetPantry.
type PantryResult struct {
	Items []PantryItem `json:"items"`
}

// PurchaseHistoryResult is returned by GetPurchaseHistory.
type PurchaseHistoryResult struct {
	Records []core.PurchaseRecord `json:"records"`
}

// PreferencesResult is returned by GetPreferences and UpdatePreferences.
type PreferencesResult struct {
	Preferences core.Preferences `json:"preferences"`
}

// PriceRefreshResult is returned by RefreshPrices. Available is false
// when the fetch failed or was superseded by a newer refresh.
type PriceRefreshResult struct {
	Available  bool              `json:"available"`
	Superseded bool              `json:"superseded"`
	Totals     []core.StoreTotal `json:"totals,omitempty"`
}

// StoreTotalsResult is returned by GetStoreTotals.
type StoreTotalsResult struct {
	Available     bool              `json:"available"`
	Totals        []core.StoreTotal `json:"totals,omitempty"`
	CheapestStore core.Store        `json:"cheapest_store,omitempty"`
	SelectedStore string            `json:"selected_store,omitempty"`
}
