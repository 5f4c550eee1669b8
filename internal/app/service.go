package app

import "context"

// ApplicationService is the single interface all adapters call. It
// decouples presentation from the grocery pipeline. Implementations
// must contain no display logic of any kind.
type ApplicationService interface {
	// GetGroceryList consolidates the week's meal plan into a demand
	// list net of the pantry, grouped by category, with any cached
	// store prices attached.
	GetGroceryList(ctx context.Context, weekOffset int) (*GroceryListResult, error)

	// GetShoppingList returns the checked subset of the week's demand
	// list grouped by store aisle in walking order.
	GetShoppingList(ctx context.Context, weekOffset int, checked []string) (*ShoppingListResult, error)

	// CheckItem marks a shopping-list item as purchased: its amount is
	// recorded in the pantry and the ingredient's purchase history is
	// overwritten.
	CheckItem(ctx context.Context, req CheckItemRequest) error

	// UncheckItem removes an ingredient's pantry record entirely.
	UncheckItem(ctx context.Context, name string) error

	// GetPantry returns the current pantry contents.
	GetPantry(ctx context.Context) (*PantryResult, error)

	// GetPurchaseHistory returns the latest purchase event per ingredient.
	GetPurchaseHistory(ctx context.Context) (*PurchaseHistoryResult, error)

	// GetPreferences returns the current user preferences.
	GetPreferences(ctx context.Context) (*PreferencesResult, error)

	// UpdatePreferences applies new preferences. The in-memory copy is
	// updated unconditionally; a failed persistence write is logged and
	// does not fail the call.
	UpdatePreferences(ctx context.Context, req UpdatePreferencesRequest) (*PreferencesResult, error)

	// RefreshPrices fetches a fresh pricing analysis for the current
	// demand list. A response superseded by a newer refresh is
	// discarded; a failed fetch leaves the list unpriced.
	RefreshPrices(ctx context.Context, weekOffset int) (*PriceRefreshResult, error)

	// GetStoreTotals returns per-store totals from the last successful
	// pricing fetch, including the cheapest store.
	GetStoreTotals(ctx context.Context) (*StoreTotalsResult, error)
}
