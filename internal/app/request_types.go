package app

import "github.com/shopspring/decimal"

// CheckItemRequest is the input for marking a shopping-list item as
// purchased. Amount and Unit default to the demand line's values when
// the caller supplies the name only.
type CheckItemRequest struct {
	Name       string
	Amount     decimal.Decimal
	Unit       string
	WeekOffset int
}

// UpdatePreferencesRequest carries new user settings. Nil fields keep
// their current values.
type UpdatePreferencesRequest struct {
	HouseholdSize *int
	Zipcode       *string
	SelectedStore *string
}
