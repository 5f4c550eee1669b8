package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NettingMode controls how pantry inventory is subtracted from demand.
type NettingMode int

const (
	// NetPerOccurrence subtracts inventory independently at every
	// occurrence of an ingredient across the week. An ingredient used
	// in three meals nets the same on-hand amount three times. This
	// matches the historical behavior and is the default.
	NetPerOccurrence NettingMode = iota

	// NetWeekly subtracts inventory once from the summed weekly demand.
	NetWeekly
)

// Consolidate walks every meal of the week and produces one demand line
// per distinct lowercase ingredient name, scaled by household size and
// net of the inventory snapshot. Lines whose remaining amount is zero
// are excluded entirely. Output preserves first-occurrence order; the
// organizers impose display ordering.
//
// householdSize is clamped to a minimum of 1.
func Consolidate(plan WeekPlan, householdSize int, inv Inventory, mode NettingMode) []DemandLine {
	if householdSize < 1 {
		householdSize = 1
	}
	household := decimal.NewFromInt(int64(householdSize))

	byKey := make(map[string]*DemandLine)
	var order []string

	for _, day := range WeekDays {
		dayPlan, ok := plan[day]
		if !ok {
			continue
		}
		for _, slot := range MealSlots {
			meal, ok := dayPlan[slot]
			if !ok {
				continue
			}
			for _, ingredient := range meal.Ingredients {
				key := strings.ToLower(strings.TrimSpace(ingredient))
				if key == "" {
					continue
				}

				baseAmount := AmountPerPerson(ingredient).Mul(household)
				onHand := inv[key]
				needed := baseAmount.Sub(onHand)
				if needed.IsNegative() {
					needed = decimal.Zero
				}

				if line, exists := byKey[key]; exists {
					line.TotalNeeded = line.TotalNeeded.Add(baseAmount)
					line.Amount = line.Amount.Add(needed)
					continue
				}

				byKey[key] = &DemandLine{
					Name:            strings.TrimSpace(ingredient),
					Amount:          needed,
					TotalNeeded:     baseAmount,
					Unit:            UnitFor(ingredient),
					Category:        CategoryFor(ingredient),
					InInventory:     onHand.IsPositive(),
					InventoryAmount: onHand,
				}
				order = append(order, key)
			}
		}
	}

	lines := make([]DemandLine, 0, len(order))
	for _, key := range order {
		line := byKey[key]
		if mode == NetWeekly {
			line.Amount = line.TotalNeeded.Sub(line.InventoryAmount)
			if line.Amount.IsNegative() {
				line.Amount = decimal.Zero
			}
		}
		if line.Amount.IsPositive() {
			lines = append(lines, *line)
		}
	}
	return lines
}
