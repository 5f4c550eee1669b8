package core

import "github.com/shopspring/decimal"

// Store identifies a supported grocery store.
type Store string

const (
	StoreWalmart    Store = "walmart"
	StoreKroger     Store = "kroger"
	StoreWholeFoods Store = "wholefoods"
)

// StoreOrder is the fixed display order for store columns and totals.
var StoreOrder = []Store{StoreWalmart, StoreKroger, StoreWholeFoods}

// Label returns the store's display name.
func (s Store) Label() string {
	switch s {
	case StoreWalmart:
		return "Walmart"
	case StoreKroger:
		return "Kroger"
	case StoreWholeFoods:
		return "Whole Foods"
	}
	return string(s)
}

// ValidStore reports whether s names a supported store.
func ValidStore(s Store) bool {
	for _, store := range StoreOrder {
		if store == s {
			return true
		}
	}
	return false
}

// ItemPrice is a single store's quote for one ingredient, matched to a
// demand line by exact display-name equality.
type ItemPrice struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// StoreQuote is the pricing service's result for one store: per-item
// quotes plus the pre-aggregated cart total and delivery fee. Totals
// are computed upstream (they may include tax and substitutions) and
// are only passed through here.
type StoreQuote struct {
	Name        string          `json:"name"`
	ItemPrices  []ItemPrice     `json:"item_prices"`
	Total       decimal.Decimal `json:"total"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
}

// PricingReport holds quotes for whichever stores the pricing service
// returned. Stores with no data are simply absent.
type PricingReport map[Store]StoreQuote

// PricedLine is a demand line annotated with per-store prices. A store
// absent from Prices has no quote for this item and must render as
// omitted, not as zero.
type PricedLine struct {
	DemandLine
	Prices map[Store]decimal.Decimal `json:"prices,omitempty"`
}

// AttachPrices joins store quotes onto demand lines by exact name
// match. A nil or empty report yields lines with no prices attached.
func AttachPrices(lines []DemandLine, report PricingReport) []PricedLine {
	quoteIndex := make(map[Store]map[string]decimal.Decimal, len(report))
	for store, quote := range report {
		index := make(map[string]decimal.Decimal, len(quote.ItemPrices))
		for _, ip := range quote.ItemPrices {
			index[ip.Name] = ip.Price
		}
		quoteIndex[store] = index
	}

	priced := make([]PricedLine, 0, len(lines))
	for _, line := range lines {
		pl := PricedLine{DemandLine: line}
		for store, index := range quoteIndex {
			if price, ok := index[line.Name]; ok {
				if pl.Prices == nil {
					pl.Prices = make(map[Store]decimal.Decimal)
				}
				pl.Prices[store] = price
			}
		}
		priced = append(priced, pl)
	}
	return priced
}

// StoreTotal is a per-store cart total for display.
type StoreTotal struct {
	Store       Store           `json:"store"`
	Name        string          `json:"name"`
	Total       decimal.Decimal `json:"total"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
}

// StoreTotals extracts per-store totals from a report in StoreOrder.
// Stores absent from the report are omitted.
func StoreTotals(report PricingReport) []StoreTotal {
	totals := make([]StoreTotal, 0, len(report))
	for _, store := range StoreOrder {
		quote, ok := report[store]
		if !ok {
			continue
		}
		totals = append(totals, StoreTotal{
			Store:       store,
			Name:        store.Label(),
			Total:       quote.Total,
			DeliveryFee: quote.DeliveryFee,
		})
	}
	return totals
}

// CheapestStore returns the store with the lowest total including
// delivery fee. ok is false when totals is empty.
func CheapestStore(totals []StoreTotal) (Store, bool) {
	if len(totals) == 0 {
		return "", false
	}
	best := totals[0]
	for _, t := range totals[1:] {
		if t.Total.Add(t.DeliveryFee).LessThan(best.Total.Add(best.DeliveryFee)) {
			best = t
		}
	}
	return best.Store, true
}
