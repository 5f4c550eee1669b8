package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"grocery-planner/internal/core"
)

// PriceFetcher is the boundary to the external pricing service.
// *pricing.Client satisfies it.
type PriceFetcher interface {
	FetchAnalysis(ctx context.Context, lines []core.DemandLine, zipcode string) (core.PricingReport, error)
}

type appService struct {
	plans   core.PlanService
	pantry  core.PantryService
	prefSvc core.PreferenceService
	fetcher PriceFetcher
	netting core.NettingMode

	mu          sync.Mutex
	prefs       core.Preferences
	prefsLoaded bool
	priceGen    uint64
	report      core.PricingReport
	priced      bool
}

// NewAppService constructs an appService that satisfies ApplicationService.
// netting selects the inventory-netting arithmetic for consolidation.
func NewAppService(
	plans core.PlanService,
	pantry core.PantryService,
	prefSvc core.PreferenceService,
	fetcher PriceFetcher,
	netting core.NettingMode,
) ApplicationService {
	return &appService{
		plans:   plans,
		pantry:  pantry,
		prefSvc: prefSvc,
		fetcher: fetcher,
		netting: netting,
	}
}

// preferences returns the in-memory preferences, loading them from the
// store on first use. The in-memory copy stays authoritative for the
// session even if a later write fails.
func (s *appService) preferences(ctx context.Context) (core.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prefsLoaded {
		return s.prefs, nil
	}
	prefs, err := s.prefSvc.Load(ctx)
	if err != nil {
		return core.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	s.prefs = prefs
	s.prefsLoaded = true
	return prefs, nil
}

// demandLines runs the consolidation pipeline for a week offset. A week
// with no stored plan yields an empty list, not an error.
func (s *appService) demandLines(ctx context.Context, weekOffset int) ([]core.DemandLine, core.Preferences, error) {
	prefs, err := s.preferences(ctx)
	if err != nil {
		return nil, core.Preferences{}, err
	}

	plan, err := s.plans.WeekPlan(ctx, weekOffset)
	if errors.Is(err, core.ErrNoPlan) {
		return nil, prefs, nil
	}
	if err != nil {
		return nil, core.Preferences{}, err
	}

	inv, err := s.pantry.Snapshot(ctx)
	if err != nil {
		return nil, core.Preferences{}, err
	}

	return core.Consolidate(plan, prefs.HouseholdSize, inv, s.netting), prefs, nil
}

func (s *appService) GetGroceryList(ctx context.Context, weekOffset int) (*GroceryListResult, error) {
	lines, prefs, err := s.demandLines(ctx, weekOffset)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	report := s.report
	priced := s.priced
	s.mu.Unlock()

	result := &GroceryListResult{
		WeekOffset:      weekOffset,
		HouseholdSize:   prefs.HouseholdSize,
		ItemCount:       len(lines),
		PricesAvailable: priced,
	}
	for _, group := range core.GroupByCategory(lines) {
		result.Categories = append(result.Categories, PricedCategory{
			Category: group.Category,
			Lines:    core.AttachPrices(group.Lines, report),
		})
	}
	if priced {
		result.Totals = core.StoreTotals(report)
	}
	return result, nil
}

func (s *appService) GetShoppingList(ctx context.Context, weekOffset int, checked []string) (*ShoppingListResult, error) {
	lines, _, err := s.demandLines(ctx, weekOffset)
	if err != nil {
		return nil, err
	}

	checkedSet := make(map[string]bool, len(checked))
	for _, name := range checked {
		checkedSet[name] = true
	}
	selected := core.SelectLines(lines, checkedSet)

	return &ShoppingListResult{
		WeekOffset: weekOffset,
		Aisles:     core.GroupByAisle(selected),
		ItemCount:  len(selected),
	}, nil
}

func (s *appService) CheckItem(ctx context.Context, req CheckItemRequest) error {
	if req.Name == "" {
		return fmt.Errorf("item name required")
	}
	amount := req.Amount
	unit := req.Unit
	if amount.IsZero() {
		// Fall back to the knowledge base when the caller sends the
		// name only.
		amount = core.AmountPerPerson(req.Name)
	}
	if unit == "" {
		unit = core.UnitFor(req.Name)
	}
	return s.pantry.CheckItem(ctx, req.Name, amount, unit, req.WeekOffset)
}

func (s *appService) UncheckItem(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("item name required")
	}
	return s.pantry.UncheckItem(ctx, name)
}

func (s *appService) GetPantry(ctx context.Context) (*PantryResult, error) {
	inv, err := s.pantry.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]PantryItem, 0, len(inv))
	for name, amount := range inv {
		items = append(items, PantryItem{Name: name, Amount: amount})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return &PantryResult{Items: items}, nil
}

func (s *appService) GetPurchaseHistory(ctx context.Context) (*PurchaseHistoryResult, error) {
	records, err := s.pantry.PurchaseHistory(ctx)
	if err != nil {
		return nil, err
	}
	return &PurchaseHistoryResult{Records: records}, nil
}

func (s *appService) GetPreferences(ctx context.Context) (*PreferencesResult, error) {
	prefs, err := s.preferences(ctx)
	if err != nil {
		return nil, err
	}
	return &PreferencesResult{Preferences: prefs}, nil
}

func (s *appService) UpdatePreferences(ctx context.Context, req UpdatePreferencesRequest) (*PreferencesResult, error) {
	prefs, err := s.preferences(ctx)
	if err != nil {
		return nil, err
	}

	if req.HouseholdSize != nil {
		prefs.HouseholdSize = *req.HouseholdSize
	}
	if req.Zipcode != nil {
		prefs.Zipcode = *req.Zipcode
	}
	if req.SelectedStore != nil {
		prefs.SelectedStore = *req.SelectedStore
	}
	if err := prefs.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.prefs = prefs
	s.prefsLoaded = true
	s.mu.Unlock()

	// Fire-and-forget: the in-memory copy is authoritative for the
	// session; the next successful write reconciles.
	if err := s.prefSvc.Save(ctx, prefs); err != nil {
		log.Printf("preferences write failed: %v", err)
	}

	return &PreferencesResult{Preferences: prefs}, nil
}

func (s *appService) RefreshPrices(ctx context.Context, weekOffset int) (*PriceRefreshResult, error) {
	lines, prefs, err := s.demandLines(ctx, weekOffset)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.priceGen++
	gen := s.priceGen
	s.mu.Unlock()

	report, fetchErr := s.fetcher.FetchAnalysis(ctx, lines, prefs.Zipcode)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.priceGen {
		// A newer refresh started while this one was in flight; its
		// result wins regardless of arrival order.
		return &PriceRefreshResult{Available: s.priced, Superseded: true}, nil
	}

	if fetchErr != nil {
		log.Printf("pricing fetch failed: %v", fetchErr)
		s.report = nil
		s.priced = false
		return &PriceRefreshResult{Available: false}, nil
	}

	s.report = report
	s.priced = len(report) > 0
	return &PriceRefreshResult{
		Available: s.priced,
		Totals:    core.StoreTotals(report),
	}, nil
}

func (s *appService) GetStoreTotals(ctx context.Context) (*StoreTotalsResult, error) {
	prefs, err := s.preferences(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	report := s.report
	priced := s.priced
	s.mu.Unlock()

	if !priced {
		return &StoreTotalsResult{Available: false, SelectedStore: prefs.SelectedStore}, nil
	}

	totals := core.StoreTotals(report)
	result := &StoreTotalsResult{
		Available:     true,
		Totals:        totals,
		SelectedStore: prefs.SelectedStore,
	}
	if cheapest, ok := core.CheapestStore(totals); ok {
		result.CheapestStore = cheapest
	}
	return result, nil
}
