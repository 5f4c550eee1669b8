package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"grocery-planner/internal/core"
)

type fakePlanService struct {
	plans map[int]core.WeekPlan
}

func (f *fakePlanService) WeekPlan(_ context.Context, offset int) (core.WeekPlan, error) {
	if plan, ok := f.plans[offset]; ok {
		return plan, nil
	}
	if plan, ok := f.plans[0]; ok {
		return plan, nil
	}
	return nil, core.ErrNoPlan
}

func (f *fakePlanService) SavePlan(_ context.Context, offset int, plan core.WeekPlan) error {
	if f.plans == nil {
		f.plans = make(map[int]core.WeekPlan)
	}
	f.plans[offset] = plan
	return nil
}

type fakePantryService struct {
	inv     core.Inventory
	records []core.PurchaseRecord
	checked []string
}

func (f *fakePantryService) Snapshot(context.Context) (core.Inventory, error) {
	return f.inv, nil
}

func (f *fakePantryService) CheckItem(_ context.Context, name string, amount decimal.Decimal, unit string, _ int) error {
	if f.inv == nil {
		f.inv = core.Inventory{}
	}
	f.inv[name] = amount
	f.checked = append(f.checked, fmt.Sprintf("%s:%s:%s", name, amount, unit))
	return nil
}

func (f *fakePantryService) UncheckItem(_ context.Context, name string) error {
	delete(f.inv, name)
	return nil
}

func (f *fakePantryService) PurchaseHistory(context.Context) ([]core.PurchaseRecord, error) {
	return f.records, nil
}

type fakePreferenceService struct {
	prefs   core.Preferences
	saveErr error
	saved   []core.Preferences
}

func (f *fakePreferenceService) Load(context.Context) (core.Preferences, error) {
	return f.prefs, nil
}

func (f *fakePreferenceService) Save(_ context.Context, prefs core.Preferences) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, prefs)
	return nil
}

type fakeFetcher struct {
	mu      sync.Mutex
	report  core.PricingReport
	err     error
	block   chan struct{}
	calls   int
	zipcode string
}

func (f *fakeFetcher) FetchAnalysis(_ context.Context, _ []core.DemandLine, zipcode string) (core.PricingReport, error) {
	f.mu.Lock()
	f.calls++
	f.zipcode = zipcode
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.report, f.err
}

func dinnerOnlyPlan(ingredients ...string) core.WeekPlan {
	return core.WeekPlan{
		"Monday": {core.SlotDinner: {Name: "Dinner", Ingredients: ingredients}},
	}
}

func newTestService(plans *fakePlanService, pantry *fakePantryService, prefSvc *fakePreferenceService, fetcher *fakeFetcher) ApplicationService {
	return NewAppService(plans, pantry, prefSvc, fetcher, core.NetPerOccurrence)
}

func TestGetGroceryList_Pipeline(t *testing.T) {
	plans := &fakePlanService{plans: map[int]core.WeekPlan{
		0: dinnerOnlyPlan("Chicken Breast", "Broccoli", "Olive Oil"),
	}}
	pantry := &fakePantryService{inv: core.Inventory{
		"olive oil": decimal.RequireFromString("2"),
	}}
	prefSvc := &fakePreferenceService{prefs: core.Preferences{HouseholdSize: 2, Zipcode: "94107"}}
	svc := newTestService(plans, pantry, prefSvc, &fakeFetcher{})

	result, err := svc.GetGroceryList(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetGroceryList failed: %v", err)
	}

	// Two tbsp of olive oil on hand covers both servings and drops out.
	if result.ItemCount != 2 {
		t.Fatalf("ItemCount = %d, want 2", result.ItemCount)
	}
	if result.HouseholdSize != 2 {
		t.Errorf("HouseholdSize = %d, want 2", result.HouseholdSize)
	}
	if result.PricesAvailable {
		t.Error("prices should not be available before a refresh")
	}
	if len(result.Totals) != 0 {
		t.Errorf("expected no totals before a refresh, got %+v", result.Totals)
	}

	// Protein groups ahead of vegetables.
	if len(result.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %+v", result.Categories)
	}
	if result.Categories[0].Category != core.CategoryProtein {
		t.Errorf("first category = %s, want protein", result.Categories[0].Category)
	}
	if result.Categories[1].Category != core.CategoryVegetables {
		t.Errorf("second category = %s, want vegetables", result.Categories[1].Category)
	}
}

func TestGetGroceryList_NoPlanYieldsEmptyList(t *testing.T) {
	svc := newTestService(&fakePlanService{}, &fakePantryService{}, &fakePreferenceService{prefs: core.DefaultPreferences()}, &fakeFetcher{})

	result, err := svc.GetGroceryList(context.Background(), 3)
	if err != nil {
		t.Fatalf("expected empty result, got error: %v", err)
	}
	if result.ItemCount != 0 || len(result.Categories) != 0 {
		t.Errorf("expected empty list, got %+v", result)
	}
}

func TestGetShoppingList_CheckedSubset(t *testing.T) {
	plans := &fakePlanService{plans: map[int]core.WeekPlan{
		0: dinnerOnlyPlan("Chicken Breast", "Broccoli", "Banana"),
	}}
	prefSvc := &fakePreferenceService{prefs: core.DefaultPreferences()}
	svc := newTestService(plans, &fakePantryService{}, prefSvc, &fakeFetcher{})

	result, err := svc.GetShoppingList(context.Background(), 0, []string{"Broccoli", "Chicken Breast"})
	if err != nil {
		t.Fatalf("GetShoppingList failed: %v", err)
	}
	if result.ItemCount != 2 {
		t.Fatalf("ItemCount = %d, want 2", result.ItemCount)
	}

	// Aisle walking order: produce before meat.
	if len(result.Aisles) != 2 {
		t.Fatalf("expected 2 aisles, got %+v", result.Aisles)
	}
	if result.Aisles[0].Aisle != core.AisleProduce || result.Aisles[0].Lines[0].Name != "Broccoli" {
		t.Errorf("first aisle = %+v, want produce with broccoli", result.Aisles[0])
	}
	if result.Aisles[1].Aisle != core.AisleMeatSeafood {
		t.Errorf("second aisle = %s, want meat & seafood", result.Aisles[1].Aisle)
	}
}

func TestCheckItem_FallsBackToKnowledgeBase(t *testing.T) {
	pantry := &fakePantryService{}
	svc := newTestService(&fakePlanService{}, pantry, &fakePreferenceService{prefs: core.DefaultPreferences()}, &fakeFetcher{})

	err := svc.CheckItem(context.Background(), CheckItemRequest{Name: "greek yogurt"})
	if err != nil {
		t.Fatalf("CheckItem failed: %v", err)
	}
	if len(pantry.checked) != 1 || pantry.checked[0] != "greek yogurt:1:cup" {
		t.Errorf("expected knowledge-base amount and unit, got %v", pantry.checked)
	}

	if err := svc.CheckItem(context.Background(), CheckItemRequest{}); err == nil {
		t.Error("expected an error for a blank item name")
	}
}

func TestUpdatePreferences(t *testing.T) {
	prefSvc := &fakePreferenceService{prefs: core.DefaultPreferences()}
	svc := newTestService(&fakePlanService{}, &fakePantryService{}, prefSvc, &fakeFetcher{})

	size := 4
	store := "kroger"
	result, err := svc.UpdatePreferences(context.Background(), UpdatePreferencesRequest{
		HouseholdSize: &size,
		SelectedStore: &store,
	})
	if err != nil {
		t.Fatalf("UpdatePreferences failed: %v", err)
	}
	if result.Preferences.HouseholdSize != 4 || result.Preferences.SelectedStore != "kroger" {
		t.Errorf("unexpected preferences: %+v", result.Preferences)
	}
	if len(prefSvc.saved) != 1 {
		t.Fatalf("expected one persisted write, got %d", len(prefSvc.saved))
	}

	// Invalid updates are rejected before anything is stored.
	badStore := "target"
	if _, err := svc.UpdatePreferences(context.Background(), UpdatePreferencesRequest{SelectedStore: &badStore}); err == nil {
		t.Error("expected an error for an unsupported store")
	}
	if len(prefSvc.saved) != 1 {
		t.Errorf("invalid update should not persist, got %d writes", len(prefSvc.saved))
	}
}

func TestUpdatePreferences_WriteFailureKeepsMemoryCopy(t *testing.T) {
	prefSvc := &fakePreferenceService{prefs: core.DefaultPreferences(), saveErr: errors.New("db down")}
	svc := newTestService(&fakePlanService{}, &fakePantryService{}, prefSvc, &fakeFetcher{})

	zip := "30301"
	if _, err := svc.UpdatePreferences(context.Background(), UpdatePreferencesRequest{Zipcode: &zip}); err != nil {
		t.Fatalf("a failed write should not fail the update: %v", err)
	}

	// The in-memory copy stays authoritative despite the failed write.
	got, err := svc.GetPreferences(context.Background())
	if err != nil {
		t.Fatalf("GetPreferences failed: %v", err)
	}
	if got.Preferences.Zipcode != "30301" {
		t.Errorf("Zipcode = %q, want 30301", got.Preferences.Zipcode)
	}
}

func samplePricingReport() core.PricingReport {
	return core.PricingReport{
		core.StoreWalmart: {
			Name:        "Walmart",
			ItemPrices:  []core.ItemPrice{{Name: "Chicken Breast", Price: decimal.RequireFromString("5.99")}},
			Total:       decimal.RequireFromString("42.37"),
			DeliveryFee: decimal.RequireFromString("7.95"),
		},
		core.StoreKroger: {
			Name:  "Kroger",
			Total: decimal.RequireFromString("44.10"),
		},
	}
}

func TestRefreshPrices(t *testing.T) {
	plans := &fakePlanService{plans: map[int]core.WeekPlan{0: dinnerOnlyPlan("Chicken Breast")}}
	fetcher := &fakeFetcher{report: samplePricingReport()}
	prefSvc := &fakePreferenceService{prefs: core.Preferences{HouseholdSize: 1, Zipcode: "94107"}}
	svc := newTestService(plans, &fakePantryService{}, prefSvc, fetcher)

	result, err := svc.RefreshPrices(context.Background(), 0)
	if err != nil {
		t.Fatalf("RefreshPrices failed: %v", err)
	}
	if !result.Available || result.Superseded {
		t.Fatalf("unexpected refresh result: %+v", result)
	}
	if len(result.Totals) != 2 || result.Totals[0].Store != core.StoreWalmart {
		t.Errorf("unexpected totals: %+v", result.Totals)
	}
	if fetcher.zipcode != "94107" {
		t.Errorf("fetcher got zipcode %q, want 94107", fetcher.zipcode)
	}

	// Prices now flow into the grocery list.
	list, err := svc.GetGroceryList(context.Background(), 0)
	if err != nil {
		t.Fatalf("GetGroceryList failed: %v", err)
	}
	if !list.PricesAvailable {
		t.Fatal("expected prices to be available after a refresh")
	}
	line := list.Categories[0].Lines[0]
	if price, ok := line.Prices[core.StoreWalmart]; !ok || !price.Equal(decimal.RequireFromString("5.99")) {
		t.Errorf("unexpected walmart price on %q: %+v", line.Name, line.Prices)
	}
	if _, ok := line.Prices[core.StoreKroger]; ok {
		t.Error("kroger has no quote for this item and must stay absent")
	}
}

func TestRefreshPrices_FailureClearsPrices(t *testing.T) {
	plans := &fakePlanService{plans: map[int]core.WeekPlan{0: dinnerOnlyPlan("Chicken Breast")}}
	fetcher := &fakeFetcher{report: samplePricingReport()}
	prefSvc := &fakePreferenceService{prefs: core.Preferences{HouseholdSize: 1, Zipcode: "94107"}}
	svc := newTestService(plans, &fakePantryService{}, prefSvc, fetcher)

	if _, err := svc.RefreshPrices(context.Background(), 0); err != nil {
		t.Fatalf("initial refresh failed: %v", err)
	}

	fetcher.mu.Lock()
	fetcher.err = errors.New("upstream timeout")
	fetcher.mu.Unlock()

	result, err := svc.RefreshPrices(context.Background(), 0)
	if err != nil {
		t.Fatalf("a failed fetch should degrade, not error: %v", err)
	}
	if result.Available {
		t.Error("prices should be cleared after a failed refresh")
	}

	totals, err := svc.GetStoreTotals(context.Background())
	if err != nil {
		t.Fatalf("GetStoreTotals failed: %v", err)
	}
	if totals.Available {
		t.Errorf("stale totals survived a failed refresh: %+v", totals)
	}
}

func TestRefreshPrices_SlowFetchIsSuperseded(t *testing.T) {
	plans := &fakePlanService{plans: map[int]core.WeekPlan{0: dinnerOnlyPlan("Chicken Breast")}}
	prefSvc := &fakePreferenceService{prefs: core.Preferences{HouseholdSize: 1, Zipcode: "94107"}}

	block := make(chan struct{})
	slow := &fakeFetcher{report: core.PricingReport{
		core.StoreKroger: {Name: "Kroger", Total: decimal.RequireFromString("99.99")},
	}, block: block}
	svc := newTestService(plans, &fakePantryService{}, prefSvc, slow)

	done := make(chan *PriceRefreshResult, 1)
	go func() {
		result, err := svc.RefreshPrices(context.Background(), 0)
		if err != nil {
			t.Errorf("slow refresh errored: %v", err)
		}
		done <- result
	}()

	// Wait until the slow fetch is in flight.
	for {
		slow.mu.Lock()
		started := slow.calls > 0
		slow.mu.Unlock()
		if started {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// A second refresh completes while the first is blocked.
	slow.mu.Lock()
	slow.block = nil
	slow.report = samplePricingReport()
	slow.mu.Unlock()
	fresh, err := svc.RefreshPrices(context.Background(), 0)
	if err != nil {
		t.Fatalf("fresh refresh failed: %v", err)
	}
	if !fresh.Available {
		t.Fatal("fresh refresh should report prices")
	}

	close(block)
	stale := <-done
	if !stale.Superseded {
		t.Fatal("slow refresh should report itself superseded")
	}

	// The fresh report stays live; the superseded refresh stored nothing.
	totals, err := svc.GetStoreTotals(context.Background())
	if err != nil {
		t.Fatalf("GetStoreTotals failed: %v", err)
	}
	if len(totals.Totals) != 2 || totals.CheapestStore != core.StoreKroger {
		t.Errorf("unexpected totals after superseded refresh: %+v", totals)
	}
}

func TestGetStoreTotals_CheapestIncludesDeliveryFee(t *testing.T) {
	plans := &fakePlanService{plans: map[int]core.WeekPlan{0: dinnerOnlyPlan("Chicken Breast")}}
	fetcher := &fakeFetcher{report: samplePricingReport()}
	prefSvc := &fakePreferenceService{prefs: core.Preferences{HouseholdSize: 1, Zipcode: "94107", SelectedStore: "cheapest"}}
	svc := newTestService(plans, &fakePantryService{}, prefSvc, fetcher)

	// Walmart's cart is cheaper but its delivery fee flips the winner:
	// 42.37 + 7.95 = 50.32 against kroger's 44.10 flat.
	if _, err := svc.RefreshPrices(context.Background(), 0); err != nil {
		t.Fatalf("RefreshPrices failed: %v", err)
	}

	totals, err := svc.GetStoreTotals(context.Background())
	if err != nil {
		t.Fatalf("GetStoreTotals failed: %v", err)
	}
	if !totals.Available {
		t.Fatal("expected totals after a refresh")
	}
	if totals.CheapestStore != core.StoreKroger {
		t.Errorf("CheapestStore = %s, want kroger", totals.CheapestStore)
	}
	if totals.SelectedStore != "cheapest" {
		t.Errorf("SelectedStore = %q, want cheapest", totals.SelectedStore)
	}
}

func TestGetPantry_SortedByName(t *testing.T) {
	pantry := &fakePantryService{inv: core.Inventory{
		"olive oil": decimal.RequireFromString("1"),
		"broccoli":  decimal.RequireFromString("2"),
		"eggs":      decimal.RequireFromString("12"),
	}}
	svc := newTestService(&fakePlanService{}, pantry, &fakePreferenceService{prefs: core.DefaultPreferences()}, &fakeFetcher{})

	result, err := svc.GetPantry(context.Background())
	if err != nil {
		t.Fatalf("GetPantry failed: %v", err)
	}
	want := []string{"broccoli", "eggs", "olive oil"}
	if len(result.Items) != len(want) {
		t.Fatalf("expected %d items, got %+v", len(want), result.Items)
	}
	for i, name := range want {
		if result.Items[i].Name != name {
			t.Errorf("item %d = %q, want %q", i, result.Items[i].Name, name)
		}
	}
}
