package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"grocery-planner/internal/app"
)

// weekOffsetParam parses the optional ?week=N query parameter,
// defaulting to the current week.
func weekOffsetParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("week")
	if raw == "" {
		return 0, true
	}
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return offset, true
}

// groceryList handles GET /api/grocery-list?week=N.
func (h *Handler) groceryList(w http.ResponseWriter, r *http.Request) {
	offset, ok := weekOffsetParam(r)
	if !ok {
		writeError(w, r, "week must be an integer", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.GetGroceryList(r.Context(), offset)
	if err != nil {
		writeError(w, r, "failed to build grocery list: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// shoppingList handles GET /api/shopping-list?week=N&item=A&item=B.
// The repeated item parameters are the caller's checked set.
func (h *Handler) shoppingList(w http.ResponseWriter, r *http.Request) {
	offset, ok := weekOffsetParam(r)
	if !ok {
		writeError(w, r, "week must be an integer", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	checked := r.URL.Query()["item"]

	result, err := h.svc.GetShoppingList(r.Context(), offset, checked)
	if err != nil {
		writeError(w, r, "failed to build shopping list: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

type checkItemBody struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
	Week   int             `json:"week"`
}

// checkItem handles POST /api/items/check.
func (h *Handler) checkItem(w http.ResponseWriter, r *http.Request) {
	var body checkItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	if body.Name == "" {
		writeError(w, r, "name is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	err := h.svc.CheckItem(r.Context(), app.CheckItemRequest{
		Name:       body.Name,
		Amount:     body.Amount,
		Unit:       body.Unit,
		WeekOffset: body.Week,
	})
	if err != nil {
		writeError(w, r, "failed to check item: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "checked", "name": body.Name})
}

type uncheckItemBody struct {
	Name string `json:"name"`
}

// uncheckItem handles POST /api/items/uncheck.
func (h *Handler) uncheckItem(w http.ResponseWriter, r *http.Request) {
	var body uncheckItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	if body.Name == "" {
		writeError(w, r, "name is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	if err := h.svc.UncheckItem(r.Context(), body.Name); err != nil {
		writeError(w, r, "failed to uncheck item: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "unchecked", "name": body.Name})
}

// pantry handles GET /api/pantry.
func (h *Handler) pantry(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetPantry(r.Context())
	if err != nil {
		writeError(w, r, "failed to load pantry: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// purchaseHistory handles GET /api/purchase-history.
func (h *Handler) purchaseHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetPurchaseHistory(r.Context())
	if err != nil {
		writeError(w, r, "failed to load purchase history: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// getPreferences handles GET /api/preferences.
func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetPreferences(r.Context())
	if err != nil {
		writeError(w, r, "failed to load preferences: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

type preferencesBody struct {
	HouseholdSize *int    `json:"household_size"`
	Zipcode       *string `json:"zipcode"`
	SelectedStore *string `json:"selected_store"`
}

// updatePreferences handles PUT /api/preferences.
func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var body preferencesBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.UpdatePreferences(r.Context(), app.UpdatePreferencesRequest{
		HouseholdSize: body.HouseholdSize,
		Zipcode:       body.Zipcode,
		SelectedStore: body.SelectedStore,
	})
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, result)
}

// refreshPrices handles POST /api/prices/refresh?week=N.
func (h *Handler) refreshPrices(w http.ResponseWriter, r *http.Request) {
	offset, ok := weekOffsetParam(r)
	if !ok {
		writeError(w, r, "week must be an integer", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.RefreshPrices(r.Context(), offset)
	if err != nil {
		writeError(w, r, "failed to refresh prices: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

// storeTotals handles GET /api/prices/totals.
func (h *Handler) storeTotals(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetStoreTotals(r.Context())
	if err != nil {
		writeError(w, r, "failed to load store totals: "+err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}
