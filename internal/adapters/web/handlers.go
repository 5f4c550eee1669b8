package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"grocery-planner/internal/app"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	r.Get("/api/grocery-list", h.groceryList)
	r.Get("/api/shopping-list", h.shoppingList)

	r.Post("/api/items/check", h.checkItem)
	r.Post("/api/items/uncheck", h.uncheckItem)
	r.Get("/api/pantry", h.pantry)
	r.Get("/api/purchase-history", h.purchaseHistory)

	r.Get("/api/preferences", h.getPreferences)
	r.Put("/api/preferences", h.updatePreferences)

	r.Post("/api/prices/refresh", h.refreshPrices)
	r.Get("/api/prices/totals", h.storeTotals)

	h.router = r
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}
