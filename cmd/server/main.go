package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	webAdapter "grocery-planner/internal/adapters/web"
	"grocery-planner/internal/app"
	"grocery-planner/internal/core"
	"grocery-planner/internal/db"
	"grocery-planner/internal/pricing"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	planService := core.NewPlanService(pool)
	pantryService := core.NewPantryService(pool)
	prefService := core.NewPreferenceService(pool)

	pricingURL := os.Getenv("PRICING_API_URL")
	if pricingURL == "" {
		log.Println("Warning: PRICING_API_URL is not set; price refresh will be unavailable")
	}
	priceClient := pricing.NewClient(pricingURL)

	netting := core.NetPerOccurrence
	if os.Getenv("NETTING_MODE") == "weekly" {
		netting = core.NetWeekly
	}

	svc := app.NewAppService(planService, pantryService, prefService, priceClient, netting)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
