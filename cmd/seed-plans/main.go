// seed-plans is a one-shot tool to load the built-in week-0 meal plan
// into the database. Run it against a fresh database, or with -force to
// overwrite an existing current-week plan.
//
// Usage: go run ./cmd/seed-plans [-force]
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"grocery-planner/internal/core"
	"grocery-planner/internal/db"
)

func main() {
	force := flag.Bool("force", false, "overwrite an existing week-0 plan")
	flag.Parse()

	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	plans := core.NewPlanService(pool)

	if !*force {
		if _, err := plans.WeekPlan(ctx, 0); err == nil {
			log.Println("Week-0 plan already exists; use -force to overwrite.")
			return
		} else if !errors.Is(err, core.ErrNoPlan) {
			log.Fatalf("Failed to check existing plan: %v", err)
		}
	}

	if err := plans.SavePlan(ctx, 0, core.DefaultWeekPlan()); err != nil {
		log.Fatalf("Failed to seed week-0 plan: %v", err)
	}
	log.Println("Seeded default week-0 meal plan.")
}
