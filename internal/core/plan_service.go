package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoPlan is returned when neither the requested week offset nor the
// current week (offset 0) has a stored plan.
var ErrNoPlan = errors.New("no week plan stored")

// PlanService stores week plans keyed by integer week offset from the
// current week (0 = current, negative = past, positive = future).
type PlanService interface {
	// WeekPlan returns the plan for the given offset, falling back to
	// offset 0 when the offset has no stored plan. Returns ErrNoPlan
	// when offset 0 is missing too.
	WeekPlan(ctx context.Context, offset int) (WeekPlan, error)
	// SavePlan stores or replaces the plan for the given offset.
	SavePlan(ctx context.Context, offset int, plan WeekPlan) error
}

type planService struct {
	pool *pgxpool.Pool
}

func NewPlanService(pool *pgxpool.Pool) PlanService {
	return &planService{pool: pool}
}

func (s *planService) WeekPlan(ctx context.Context, offset int) (WeekPlan, error) {
	plan, err := s.load(ctx, offset)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if offset == 0 {
		return nil, ErrNoPlan
	}

	// Undefined offsets fall back to the current week's plan.
	plan, err = s.load(ctx, 0)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoPlan
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) load(ctx context.Context, offset int) (WeekPlan, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		"SELECT plan FROM week_plans WHERE week_offset = $1", offset,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load week plan %d: %w", offset, err)
	}

	var plan WeekPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal week plan %d: %w", offset, err)
	}
	return plan, nil
}

func (s *planService) SavePlan(ctx context.Context, offset int, plan WeekPlan) error {
	if len(plan) == 0 {
		return fmt.Errorf("week plan must not be empty")
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal week plan %d: %w", offset, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO week_plans (week_offset, plan)
		VALUES ($1, $2)
		ON CONFLICT (week_offset) DO UPDATE SET plan = $2, updated_at = NOW()
	`, offset, raw)
	if err != nil {
		return fmt.Errorf("failed to save week plan %d: %w", offset, err)
	}
	return nil
}
