package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PantryService is the inventory ledger: it tracks on-hand amounts per
// ingredient and the latest purchase event per ingredient. Checking a
// shopping-list item records a purchase; unchecking deletes the pantry
// row entirely (the stored quantity is discarded, not decremented).
type PantryService interface {
	// Snapshot returns current on-hand amounts keyed by lowercase name.
	Snapshot(ctx context.Context) (Inventory, error)
	// CheckItem records a purchase: upserts the pantry amount and
	// overwrites the ingredient's purchase-history record. weekID is
	// the week offset active at check time.
	CheckItem(ctx context.Context, name string, amount decimal.Decimal, unit string, weekID int) error
	// UncheckItem deletes the pantry row for the ingredient. Unchecking
	// an ingredient that was never checked is a no-op.
	UncheckItem(ctx context.Context, name string) error
	// PurchaseHistory returns the latest purchase record per ingredient,
	// most recent first.
	PurchaseHistory(ctx context.Context) ([]PurchaseRecord, error)
}

type pantryService struct {
	pool *pgxpool.Pool
}

func NewPantryService(pool *pgxpool.Pool) PantryService {
	return &pantryService{pool: pool}
}

func (s *pantryService) Snapshot(ctx context.Context) (Inventory, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, amount
		FROM pantry_items
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pantry items: %w", err)
	}
	defer rows.Close()

	inv := make(Inventory)
	for rows.Next() {
		var name string
		var amount decimal.Decimal
		if err := rows.Scan(&name, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan pantry item: %w", err)
		}
		inv[name] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pantry items: %w", err)
	}
	return inv, nil
}

func (s *pantryService) CheckItem(ctx context.Context, name string, amount decimal.Decimal, unit string, weekID int) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return fmt.Errorf("ingredient name must not be empty")
	}
	if amount.IsNegative() {
		return fmt.Errorf("pantry amount cannot be negative, got %s", amount)
	}
	if unit == "" {
		unit = UnitFor(name)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Overwrite, never accumulate: re-checking replaces the amount.
	_, err = tx.Exec(ctx, `
		INSERT INTO pantry_items (name, amount, unit)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET amount = $2, unit = $3, updated_at = NOW()
	`, key, amount, unit)
	if err != nil {
		return fmt.Errorf("failed to upsert pantry item %s: %w", key, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO purchase_history (name, event_id, amount, unit, purchase_date, week_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET
			event_id = $2, amount = $3, unit = $4, purchase_date = $5, week_id = $6
	`, key, uuid.New(), amount, unit, time.Now().UTC(), weekID)
	if err != nil {
		return fmt.Errorf("failed to record purchase for %s: %w", key, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit check for %s: %w", key, err)
	}
	return nil
}

func (s *pantryService) UncheckItem(ctx context.Context, name string) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return fmt.Errorf("ingredient name must not be empty")
	}
	_, err := s.pool.Exec(ctx, "DELETE FROM pantry_items WHERE name = $1", key)
	if err != nil {
		return fmt.Errorf("failed to delete pantry item %s: %w", key, err)
	}
	return nil
}

func (s *pantryService) PurchaseHistory(ctx context.Context) ([]PurchaseRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT name, event_id, amount, unit, purchase_date, week_id
		FROM purchase_history
		ORDER BY purchase_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase history: %w", err)
	}
	defer rows.Close()

	var records []PurchaseRecord
	for rows.Next() {
		var r PurchaseRecord
		var eventID uuid.UUID
		var purchasedAt time.Time
		if err := rows.Scan(&r.Name, &eventID, &r.Amount, &r.Unit, &purchasedAt, &r.WeekID); err != nil {
			return nil, fmt.Errorf("failed to scan purchase record: %w", err)
		}
		r.EventID = eventID.String()
		r.PurchaseDate = purchasedAt.UTC().Format(time.RFC3339)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase history: %w", err)
	}
	return records, nil
}
