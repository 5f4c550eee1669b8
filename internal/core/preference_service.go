package core

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Preferences are the user's persisted settings. SelectedStore is one
// of the store codes, "cheapest", or empty for no selection.
type Preferences struct {
	HouseholdSize int    `json:"household_size"`
	Zipcode       string `json:"zipcode"`
	SelectedStore string `json:"selected_store"`
}

// DefaultPreferences returns the settings used before the user has
// saved anything: a single-person household, no zipcode, no store.
func DefaultPreferences() Preferences {
	return Preferences{HouseholdSize: 1}
}

var zipcodePattern = regexp.MustCompile(`^\d{0,5}$`)

// Validate checks field constraints and clamps HouseholdSize to >= 1.
func (p *Preferences) Validate() error {
	if p.HouseholdSize < 1 {
		p.HouseholdSize = 1
	}
	if !zipcodePattern.MatchString(p.Zipcode) {
		return fmt.Errorf("zipcode must be 0-5 digits, got %q", p.Zipcode)
	}
	switch p.SelectedStore {
	case "", "cheapest":
	default:
		if !ValidStore(Store(p.SelectedStore)) {
			return fmt.Errorf("unknown store %q", p.SelectedStore)
		}
	}
	return nil
}

// PreferenceService persists the single preferences row.
type PreferenceService interface {
	// Load returns the stored preferences, or defaults when none exist.
	Load(ctx context.Context) (Preferences, error)
	// Save validates and stores the preferences.
	Save(ctx context.Context, prefs Preferences) error
}

type preferenceService struct {
	pool *pgxpool.Pool
}

func NewPreferenceService(pool *pgxpool.Pool) PreferenceService {
	return &preferenceService{pool: pool}
}

func (s *preferenceService) Load(ctx context.Context) (Preferences, error) {
	var p Preferences
	err := s.pool.QueryRow(ctx,
		"SELECT household_size, zipcode, selected_store FROM preferences WHERE id = 1",
	).Scan(&p.HouseholdSize, &p.Zipcode, &p.SelectedStore)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultPreferences(), nil
		}
		return Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}
	if p.HouseholdSize < 1 {
		p.HouseholdSize = 1
	}
	return p, nil
}

func (s *preferenceService) Save(ctx context.Context, prefs Preferences) error {
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO preferences (id, household_size, zipcode, selected_store)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			household_size = $1, zipcode = $2, selected_store = $3, updated_at = NOW()
	`, prefs.HouseholdSize, prefs.Zipcode, prefs.SelectedStore)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
