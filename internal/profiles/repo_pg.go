package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the profile for a user.
func (r *PGRepo) Get(ctx context.Context, userID string) (UserProfile, error) {
	const query = `
SELECT id, preferred_genres, allergies, spice_preference, budget_range, created_at, updated_at
FROM user_profiles
WHERE id = $1`

	var (
		profile    UserProfile
		rawGenres  []byte
		rawAllergy []byte
		spice      string
		budget     string
	)
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&profile.ID,
		&rawGenres,
		&rawAllergy,
		&spice,
		&budget,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserProfile{}, ErrNotFound
		}
		return UserProfile{}, err
	}

	var genres []string
	if err := json.Unmarshal(rawGenres, &genres); err != nil {
		return UserProfile{}, fmt.Errorf("decode preferred_genres: %w", err)
	}
	profile.PreferredGenres = make([]CuisineGenre, 0, len(genres))
	for _, g := range genres {
		profile.PreferredGenres = append(profile.PreferredGenres, ParseCuisineGenre(g))
	}

	if err := json.Unmarshal(rawAllergy, &profile.Allergies); err != nil {
		return UserProfile{}, fmt.Errorf("decode allergies: %w", err)
	}

	if lvl, ok := ParseSpiceLevel(spice); ok {
		profile.SpicePreference = lvl
	} else {
		profile.SpicePreference = SpiceMedium
	}
	if rng, ok := ParseBudgetRange(budget); ok {
		profile.BudgetRange = rng
	} else {
		profile.BudgetRange = BudgetModerate
	}
	return profile, nil
}

// Create inserts a new profile.
func (r *PGRepo) Create(ctx context.Context, profile UserProfile) error {
	const query = `
INSERT INTO user_profiles (id, preferred_genres, allergies, spice_preference, budget_range, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`

	genres, err := json.Marshal(profile.PreferredGenres)
	if err != nil {
		return fmt.Errorf("encode preferred_genres: %w", err)
	}
	allergies, err := json.Marshal(profile.Allergies)
	if err != nil {
		return fmt.Errorf("encode allergies: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		profile.ID,
		genres,
		allergies,
		string(profile.SpicePreference),
		string(profile.BudgetRange),
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}
