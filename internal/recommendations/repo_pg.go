package recommendations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/takumines/meal-finder/internal/profiles"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert stores the recommendation keyed by session.
func (r *PGRepo) Upsert(ctx context.Context, rec MealRecommendation) error {
	const query = `
INSERT INTO meal_recommendations (
    id,
    session_id,
    user_id,
    meal_name,
    description,
    cuisine_genre,
    spice_level,
    estimated_price,
    cooking_time_minutes,
    ingredients,
    instructions,
    meal_source,
    confidence_score,
    reasoning,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (session_id) DO UPDATE SET
    meal_name = EXCLUDED.meal_name,
    description = EXCLUDED.description,
    cuisine_genre = EXCLUDED.cuisine_genre,
    spice_level = EXCLUDED.spice_level,
    estimated_price = EXCLUDED.estimated_price,
    cooking_time_minutes = EXCLUDED.cooking_time_minutes,
    ingredients = EXCLUDED.ingredients,
    instructions = EXCLUDED.instructions,
    meal_source = EXCLUDED.meal_source,
    confidence_score = EXCLUDED.confidence_score,
    reasoning = EXCLUDED.reasoning`

	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return fmt.Errorf("encode ingredients: %w", err)
	}
	instructions, err := json.Marshal(rec.Instructions)
	if err != nil {
		return fmt.Errorf("encode instructions: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.SessionID,
		rec.UserID,
		rec.Name,
		rec.Description,
		string(rec.CuisineGenre),
		string(rec.SpiceLevel),
		rec.EstimatedPrice,
		rec.CookingTimeMinutes,
		ingredients,
		instructions,
		string(rec.MealSource),
		rec.ConfidenceScore,
		rec.Reasoning,
		rec.CreatedAt,
	)
	return err
}

const selectColumns = `
SELECT id, session_id, user_id, meal_name, description, cuisine_genre, spice_level,
       estimated_price, cooking_time_minutes, ingredients, instructions, meal_source,
       confidence_score, reasoning, user_reaction, created_at
FROM meal_recommendations`

// GetByID returns a recommendation owned by userID.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (MealRecommendation, error) {
	row := r.DB.QueryRowContext(ctx, selectColumns+` WHERE id = $1 AND user_id = $2`, id, userID)
	return scanRecommendation(row)
}

// GetBySession returns the recommendation for a session, if any.
func (r *PGRepo) GetBySession(ctx context.Context, sessionID string) (MealRecommendation, error) {
	row := r.DB.QueryRowContext(ctx, selectColumns+` WHERE session_id = $1`, sessionID)
	return scanRecommendation(row)
}

// UpdateReaction records the user's reaction on an owned recommendation.
func (r *PGRepo) UpdateReaction(ctx context.Context, userID, id string, reaction Reaction) error {
	const query = `
UPDATE meal_recommendations
SET user_reaction = $1
WHERE id = $2 AND user_id = $3`

	res, err := r.DB.ExecContext(ctx, query, string(reaction), id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRecommendation(row *sql.Row) (MealRecommendation, error) {
	var (
		rec             MealRecommendation
		genre           string
		spice           string
		rawIngredients  []byte
		rawInstructions []byte
		source          string
		reaction        sql.NullString
	)
	err := row.Scan(
		&rec.ID,
		&rec.SessionID,
		&rec.UserID,
		&rec.Name,
		&rec.Description,
		&genre,
		&spice,
		&rec.EstimatedPrice,
		&rec.CookingTimeMinutes,
		&rawIngredients,
		&rawInstructions,
		&source,
		&rec.ConfidenceScore,
		&rec.Reasoning,
		&reaction,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MealRecommendation{}, ErrNotFound
		}
		return MealRecommendation{}, err
	}

	rec.CuisineGenre = profiles.ParseCuisineGenre(genre)
	if lvl, ok := profiles.ParseSpiceLevel(spice); ok {
		rec.SpiceLevel = lvl
	}
	rec.MealSource = ParseMealSource(source)
	if err := json.Unmarshal(rawIngredients, &rec.Ingredients); err != nil {
		return MealRecommendation{}, fmt.Errorf("decode ingredients: %w", err)
	}
	if err := json.Unmarshal(rawInstructions, &rec.Instructions); err != nil {
		return MealRecommendation{}, fmt.Errorf("decode instructions: %w", err)
	}
	if reaction.Valid {
		if parsed, ok := ParseReaction(reaction.String); ok {
			rec.UserReaction = &parsed
		}
	}
	return rec, nil
}
