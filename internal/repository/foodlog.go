package repository

import (
	"context"
	"time"

	"github.com/arise/hunter/api/internal/database"
	"github.com/arise/hunter/api/internal/model"
)

// FoodLogRepository handles nutrition log data access
type FoodLogRepository struct {
	db database.Database
}

// NewFoodLogRepository creates a new food log repository
func NewFoodLogRepository(db database.Database) *FoodLogRepository {
	return &FoodLogRepository{db: db}
}

// Create persists one logged meal.
func (r *FoodLogRepository) Create(ctx context.Context, entry *model.FoodLog) error {
	query := `
		CREATE food_log CONTENT {
			playerId: $playerId,
			name: $name,
			calories: $calories,
			protein: $protein,
			carbs: $carbs,
			fat: $fat,
			date: <datetime> $date
		}
	`

	vars := map[string]interface{}{
		"playerId": entry.PlayerID,
		"name":     entry.Name,
		"calories": entry.Calories,
		"protein":  entry.Protein,
		"carbs":    entry.Carbs,
		"fat":      entry.Fat,
		"date":     surrealTime(entry.Date),
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	created := &model.FoodLog{}
	if err := decodeRecord(result, created); err != nil {
		return err
	}
	*entry = *created
	return nil
}

// ListSince retrieves a player's logs on or after the given instant,
// newest first.
func (r *FoodLogRepository) ListSince(ctx context.Context, playerID string, since time.Time) ([]*model.FoodLog, error) {
	query := `
		SELECT * FROM food_log
		WHERE playerId = $playerId AND date >= <datetime> $since
		ORDER BY date DESC
	`
	vars := map[string]interface{}{
		"playerId": playerID,
		"since":    surrealTime(since),
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.FoodLog](results)
}
