package repository

import (
	"context"

	"github.com/arise/hunter/api/internal/database"
	"github.com/arise/hunter/api/internal/model"
)

// BattleRepository handles battle record data access. Battle records are
// write-once: there is no update path.
type BattleRepository struct {
	db database.Database
}

// NewBattleRepository creates a new battle repository
func NewBattleRepository(db database.Database) *BattleRepository {
	return &BattleRepository{db: db}
}

// Create persists a resolved encounter.
func (r *BattleRepository) Create(ctx context.Context, battle *model.Battle) error {
	query := `
		CREATE battle CONTENT {
			challengerId: $challengerId,
			defenderId: IF $defenderId IS NOT NULL THEN $defenderId ELSE NONE END,
			defenderName: $defenderName,
			winnerId: IF $winnerId IS NOT NULL THEN $winnerId ELSE NONE END,
			type: $type,
			log: $log,
			ratingChange: $ratingChange,
			createdAt: time::now()
		}
	`

	log := battle.Log
	if log == nil {
		log = []string{}
	}
	vars := map[string]interface{}{
		"challengerId": battle.ChallengerID,
		"defenderId":   nilIfEmpty(battle.DefenderID),
		"defenderName": battle.DefenderName,
		"winnerId":     nilIfEmpty(battle.WinnerID),
		"type":         battle.Type,
		"log":          log,
		"ratingChange": battle.RatingChange,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	created := &model.Battle{}
	if err := decodeRecord(result, created); err != nil {
		return err
	}
	*battle = *created
	return nil
}

// HistoryForPlayer retrieves the most recent battles where the player was
// challenger or defender, newest first.
func (r *BattleRepository) HistoryForPlayer(ctx context.Context, playerID string, limit int) ([]*model.Battle, error) {
	query := `
		SELECT * FROM battle
		WHERE challengerId = $playerId OR defenderId = $playerId
		ORDER BY createdAt DESC
		LIMIT $limit
	`
	vars := map[string]interface{}{
		"playerId": playerID,
		"limit":    limit,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Battle](results)
}
