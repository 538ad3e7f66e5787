package repository

import (
	"context"
	"errors"

	"github.com/arise/hunter/api/internal/database"
	"github.com/arise/hunter/api/internal/model"
)

// QuestRepository handles quest data access
type QuestRepository struct {
	db database.Database
}

// NewQuestRepository creates a new quest repository
func NewQuestRepository(db database.Database) *QuestRepository {
	return &QuestRepository{db: db}
}

// Create creates a new quest
func (r *QuestRepository) Create(ctx context.Context, quest *model.Quest) error {
	query := `
		CREATE quest CONTENT {
			playerId: $playerId,
			title: $title,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			difficulty: $difficulty,
			xpReward: $xpReward,
			goldReward: $goldReward,
			isDaily: $isDaily,
			completed: false,
			failed: false,
			dueDate: IF $dueDate IS NOT NULL THEN <datetime> $dueDate ELSE NONE END,
			createdAt: time::now()
		}
	`

	var due interface{}
	if quest.DueDate != nil {
		due = surrealTime(*quest.DueDate)
	}
	vars := map[string]interface{}{
		"playerId":    quest.PlayerID,
		"title":       quest.Title,
		"description": nilIfEmpty(quest.Description),
		"difficulty":  quest.Difficulty,
		"xpReward":    quest.XPReward,
		"goldReward":  quest.GoldReward,
		"isDaily":     quest.IsDaily,
		"dueDate":     due,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	created := &model.Quest{}
	if err := decodeRecord(result, created); err != nil {
		return err
	}
	*quest = *created
	return nil
}

// GetByID retrieves a quest by ID. Returns (nil, nil) when absent.
func (r *QuestRepository) GetByID(ctx context.Context, id string) (*model.Quest, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	quest := &model.Quest{}
	if err := decodeRecord(result, quest); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return quest, nil
}

// ListByPlayer retrieves all quests owned by a player, newest first.
func (r *QuestRepository) ListByPlayer(ctx context.Context, playerID string) ([]*model.Quest, error) {
	query := `SELECT * FROM quest WHERE playerId = $playerId ORDER BY createdAt DESC`
	results, err := r.db.Query(ctx, query, map[string]interface{}{"playerId": playerID})
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Quest](results)
}

// Update persists a quest's mutable fields.
func (r *QuestRepository) Update(ctx context.Context, quest *model.Quest) error {
	query := `
		UPDATE type::record($id) SET
			title = $title,
			description = IF $description IS NOT NULL THEN $description ELSE NONE END,
			completed = $completed,
			failed = $failed,
			dueDate = IF $dueDate IS NOT NULL THEN <datetime> $dueDate ELSE NONE END
	`

	var due interface{}
	if quest.DueDate != nil {
		due = surrealTime(*quest.DueDate)
	}
	vars := map[string]interface{}{
		"id":          quest.ID,
		"title":       quest.Title,
		"description": nilIfEmpty(quest.Description),
		"completed":   quest.Completed,
		"failed":      quest.Failed,
		"dueDate":     due,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes a quest
func (r *QuestRepository) Delete(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}

// ResetDailies re-opens every resolved daily quest and returns the number
// of quests touched. Run by the daily reset job.
func (r *QuestRepository) ResetDailies(ctx context.Context) (int, error) {
	query := `
		UPDATE quest SET completed = false, failed = false
		WHERE isDaily = true AND (completed = true OR failed = true)
	`
	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return 0, err
	}
	return len(recordRows(results)), nil
}
