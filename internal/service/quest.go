package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/arise/hunter/api/internal/database"
	"github.com/arise/hunter/api/internal/model"
)

// Hp lost when a quest is failed.
const questFailureDamage = 20

// QuestRepository defines the interface for quest storage
type QuestRepository interface {
	Create(ctx context.Context, quest *model.Quest) error
	GetByID(ctx context.Context, id string) (*model.Quest, error)
	ListByPlayer(ctx context.Context, playerID string) ([]*model.Quest, error)
	Update(ctx context.Context, quest *model.Quest) error
	Delete(ctx context.Context, id string) error
}

// QuestPlayerRepository defines the interface for applying quest outcomes
// to the owning player
type QuestPlayerRepository interface {
	GetByID(ctx context.Context, id string) (*model.Player, error)
	Save(ctx context.Context, p *model.Player) error
}

// QuestService handles quest business logic
type QuestService struct {
	repo       QuestRepository
	playerRepo QuestPlayerRepository
	notifier   Notifier
	rng        Rand
}

// QuestServiceConfig holds configuration for the quest service
type QuestServiceConfig struct {
	QuestRepo  QuestRepository
	PlayerRepo QuestPlayerRepository
	Notifier   Notifier
	Rand       Rand
}

// NewQuestService creates a new quest service
func NewQuestService(cfg QuestServiceConfig) *QuestService {
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &QuestService{
		repo:       cfg.QuestRepo,
		playerRepo: cfg.PlayerRepo,
		notifier:   notifier,
		rng:        rng,
	}
}

// Create creates a quest for a player. The xp reward defaults from the
// difficulty tier when the client does not set one.
func (s *QuestService) Create(ctx context.Context, req *model.CreateQuestRequest) (*model.Quest, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	owner, err := s.playerRepo.GetByID(ctx, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	if owner == nil {
		return nil, model.NewNotFoundError("Player")
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyE
	}
	xpReward := model.DefaultXPReward(difficulty)
	if req.XPReward != nil {
		xpReward = *req.XPReward
	}

	quest := &model.Quest{
		PlayerID:    req.PlayerID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  difficulty,
		XPReward:    xpReward,
		GoldReward:  req.GoldReward,
		IsDaily:     req.IsDaily,
		DueDate:     req.DueDate,
	}
	if err := s.repo.Create(ctx, quest); err != nil {
		return nil, fmt.Errorf("failed to create quest: %w", err)
	}

	announce(ctx, s.notifier, []ProgressionEvent{{
		Type:    EventQuestAssigned,
		Message: "New quest assigned.",
	}})
	return quest, nil
}

// List returns all quests owned by the player.
func (s *QuestService) List(ctx context.Context, playerID string) ([]*model.Quest, error) {
	if playerID == "" {
		return nil, model.NewBadRequestError("playerId is required")
	}
	quests, err := s.repo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	return quests, nil
}

// Update edits a quest or resolves it. Completing routes the xp reward
// through the progression engine; failing costs the player hp. Both
// resolutions are terminal and rejected on an already-resolved quest.
func (s *QuestService) Update(ctx context.Context, id string, req *model.UpdateQuestRequest) (*model.Quest, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	quest, err := s.getQuest(ctx, id)
	if err != nil {
		return nil, err
	}

	completing := req.Completed != nil && *req.Completed && !quest.Completed
	failing := req.Failed != nil && *req.Failed && !quest.Failed
	if (completing || failing) && quest.Terminal() {
		return nil, model.NewConflictError("quest is already resolved")
	}

	if req.Title != nil {
		quest.Title = *req.Title
	}
	if req.Description != nil {
		quest.Description = *req.Description
	}
	if req.DueDate != nil {
		quest.DueDate = req.DueDate
	}

	switch {
	case completing:
		quest.Completed = true
		if err := s.repo.Update(ctx, quest); err != nil {
			return nil, fmt.Errorf("failed to update quest: %w", err)
		}
		if err := s.rewardCompletion(ctx, quest); err != nil {
			return nil, err
		}
	case failing:
		quest.Failed = true
		if err := s.repo.Update(ctx, quest); err != nil {
			return nil, fmt.Errorf("failed to update quest: %w", err)
		}
		if err := s.applyFailure(ctx, quest); err != nil {
			return nil, err
		}
	default:
		if err := s.repo.Update(ctx, quest); err != nil {
			return nil, fmt.Errorf("failed to update quest: %w", err)
		}
	}

	return quest, nil
}

// Delete removes an open quest. Resolved quests are part of the player's
// record and cannot be deleted.
func (s *QuestService) Delete(ctx context.Context, id string) error {
	quest, err := s.getQuest(ctx, id)
	if err != nil {
		return err
	}
	if quest.Terminal() {
		return model.NewConflictError("resolved quests cannot be deleted")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete quest: %w", err)
	}
	return nil
}

func (s *QuestService) getQuest(ctx context.Context, id string) (*model.Quest, error) {
	if id == "" {
		return nil, model.NewBadRequestError("quest id is required")
	}
	quest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, model.NewNotFoundError("Quest")
		}
		return nil, fmt.Errorf("failed to load quest: %w", err)
	}
	if quest == nil {
		return nil, model.NewNotFoundError("Quest")
	}
	return quest, nil
}

func (s *QuestService) rewardCompletion(ctx context.Context, quest *model.Quest) error {
	player, err := s.playerRepo.GetByID(ctx, quest.PlayerID)
	if err != nil {
		return fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return model.NewNotFoundError("Player")
	}

	result := ApplyXPGain(player, quest.XPReward, s.rng)
	player.Gold += quest.GoldReward
	if err := s.playerRepo.Save(ctx, player); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	events := append([]ProgressionEvent{{
		Type:    EventQuestComplete,
		Message: "Quest complete.",
	}}, result.Events...)
	announce(ctx, s.notifier, events)
	return nil
}

func (s *QuestService) applyFailure(ctx context.Context, quest *model.Quest) error {
	player, err := s.playerRepo.GetByID(ctx, quest.PlayerID)
	if err != nil {
		return fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return model.NewNotFoundError("Player")
	}

	player.HP = max(0, player.HP-questFailureDamage)
	if err := s.playerRepo.Save(ctx, player); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	announce(ctx, s.notifier, []ProgressionEvent{{
		Type:    EventQuestFailed,
		Message: fmt.Sprintf("Quest failed. Took %d damage.", questFailureDamage),
	}})
	return nil
}
