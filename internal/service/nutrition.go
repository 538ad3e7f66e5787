package service

import (
	"context"
	"fmt"
	"time"

	"github.com/arise/hunter/api/internal/model"
)

// FoodLogRepository defines the interface for food log storage
type FoodLogRepository interface {
	Create(ctx context.Context, entry *model.FoodLog) error
	ListSince(ctx context.Context, playerID string, since time.Time) ([]*model.FoodLog, error)
}

// NutritionPlayerRepository defines the interface for granting nutrition
// rewards
type NutritionPlayerRepository interface {
	GetByID(ctx context.Context, id string) (*model.Player, error)
	Save(ctx context.Context, p *model.Player) error
}

// NutritionService handles food logging and the daily calorie goal
type NutritionService struct {
	repo       FoodLogRepository
	playerRepo NutritionPlayerRepository
	notifier   Notifier
	now        func() time.Time
}

// NutritionServiceConfig holds configuration for the nutrition service
type NutritionServiceConfig struct {
	FoodLogRepo FoodLogRepository
	PlayerRepo  NutritionPlayerRepository
	Notifier    Notifier
	Now         func() time.Time // defaults to time.Now, injectable for tests
}

// NewNutritionService creates a new nutrition service
func NewNutritionService(cfg NutritionServiceConfig) *NutritionService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &NutritionService{
		repo:       cfg.FoodLogRepo,
		playerRepo: cfg.PlayerRepo,
		notifier:   notifier,
		now:        now,
	}
}

// startOfDay truncates t to local midnight.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the player's food logs since local midnight.
func (s *NutritionService) Today(ctx context.Context, playerID string) ([]*model.FoodLog, error) {
	if playerID == "" {
		return nil, model.NewBadRequestError("playerId is required")
	}
	logs, err := s.repo.ListSince(ctx, playerID, startOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to list food logs: %w", err)
	}
	return logs, nil
}

// Log records a food entry. When the entry pushes today's calorie total to
// the daily target and the player has not already claimed today's reward,
// the player gains a point of fitness and health and the reward is
// returned with the log.
func (s *NutritionService) Log(ctx context.Context, req *model.LogFoodRequest) (*model.LogFoodResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	player, err := s.playerRepo.GetByID(ctx, req.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return nil, model.NewNotFoundError("Player")
	}

	entry := &model.FoodLog{
		PlayerID: req.PlayerID,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Date:     s.now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create food log: %w", err)
	}

	reward, err := s.maybeGrantDailyReward(ctx, player)
	if err != nil {
		return nil, err
	}
	return &model.LogFoodResponse{Log: entry, Reward: reward}, nil
}

func (s *NutritionService) maybeGrantDailyReward(ctx context.Context, player *model.Player) (*model.NutritionReward, error) {
	today := startOfDay(s.now())
	if !player.LastDailyReset.Before(today) {
		return nil, nil // already claimed today
	}

	logs, err := s.repo.ListSince(ctx, player.ID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum calories: %w", err)
	}
	total := 0
	for _, l := range logs {
		total += l.Calories
	}
	if total < model.DailyCalorieTarget {
		return nil, nil
	}

	player.Fitness++
	player.Health++
	player.LastDailyReset = s.now()
	if err := s.playerRepo.Save(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	reward := &model.NutritionReward{
		Message: "DAILY GOAL MET: +1 FITNESS, +1 HEALTH",
		Stats:   map[string]int{model.StatFitness: 1, model.StatHealth: 1},
	}
	announce(ctx, s.notifier, []ProgressionEvent{{
		Type:    EventStatRaised,
		Message: "Daily nutrition goal met.",
	}})
	return reward, nil
}
