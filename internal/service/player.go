package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arise/hunter/api/internal/database"
	"github.com/arise/hunter/api/internal/model"
)

// PlayerRepository defines the interface for player storage
type PlayerRepository interface {
	Create(ctx context.Context, player *model.Player) error
	GetByID(ctx context.Context, id string) (*model.Player, error)
	GetByName(ctx context.Context, name string) (*model.Player, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Player, error)
	Save(ctx context.Context, p *model.Player) error
}

// PlayerService handles player profile business logic
type PlayerService struct {
	repo     PlayerRepository
	notifier Notifier
}

// PlayerServiceConfig holds configuration for the player service
type PlayerServiceConfig struct {
	PlayerRepo PlayerRepository
	Notifier   Notifier
}

// NewPlayerService creates a new player service
func NewPlayerService(cfg PlayerServiceConfig) *PlayerService {
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &PlayerService{repo: cfg.PlayerRepo, notifier: notifier}
}

// GetOrCreate looks a player up by display name and provisions a fresh
// profile when none exists. Provisioned players get a placeholder email and
// a bcrypt hash of a throwaway secret so the record passes credential
// checks without being signable-in.
func (s *PlayerService) GetOrCreate(ctx context.Context, name string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.NewBadRequestError("name is required")
	}

	player, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}
	if player != nil {
		return player, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder credential: %w", err)
	}

	player = model.NewPlayer(name, fmt.Sprintf("%s@example.com", strings.ToLower(name)), string(hash))
	if err := s.repo.Create(ctx, player); err != nil {
		// A concurrent request may have provisioned the same name.
		if errors.Is(err, database.ErrDuplicate) {
			existing, lookupErr := s.repo.GetByName(ctx, name)
			if lookupErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

// GetByID returns the player or a not-found error.
func (s *PlayerService) GetByID(ctx context.Context, id string) (*model.Player, error) {
	if id == "" {
		return nil, model.NewBadRequestError("player id is required")
	}
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	if player == nil {
		return nil, model.NewNotFoundError("Player")
	}
	return player, nil
}

// Fields a client may write directly through the update endpoint. The
// credential hash and identity fields are never client-writable; combat
// and progression fields are, because the profile owner drives their own
// tracker.
var playerUpdatableFields = map[string]bool{
	"title":         true,
	"level":         true,
	"xp":            true,
	"xpToNextLevel": true,
	"rank":          true,
	"statPoints":    true,
	"gold":          true,
	"hp":            true,
	"maxHp":         true,
	"mp":            true,
	"maxMp":         true,
	"health":        true,
	"diet":          true,
	"iq":            true,
	"fitness":       true,
	"social":        true,
	"weight":        true,
	"height":        true,
	"rating":        true,
}

// Update applies a partial field update and returns the updated record.
// Unknown or non-writable fields are rejected rather than silently dropped.
func (s *PlayerService) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Player, error) {
	if id == "" {
		return nil, model.NewBadRequestError("player id is required")
	}
	if len(fields) == 0 {
		return nil, model.NewBadRequestError("no fields to update")
	}

	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if !playerUpdatableFields[key] {
			return nil, model.NewValidationError([]model.FieldError{
				{Field: key, Message: "field is not updatable"},
			})
		}
		if key == "rank" {
			rank, ok := value.(string)
			if !ok || !model.Rank(rank).Valid() {
				return nil, model.NewValidationError([]model.FieldError{
					{Field: "rank", Message: "rank must be one of E, D, C, B, A, S"},
				})
			}
		}
		updates[key] = value
	}

	player, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, model.NewNotFoundError("Player")
		}
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return player, nil
}

// AllocateStat spends one stat point on the named growth stat and persists
// the result.
func (s *PlayerService) AllocateStat(ctx context.Context, id string, req *model.AllocateStatRequest) (*model.Player, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	player, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := AllocateStatPoint(player, req.Stat); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	slog.Info("stat point allocated",
		slog.String("player_id", player.ID),
		slog.String("stat", req.Stat),
		slog.Int("value", player.GrowthStat(req.Stat)),
	)
	announce(ctx, s.notifier, []ProgressionEvent{{
		Type:    EventStatRaised,
		Message: fmt.Sprintf("%s increased.", strings.ToUpper(req.Stat)),
	}})
	return player, nil
}
