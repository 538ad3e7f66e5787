package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/arise/hunter/api/internal/database"
	"github.com/arise/hunter/api/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockPlayerRepo struct {
	createFunc    func(ctx context.Context, player *model.Player) error
	getByIDFunc   func(ctx context.Context, id string) (*model.Player, error)
	getByNameFunc func(ctx context.Context, name string) (*model.Player, error)
	updateFunc    func(ctx context.Context, id string, updates map[string]interface{}) (*model.Player, error)
	saveFunc      func(ctx context.Context, p *model.Player) error
}

func (m *mockPlayerRepo) Create(ctx context.Context, player *model.Player) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, player)
	}
	return nil
}

func (m *mockPlayerRepo) GetByID(ctx context.Context, id string) (*model.Player, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlayerRepo) GetByName(ctx context.Context, name string) (*model.Player, error) {
	if m.getByNameFunc != nil {
		return m.getByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockPlayerRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Player, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, updates)
	}
	return nil, nil
}

func (m *mockPlayerRepo) Save(ctx context.Context, p *model.Player) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, p)
	}
	return nil
}

func newTestPlayerService(repo *mockPlayerRepo) *PlayerService {
	if repo == nil {
		repo = &mockPlayerRepo{}
	}
	return NewPlayerService(PlayerServiceConfig{PlayerRepo: repo})
}

// ============================================================================
// GetOrCreate
// ============================================================================

func TestGetOrCreate_ExistingPlayer_ReturnsIt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	existing := testPlayer()
	repo := &mockPlayerRepo{
		getByNameFunc: func(ctx context.Context, name string) (*model.Player, error) {
			return existing, nil
		},
		createFunc: func(ctx context.Context, player *model.Player) error {
			t.Error("create must not be called for an existing player")
			return nil
		},
	}
	svc := newTestPlayerService(repo)

	player, err := svc.GetOrCreate(ctx, "Jinwoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if player != existing {
		t.Error("expected the existing player back")
	}
}

func TestGetOrCreate_NewPlayer_ProvisionsDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var created *model.Player
	repo := &mockPlayerRepo{
		createFunc: func(ctx context.Context, player *model.Player) error {
			created = player
			return nil
		},
	}
	svc := newTestPlayerService(repo)

	player, err := svc.GetOrCreate(ctx, "Jinwoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || player != created {
		t.Fatal("expected a freshly created player")
	}
	if player.Name != "Jinwoo" {
		t.Errorf("expected name Jinwoo, got %q", player.Name)
	}
	if player.Email != "jinwoo@example.com" {
		t.Errorf("expected placeholder email, got %q", player.Email)
	}
	if player.Level != 1 || player.Rating != 1000 || player.Rank != model.RankE {
		t.Errorf("expected starting block, got level=%d rating=%d rank=%s",
			player.Level, player.Rating, player.Rank)
	}
	if player.Title != "WOLF SLAYER" {
		t.Errorf("expected starting title, got %q", player.Title)
	}
	if _, err := bcrypt.Cost([]byte(player.Hash)); err != nil {
		t.Errorf("expected a valid bcrypt hash, got %q", player.Hash)
	}
}

func TestGetOrCreate_DuplicateRace_ReturnsWinner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	winner := testPlayer()
	calls := 0
	repo := &mockPlayerRepo{
		getByNameFunc: func(ctx context.Context, name string) (*model.Player, error) {
			calls++
			if calls == 1 {
				return nil, nil // lost the race after this lookup
			}
			return winner, nil
		},
		createFunc: func(ctx context.Context, player *model.Player) error {
			return database.ErrDuplicate
		},
	}
	svc := newTestPlayerService(repo)

	player, err := svc.GetOrCreate(ctx, "Jinwoo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if player != winner {
		t.Error("expected the concurrently created player back")
	}
}

func TestGetOrCreate_BlankName_Rejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestPlayerService(nil)

	_, err := svc.GetOrCreate(ctx, "   ")

	var problem *model.ProblemDetails
	if !errors.As(err, &problem) || problem.Code != model.ErrCodeInvalidInput {
		t.Fatalf("expected bad request, got %v", err)
	}
}

// ============================================================================
// Update
// ============================================================================

func TestUpdate_AllowlistedFields_PassedThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var gotUpdates map[string]interface{}
	repo := &mockPlayerRepo{
		updateFunc: func(ctx context.Context, id string, updates map[string]interface{}) (*model.Player, error) {
			gotUpdates = updates
			return testPlayer(), nil
		},
	}
	svc := newTestPlayerService(repo)

	_, err := svc.Update(ctx, "player:jinwoo", map[string]interface{}{
		"hp":      float64(80),
		"fitness": float64(51),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotUpdates) != 2 {
		t.Errorf("expected 2 updates, got %v", gotUpdates)
	}
}

func TestUpdate_NonWritableField_Rejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestPlayerService(nil)

	_, err := svc.Update(ctx, "player:jinwoo", map[string]interface{}{"hash": "evil"})

	var problem *model.ProblemDetails
	if !errors.As(err, &problem) || problem.Code != model.ErrCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdate_InvalidRank_Rejected(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestPlayerService(nil)

	_, err := svc.Update(ctx, "player:jinwoo", map[string]interface{}{"rank": "Z"})

	var problem *model.ProblemDetails
	if !errors.As(err, &problem) || problem.Code != model.ErrCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdate_MissingPlayer_Returns404(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &mockPlayerRepo{
		updateFunc: func(ctx context.Context, id string, updates map[string]interface{}) (*model.Player, error) {
			return nil, database.ErrNotFound
		},
	}
	svc := newTestPlayerService(repo)

	_, err := svc.Update(ctx, "player:ghost", map[string]interface{}{"hp": float64(1)})

	var problem *model.ProblemDetails
	if !errors.As(err, &problem) || problem.Code != model.ErrCodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

// ============================================================================
// AllocateStat
// ============================================================================

func TestAllocateStat_SpendsPointAndSaves(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	player := testPlayer()
	player.StatPoints = 2

	var saved *model.Player
	repo := &mockPlayerRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Player, error) {
			return player, nil
		},
		saveFunc: func(ctx context.Context, p *model.Player) error {
			saved = p
			return nil
		},
	}
	svc := newTestPlayerService(repo)

	got, err := svc.AllocateStat(ctx, "player:jinwoo", &model.AllocateStatRequest{Stat: model.StatSocial})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Social != 51 || got.StatPoints != 1 {
		t.Errorf("expected social=51 statPoints=1, got social=%d statPoints=%d", got.Social, got.StatPoints)
	}
	if saved != player {
		t.Error("expected the mutated player to be saved")
	}
}

func TestAllocateStat_NoPoints_NothingSaved(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	player := testPlayer()
	repo := &mockPlayerRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.Player, error) {
			return player, nil
		},
		saveFunc: func(ctx context.Context, p *model.Player) error {
			t.Error("save must not be called when allocation fails")
			return nil
		},
	}
	svc := newTestPlayerService(repo)

	_, err := svc.AllocateStat(ctx, "player:jinwoo", &model.AllocateStatRequest{Stat: model.StatDiet})

	var problem *model.ProblemDetails
	if !errors.As(err, &problem) || problem.Code != model.ErrCodeInsufficientResource {
		t.Fatalf("expected insufficient resource, got %v", err)
	}
}
