package handler

import (
	"context"
	"strings"
	"time"

	"github.com/arise/hunter/api/internal/model"
	"github.com/arise/hunter/api/internal/service"
	"github.com/arise/hunter/api/internal/testing/fixtures"
)

// ============================================================================
// In-memory stub repositories shared by the handler tests
// ============================================================================

type stubPlayerRepo struct {
	players map[string]*model.Player
}

func newStubPlayerRepo(players ...*model.Player) *stubPlayerRepo {
	repo := &stubPlayerRepo{players: make(map[string]*model.Player)}
	for _, p := range players {
		repo.players[p.ID] = p
	}
	return repo
}

func (s *stubPlayerRepo) Create(ctx context.Context, player *model.Player) error {
	player.ID = "player:" + strings.ToLower(player.Name)
	player.CreatedOn = time.Now()
	s.players[player.ID] = player
	return nil
}

func (s *stubPlayerRepo) GetByID(ctx context.Context, id string) (*model.Player, error) {
	return s.players[id], nil
}

func (s *stubPlayerRepo) GetByName(ctx context.Context, name string) (*model.Player, error) {
	for _, p := range s.players {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubPlayerRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Player, error) {
	return s.players[id], nil
}

func (s *stubPlayerRepo) Save(ctx context.Context, p *model.Player) error {
	s.players[p.ID] = p
	return nil
}

func (s *stubPlayerRepo) SaveAll(ctx context.Context, players ...*model.Player) error {
	for _, p := range players {
		s.players[p.ID] = p
	}
	return nil
}

type stubQuestRepo struct {
	quests map[string]*model.Quest
}

func newStubQuestRepo(quests ...*model.Quest) *stubQuestRepo {
	repo := &stubQuestRepo{quests: make(map[string]*model.Quest)}
	for _, q := range quests {
		repo.quests[q.ID] = q
	}
	return repo
}

func (s *stubQuestRepo) Create(ctx context.Context, quest *model.Quest) error {
	quest.ID = "quest:" + strings.ToLower(strings.ReplaceAll(quest.Title, " ", ""))
	quest.CreatedOn = time.Now()
	s.quests[quest.ID] = quest
	return nil
}

func (s *stubQuestRepo) GetByID(ctx context.Context, id string) (*model.Quest, error) {
	return s.quests[id], nil
}

func (s *stubQuestRepo) ListByPlayer(ctx context.Context, playerID string) ([]*model.Quest, error) {
	var out []*model.Quest
	for _, q := range s.quests {
		if q.PlayerID == playerID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *stubQuestRepo) Update(ctx context.Context, quest *model.Quest) error {
	s.quests[quest.ID] = quest
	return nil
}

func (s *stubQuestRepo) Delete(ctx context.Context, id string) error {
	delete(s.quests, id)
	return nil
}

type stubBattleRepo struct {
	battles []*model.Battle
}

func (s *stubBattleRepo) Create(ctx context.Context, battle *model.Battle) error {
	battle.ID = "battle:1"
	battle.CreatedOn = time.Now()
	s.battles = append(s.battles, battle)
	return nil
}

func (s *stubBattleRepo) HistoryForPlayer(ctx context.Context, playerID string, limit int) ([]*model.Battle, error) {
	if len(s.battles) > limit {
		return s.battles[:limit], nil
	}
	return s.battles, nil
}

type stubFoodLogRepo struct {
	logs []*model.FoodLog
}

func (s *stubFoodLogRepo) Create(ctx context.Context, entry *model.FoodLog) error {
	entry.ID = "foodlog:1"
	s.logs = append(s.logs, entry)
	return nil
}

func (s *stubFoodLogRepo) ListSince(ctx context.Context, playerID string, since time.Time) ([]*model.FoodLog, error) {
	var out []*model.FoodLog
	for _, l := range s.logs {
		if l.PlayerID == playerID && !l.Date.Before(since) {
			out = append(out, l)
		}
	}
	return out, nil
}

// steadyRand always rolls the midpoint multiplier so battle outcomes are
// deterministic.
type steadyRand struct{}

func (steadyRand) Float64() float64 { return 0.5 }

func seedPlayer(name string) *model.Player {
	return fixtures.Player(fixtures.Named(name))
}

func seedChampion(name string) *model.Player {
	return fixtures.Player(fixtures.Named(name), fixtures.Champion)
}

func newBattleHandler(playerRepo *stubPlayerRepo, battleRepo *stubBattleRepo) *BattleHandler {
	svc := service.NewBattleService(service.BattleServiceConfig{
		BattleRepo: battleRepo,
		PlayerRepo: playerRepo,
		Rand:       steadyRand{},
	})
	return NewBattleHandler(svc)
}

func newQuestHandler(questRepo *stubQuestRepo, playerRepo *stubPlayerRepo) *QuestHandler {
	svc := service.NewQuestService(service.QuestServiceConfig{
		QuestRepo:  questRepo,
		PlayerRepo: playerRepo,
		Rand:       steadyRand{},
	})
	return NewQuestHandler(svc)
}
