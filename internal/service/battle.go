package service

import (
	"context"
	"fmt"
	"math"

	"github.com/arise/hunter/api/internal/model"
)

const (
	// Turn cap before a fight is declared a stalemate.
	maxBattleTurns = 20

	// Rating stake per ranked duel.
	pvpRatingStake = 25

	battleHistoryLimit = 10
)

// BattleRepository defines the interface for battle record storage
type BattleRepository interface {
	Create(ctx context.Context, battle *model.Battle) error
	HistoryForPlayer(ctx context.Context, playerID string, limit int) ([]*model.Battle, error)
}

// BattlePlayerRepository defines the interface for combatant state
type BattlePlayerRepository interface {
	GetByID(ctx context.Context, id string) (*model.Player, error)
	Save(ctx context.Context, p *model.Player) error
	SaveAll(ctx context.Context, players ...*model.Player) error
}

// BattleService resolves duels and boss fights
type BattleService struct {
	repo       BattleRepository
	playerRepo BattlePlayerRepository
	notifier   Notifier
	rng        Rand
}

// BattleServiceConfig holds configuration for the battle service
type BattleServiceConfig struct {
	BattleRepo BattleRepository
	PlayerRepo BattlePlayerRepository
	Notifier   Notifier
	Rand       Rand
}

// NewBattleService creates a new battle service
func NewBattleService(cfg BattleServiceConfig) *BattleService {
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &BattleService{
		repo:       cfg.BattleRepo,
		playerRepo: cfg.PlayerRepo,
		notifier:   notifier,
		rng:        rng,
	}
}

// combatant is the minimal stat block the simulation runs on.
type combatant struct {
	id     string
	name   string
	hp     int
	attack int
}

// challengerCombatant fights at the player's current hp. A challenger at
// 0 hp never attacks and the encounter resolves as a non-victory; only
// defenders get the missing-vitals fallback.
func challengerCombatant(p *model.Player) combatant {
	return combatant{
		id:     p.ID,
		name:   p.Name,
		hp:     p.HP,
		attack: attackPower(p.Fitness, p.Level),
	}
}

func defenderCombatant(p *model.Player) combatant {
	return combatant{
		id:     p.ID,
		name:   p.Name,
		hp:     defenderHitPoints(p.HP, p.MaxHP),
		attack: attackPower(p.Fitness, p.Level),
	}
}

func bossCombatant(b model.Boss) combatant {
	return combatant{name: b.Name, hp: b.HP, attack: b.Attack}
}

// attackPower derives attack from fitness and level. A zero fitness floor
// of 10 keeps legacy records without the stat from dealing no damage.
func attackPower(fitness, level int) int {
	if fitness == 0 {
		fitness = 10
	}
	return fitness + level*2
}

// defenderHitPoints resolves a combatant's starting hp, falling back to
// max hp and then a flat 100 for records missing vitals.
func defenderHitPoints(hp, maxHP int) int {
	if hp > 0 {
		return hp
	}
	if maxHP > 0 {
		return maxHP
	}
	return 100
}

// damageRoll is one attack: attack scaled by a uniform roll in
// [0.8, 1.2), floored at 1.
func damageRoll(attack int, rng Rand) int {
	dmg := int(math.Round(float64(attack) * (0.8 + rng.Float64()*0.4)))
	if dmg < 1 {
		return 1
	}
	return dmg
}

// simulate runs the turn loop and returns the battle log plus the winner's
// id. The winner id is empty when the challenger falls to a boss or when
// the turn cap is reached with both sides standing.
func simulate(challenger, defender combatant, rng Rand) (log []string, winnerID string) {
	log = append(log, fmt.Sprintf("Battle Started: %s VS %s", challenger.name, defender.name))

	cHP := challenger.hp
	dHP := defender.hp

	for turn := 1; turn <= maxBattleTurns && cHP > 0 && dHP > 0; turn++ {
		dmg := damageRoll(challenger.attack, rng)
		dHP -= dmg
		log = append(log, fmt.Sprintf("Turn %d: %s hits for %d dmg.", turn, challenger.name, dmg))

		if dHP <= 0 {
			winnerID = challenger.id
			log = append(log, fmt.Sprintf("%s has fallen!", defender.name))
			break
		}

		dmg = damageRoll(defender.attack, rng)
		cHP -= dmg
		log = append(log, fmt.Sprintf("Turn %d: %s hits back for %d dmg.", turn, defender.name, dmg))

		if cHP <= 0 {
			winnerID = defender.id
			log = append(log, fmt.Sprintf("%s was defeated.", challenger.name))
			break
		}
	}

	return log, winnerID
}

// Start resolves an encounter end to end: loads combatants, runs the
// simulation, applies rewards, persists updated player state and only then
// writes the battle record.
func (s *BattleService) Start(ctx context.Context, req *model.StartBattleRequest) (*model.BattleOutcome, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	challenger, err := s.playerRepo.GetByID(ctx, req.ChallengerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load challenger: %w", err)
	}

	var (
		opponent     *model.Player
		boss         model.Boss
		defenderStat combatant
	)
	if req.Type == model.BattleTypePVP {
		opponent, err = s.playerRepo.GetByID(ctx, req.TargetID)
		if err != nil {
			return nil, fmt.Errorf("failed to load opponent: %w", err)
		}
		if challenger == nil || opponent == nil {
			return nil, model.NewNotFoundError("Fighters")
		}
		defenderStat = defenderCombatant(opponent)
	} else {
		if challenger == nil {
			return nil, model.NewNotFoundError("Fighters")
		}
		boss = model.BossByID(req.BossID)
		defenderStat = bossCombatant(boss)
	}

	log, winnerID := simulate(challengerCombatant(challenger), defenderStat, s.rng)

	var (
		ratingChange int
		events       []ProgressionEvent
	)
	if winnerID == challenger.ID && winnerID != "" {
		challenger.BattleStats.Wins++
		if req.Type == model.BattleTypePVP {
			ratingChange = pvpRatingStake
			challenger.Rating += ratingChange
		} else {
			challenger.BattleStats.BossKills++
			log = append(log, fmt.Sprintf("Victory! Gained %d XP.", boss.XPReward))
			result := ApplyXPGain(challenger, boss.XPReward, s.rng)
			events = result.Events
		}
	} else {
		challenger.BattleStats.Losses++
		if req.Type == model.BattleTypePVP {
			ratingChange = -pvpRatingStake
			challenger.Rating = max(0, challenger.Rating-pvpRatingStake)
		}
	}

	if req.Type == model.BattleTypePVP && winnerID == opponent.ID {
		opponent.Rating += pvpRatingStake
		opponent.BattleStats.Wins++
		if err := s.playerRepo.SaveAll(ctx, challenger, opponent); err != nil {
			return nil, fmt.Errorf("failed to save combatants: %w", err)
		}
	} else {
		if err := s.playerRepo.Save(ctx, challenger); err != nil {
			return nil, fmt.Errorf("failed to save challenger: %w", err)
		}
	}

	battle := &model.Battle{
		ChallengerID: challenger.ID,
		DefenderName: defenderStat.name,
		WinnerID:     winnerID,
		Type:         req.Type,
		Log:          log,
		RatingChange: ratingChange,
	}
	if req.Type == model.BattleTypePVP {
		battle.DefenderID = opponent.ID
	}
	if err := s.repo.Create(ctx, battle); err != nil {
		return nil, fmt.Errorf("failed to record battle: %w", err)
	}

	announce(ctx, s.notifier, events)

	result := model.ResultDefeat
	if winnerID == challenger.ID && winnerID != "" {
		result = model.ResultVictory
	}
	return &model.BattleOutcome{Battle: battle, Result: result}, nil
}

// History returns the player's most recent battles as challenger or
// defender, newest first.
func (s *BattleService) History(ctx context.Context, playerID string) ([]*model.Battle, error) {
	if playerID == "" {
		return nil, model.NewBadRequestError("playerId is required")
	}
	battles, err := s.repo.HistoryForPlayer(ctx, playerID, battleHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load battle history: %w", err)
	}
	return battles, nil
}
