package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arise/hunter/api/internal/database"
	"github.com/arise/hunter/api/internal/model"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	db database.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db database.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player with the starting attribute block
func (r *PlayerRepository) Create(ctx context.Context, player *model.Player) error {
	query := `
		CREATE player CONTENT {
			name: $name,
			email: $email,
			hash: $hash,
			title: $title,
			titles: [],
			level: $level,
			xp: $xp,
			xpToNextLevel: $xpToNextLevel,
			rank: $rank,
			statPoints: $statPoints,
			gold: $gold,
			hp: $hp,
			maxHp: $maxHp,
			mp: $mp,
			maxMp: $maxMp,
			health: $health,
			diet: $diet,
			iq: $iq,
			fitness: $fitness,
			social: $social,
			weight: $weight,
			height: $height,
			rating: $rating,
			battleStats: { wins: 0, losses: 0, bossKills: 0 },
			badges: [],
			lastDailyReset: time::now(),
			createdAt: time::now(),
			updatedAt: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":          player.Name,
		"email":         player.Email,
		"hash":          player.Hash,
		"title":         player.Title,
		"level":         player.Level,
		"xp":            player.XP,
		"xpToNextLevel": player.XPToNextLevel,
		"rank":          player.Rank,
		"statPoints":    player.StatPoints,
		"gold":          player.Gold,
		"hp":            player.HP,
		"maxHp":         player.MaxHP,
		"mp":            player.MP,
		"maxMp":         player.MaxMP,
		"health":        player.Health,
		"diet":          player.Diet,
		"iq":            player.IQ,
		"fitness":       player.Fitness,
		"social":        player.Social,
		"weight":        player.Weight,
		"height":        player.Height,
		"rating":        player.Rating,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: name or email already exists", database.ErrDuplicate)
		}
		return err
	}

	hash := player.Hash
	created := &model.Player{}
	if err := decodeRecord(result, created); err != nil {
		return err
	}
	created.Hash = hash
	*player = *created
	return nil
}

// GetByID retrieves a player by ID. Returns (nil, nil) when absent.
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*model.Player, error) {
	result, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	player := &model.Player{}
	if err := decodeRecord(result, player); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return player, nil
}

// GetByName retrieves a player by display name. Returns (nil, nil) when absent.
func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*model.Player, error) {
	query := `SELECT * FROM player WHERE name = $name LIMIT 1`
	result, err := r.db.QueryOne(ctx, query, map[string]interface{}{"name": name})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	player := &model.Player{}
	if err := decodeRecord(result, player); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return player, nil
}

// Update applies a field map to a player and returns the updated record.
// Callers are responsible for allowlisting the keys. Returns (nil, nil)
// when the record does not exist.
func (r *PlayerRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Player, error) {
	assignments := make([]string, 0, len(updates)+1)
	vars := map[string]interface{}{"id": id}
	for key, value := range updates {
		assignments = append(assignments, fmt.Sprintf("%s = $%s", key, key))
		vars[key] = value
	}
	assignments = append(assignments, "updatedAt = time::now()")

	query := fmt.Sprintf("UPDATE type::record($id) SET %s", strings.Join(assignments, ", "))
	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	player := &model.Player{}
	if err := decodeRecord(result, player); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return player, nil
}

// playerSaveQuery writes every progression-mutable field in one statement.
const playerSaveQuery = `
	UPDATE type::record($id) SET
		title = $title,
		titles = $titles,
		level = $level,
		xp = $xp,
		xpToNextLevel = $xpToNextLevel,
		rank = $rank,
		statPoints = $statPoints,
		gold = $gold,
		hp = $hp,
		maxHp = $maxHp,
		mp = $mp,
		maxMp = $maxMp,
		health = $health,
		diet = $diet,
		iq = $iq,
		fitness = $fitness,
		social = $social,
		rating = $rating,
		battleStats = $battleStats,
		lastDailyReset = <datetime> $lastDailyReset,
		updatedAt = time::now()
`

func playerSaveVars(p *model.Player) map[string]interface{} {
	titles := p.Titles
	if titles == nil {
		titles = []string{}
	}
	return map[string]interface{}{
		"id":             p.ID,
		"title":          p.Title,
		"titles":         titles,
		"level":          p.Level,
		"xp":             p.XP,
		"xpToNextLevel":  p.XPToNextLevel,
		"rank":           p.Rank,
		"statPoints":     p.StatPoints,
		"gold":           p.Gold,
		"hp":             p.HP,
		"maxHp":          p.MaxHP,
		"mp":             p.MP,
		"maxMp":          p.MaxMP,
		"health":         p.Health,
		"diet":           p.Diet,
		"iq":             p.IQ,
		"fitness":        p.Fitness,
		"social":         p.Social,
		"rating":         p.Rating,
		"battleStats": map[string]interface{}{
			"wins":      p.BattleStats.Wins,
			"losses":    p.BattleStats.Losses,
			"bossKills": p.BattleStats.BossKills,
		},
		"lastDailyReset": surrealTime(p.LastDailyReset),
	}
}

// Save persists a player's full progression state.
func (r *PlayerRepository) Save(ctx context.Context, p *model.Player) error {
	return r.db.Execute(ctx, playerSaveQuery, playerSaveVars(p))
}

// SaveAll persists several players atomically. Used after a duel so both
// combatants' records land together.
func (r *PlayerRepository) SaveAll(ctx context.Context, players ...*model.Player) error {
	if len(players) == 0 {
		return nil
	}
	tb := database.NewTxBuilder()
	for _, p := range players {
		tb.Add(playerSaveQuery, playerSaveVars(p))
	}
	_, err := database.ExecuteTransaction(ctx, r.db, tb)
	return err
}
