package model

import (
	"strings"
	"time"
)

// Rank is the coarse hunter tier derived from level.
type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

var rankOrder = map[Rank]int{
	RankE: 0,
	RankD: 1,
	RankC: 2,
	RankB: 3,
	RankA: 4,
	RankS: 5,
}

// Valid reports whether r is a known hunter rank.
func (r Rank) Valid() bool {
	_, ok := rankOrder[r]
	return ok
}

// Outranks reports whether r is a strictly higher tier than other.
func (r Rank) Outranks(other Rank) bool {
	return rankOrder[r] > rankOrder[other]
}

// RankForLevel maps a level to its rank tier: 1-5 E, 6-10 D, above 10 C.
// Higher tiers are only reachable through future content, never by leveling.
func RankForLevel(level int) Rank {
	switch {
	case level > 10:
		return RankC
	case level > 5:
		return RankD
	default:
		return RankE
	}
}

// Growth stat keys spendable with stat points.
const (
	StatHealth  = "health"
	StatDiet    = "diet"
	StatIQ      = "iq"
	StatFitness = "fitness"
	StatSocial  = "social"
)

// GrowthStatKeys lists the growth stats in display order.
var GrowthStatKeys = []string{StatHealth, StatDiet, StatIQ, StatFitness, StatSocial}

// IsGrowthStat reports whether key names a stat spendable with stat points.
func IsGrowthStat(key string) bool {
	switch key {
	case StatHealth, StatDiet, StatIQ, StatFitness, StatSocial:
		return true
	}
	return false
}

// BattleStats tracks a player's lifetime combat record.
type BattleStats struct {
	Wins      int `json:"wins"`
	Losses    int `json:"losses"`
	BossKills int `json:"bossKills"`
}

// Badge is an unlocked achievement record.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// Player is the hunter progression entity. It owns its stat points and
// vitals; quests and battles reference it by id only.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Hash  string `json:"-"` // Never expose the credential hash

	Title  string   `json:"title"`
	Titles []string `json:"titles,omitempty"`

	Level         int  `json:"level"`
	XP            int  `json:"xp"`
	XPToNextLevel int  `json:"xpToNextLevel"`
	Rank          Rank `json:"rank"`
	StatPoints    int  `json:"statPoints"`
	Gold          int  `json:"gold"`

	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	MP    int `json:"mp"`
	MaxMP int `json:"maxMp"`

	// Real-world growth stats, raised by spending stat points.
	Health  int `json:"health"`
	Diet    int `json:"diet"`
	IQ      int `json:"iq"`
	Fitness int `json:"fitness"`
	Social  int `json:"social"`
	Weight  int `json:"weight"` // kg
	Height  int `json:"height"` // cm

	Rating      int         `json:"rating"`
	BattleStats BattleStats `json:"battleStats"`
	Badges      []Badge     `json:"badges,omitempty"`

	LastDailyReset time.Time `json:"lastDailyReset"`
	CreatedOn      time.Time `json:"createdAt"`
	UpdatedOn      time.Time `json:"updatedAt"`
}

// NewPlayer returns a player with the starting attribute block.
func NewPlayer(name, email, hash string) *Player {
	return &Player{
		Name:          name,
		Email:         strings.ToLower(strings.TrimSpace(email)),
		Hash:          hash,
		Title:         "WOLF SLAYER",
		Level:         1,
		XP:            0,
		XPToNextLevel: 100,
		Rank:          RankE,
		HP:            100,
		MaxHP:         100,
		MP:            10,
		MaxMP:         10,
		Health:        50,
		Diet:          50,
		IQ:            100,
		Fitness:       50,
		Social:        50,
		Weight:        70,
		Height:        175,
		Rating:        1000,
	}
}

// GrowthStat returns the value of the named growth stat, or 0 for an
// unknown key.
func (p *Player) GrowthStat(key string) int {
	switch key {
	case StatHealth:
		return p.Health
	case StatDiet:
		return p.Diet
	case StatIQ:
		return p.IQ
	case StatFitness:
		return p.Fitness
	case StatSocial:
		return p.Social
	}
	return 0
}

// AddGrowthStat adds delta to the named growth stat. Unknown keys are a
// no-op; callers validate with IsGrowthStat first.
func (p *Player) AddGrowthStat(key string, delta int) {
	switch key {
	case StatHealth:
		p.Health += delta
	case StatDiet:
		p.Diet += delta
	case StatIQ:
		p.IQ += delta
	case StatFitness:
		p.Fitness += delta
	case StatSocial:
		p.Social += delta
	}
}

// AllocateStatRequest is the body for spending one stat point.
type AllocateStatRequest struct {
	Stat string `json:"stat"`
}

// Validate checks the allocation request.
func (r *AllocateStatRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Stat == "" {
		errs = append(errs, FieldError{Field: "stat", Message: "stat is required"})
	} else if !IsGrowthStat(r.Stat) {
		errs = append(errs, FieldError{Field: "stat", Message: "unknown growth stat"})
	}
	return errs
}
