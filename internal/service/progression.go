package service

import (
	"fmt"

	"github.com/arise/hunter/api/internal/model"
)

// TitlePool is the fixed pool a new title is drawn from on every third
// level.
var TitlePool = []string{
	"The One Who Found a Way",
	"Determined Runner",
	"System Reconstructor",
	"E-Rank Survivor",
	"Health Enthusiast",
	"Logic Master",
}

// Stat points granted per level.
const statPointsPerLevel = 5

// Progression event types emitted for the orchestration layer to turn
// into notifications.
const (
	EventLevelUp       = "LEVEL_UP"
	EventTitleEarned   = "TITLE_EARNED"
	EventStatRaised    = "STAT_RAISED"
	EventQuestAssigned = "QUEST_ASSIGNED"
	EventQuestComplete = "QUEST_COMPLETE"
	EventQuestFailed   = "QUEST_FAILED"
)

// ProgressionEvent is one announcement produced by a progression update.
type ProgressionEvent struct {
	Type    string
	Message string
}

// ProgressionResult reports what an xp gain changed.
type ProgressionResult struct {
	LeveledUp bool
	NewLevel  int
	NewTitle  string
	Events    []ProgressionEvent
}

// ApplyXPGain applies an xp gain to p in place. Negative amounts are
// clamped to zero.
//
// A gain that reaches the threshold performs exactly one level-up step;
// the remainder is stored as the new xp even when it still exceeds the
// new threshold, so a large grant resolves one level per call. This
// single-step pacing is intentional and relied on by callers.
//
// A level-up is a full-recovery event: hp and mp reset to their new
// maxima. Rank is derived from the new level but never demotes below the
// rank the player already holds.
func ApplyXPGain(p *model.Player, amount int, rng Rand) ProgressionResult {
	if amount < 0 {
		amount = 0
	}

	newXP := p.XP + amount
	if newXP < p.XPToNextLevel {
		p.XP = newXP
		return ProgressionResult{}
	}

	remaining := newXP - p.XPToNextLevel
	nextLevel := p.Level + 1

	p.Level = nextLevel
	p.XP = remaining
	p.XPToNextLevel = nextLevel * 100
	p.MaxHP = 100 + nextLevel*10
	p.MaxMP = 10 + nextLevel*2
	p.HP = p.MaxHP
	p.MP = p.MaxMP
	p.StatPoints += statPointsPerLevel
	if rank := model.RankForLevel(nextLevel); rank.Outranks(p.Rank) {
		p.Rank = rank
	}

	result := ProgressionResult{LeveledUp: true, NewLevel: nextLevel}
	result.Events = append(result.Events, ProgressionEvent{
		Type:    EventLevelUp,
		Message: fmt.Sprintf("LEVEL UP! You have attained level %d. Rank %s stabilization complete.", nextLevel, p.Rank),
	})

	if nextLevel%3 == 0 {
		title := pickTitle(rng)
		p.Title = title
		p.Titles = append(p.Titles, title)
		result.NewTitle = title
		result.Events = append(result.Events, ProgressionEvent{
			Type:    EventTitleEarned,
			Message: fmt.Sprintf("NEW TITLE EARNED: [%s]", title),
		})
	}

	return result
}

func pickTitle(rng Rand) string {
	idx := int(rng.Float64() * float64(len(TitlePool)))
	if idx >= len(TitlePool) {
		idx = len(TitlePool) - 1
	}
	return TitlePool[idx]
}

// AllocateStatPoint spends one of p's stat points on the named growth
// stat.
func AllocateStatPoint(p *model.Player, statKey string) error {
	if !model.IsGrowthStat(statKey) {
		return model.NewValidationError([]model.FieldError{
			{Field: "stat", Message: "unknown growth stat"},
		})
	}
	if p.StatPoints <= 0 {
		return model.NewInsufficientResourceError("no stat points available")
	}
	p.AddGrowthStat(statKey, 1)
	p.StatPoints--
	return nil
}
