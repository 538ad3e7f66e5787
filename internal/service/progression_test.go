package service

import (
	"errors"
	"testing"

	"github.com/arise/hunter/api/internal/model"
)

// fixedRand cycles through a fixed sequence of rolls. An empty sequence
// always rolls 0.5 (the midpoint multiplier).
type fixedRand struct {
	vals []float64
	idx  int
}

func (r *fixedRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[r.idx%len(r.vals)]
	r.idx++
	return v
}

func testPlayer() *model.Player {
	p := model.NewPlayer("Jinwoo", "jinwoo@example.com", "hash")
	p.ID = "player:jinwoo"
	return p
}

func TestApplyXPGain_BelowThreshold_OnlyXPChanges(t *testing.T) {
	t.Parallel()

	p := testPlayer()
	p.XP = 40

	result := ApplyXPGain(p, 30, &fixedRand{})

	if result.LeveledUp {
		t.Error("expected no level up")
	}
	if p.XP != 70 {
		t.Errorf("expected xp=70, got %d", p.XP)
	}
	if p.Level != 1 || p.XPToNextLevel != 100 || p.StatPoints != 0 {
		t.Errorf("expected no other field to change, got level=%d xpToNext=%d statPoints=%d",
			p.Level, p.XPToNextLevel, p.StatPoints)
	}
}

func TestApplyXPGain_NegativeAmount_ClampedToZero(t *testing.T) {
	t.Parallel()

	p := testPlayer()
	p.XP = 40

	ApplyXPGain(p, -100, &fixedRand{})

	if p.XP != 40 {
		t.Errorf("expected xp unchanged at 40, got %d", p.XP)
	}
}

func TestApplyXPGain_LevelUp_UpdatesVitals(t *testing.T) {
	t.Parallel()

	p := testPlayer()
	p.XP = 40
	p.HP = 17
	p.MP = 2

	result := ApplyXPGain(p, 70, &fixedRand{})

	if !result.LeveledUp || result.NewLevel != 2 {
		t.Fatalf("expected level up to 2, got %+v", result)
	}
	if p.Level != 2 {
		t.Errorf("expected level=2, got %d", p.Level)
	}
	if p.XP != 10 {
		t.Errorf("expected remainder xp=10, got %d", p.XP)
	}
	if p.XPToNextLevel != 200 {
		t.Errorf("expected xpToNextLevel=200, got %d", p.XPToNextLevel)
	}
	if p.MaxHP != 120 || p.HP != 120 {
		t.Errorf("expected full heal to maxHp=120, got hp=%d maxHp=%d", p.HP, p.MaxHP)
	}
	if p.MaxMP != 14 || p.MP != 14 {
		t.Errorf("expected full mp restore to maxMp=14, got mp=%d maxMp=%d", p.MP, p.MaxMP)
	}
	if p.StatPoints != 5 {
		t.Errorf("expected 5 stat points, got %d", p.StatPoints)
	}
	if p.Rank != model.RankE {
		t.Errorf("expected rank E at level 2, got %s", p.Rank)
	}
	if len(result.Events) != 1 || result.Events[0].Type != EventLevelUp {
		t.Errorf("expected a single LEVEL_UP event, got %+v", result.Events)
	}
}

func TestApplyXPGain_LargeGain_SingleStepOnly(t *testing.T) {
	t.Parallel()

	p := testPlayer()

	ApplyXPGain(p, 1000, &fixedRand{})

	if p.Level != 2 {
		t.Errorf("expected exactly one level step, got level %d", p.Level)
	}
	// The remainder exceeds the new threshold and stays banked until the
	// next gain.
	if p.XP != 900 {
		t.Errorf("expected banked xp=900, got %d", p.XP)
	}
}

func TestApplyXPGain_TitleOnEveryThirdLevel(t *testing.T) {
	t.Parallel()

	p := testPlayer()
	p.Level = 2
	p.XPToNextLevel = 200

	result := ApplyXPGain(p, 200, &fixedRand{vals: []float64{0}})

	if result.NewTitle != TitlePool[0] {
		t.Fatalf("expected title %q, got %q", TitlePool[0], result.NewTitle)
	}
	if p.Title != TitlePool[0] {
		t.Errorf("expected player title %q, got %q", TitlePool[0], p.Title)
	}
	if len(p.Titles) != 1 || p.Titles[0] != TitlePool[0] {
		t.Errorf("expected title appended to history, got %v", p.Titles)
	}
	if len(result.Events) != 2 || result.Events[1].Type != EventTitleEarned {
		t.Fatalf("expected TITLE_EARNED event, got %+v", result.Events)
	}
	want := "NEW TITLE EARNED: [" + TitlePool[0] + "]"
	if result.Events[1].Message != want {
		t.Errorf("expected message %q, got %q", want, result.Events[1].Message)
	}
}

func TestApplyXPGain_NoTitleOffCycle(t *testing.T) {
	t.Parallel()

	p := testPlayer()

	result := ApplyXPGain(p, 100, &fixedRand{})

	if result.NewTitle != "" || len(p.Titles) != 0 {
		t.Errorf("expected no title at level 2, got %q / %v", result.NewTitle, p.Titles)
	}
}

func TestApplyXPGain_RankPromotionAtLevelSix(t *testing.T) {
	t.Parallel()

	p := testPlayer()
	p.Level = 5
	p.XPToNextLevel = 500

	ApplyXPGain(p, 500, &fixedRand{})

	if p.Level != 6 || p.Rank != model.RankD {
		t.Errorf("expected level 6 rank D, got level %d rank %s", p.Level, p.Rank)
	}
}

func TestApplyXPGain_RankNeverRegresses(t *testing.T) {
	t.Parallel()

	p := testPlayer()
	p.Level = 3
	p.XPToNextLevel = 300
	p.Rank = model.RankB // granted outside normal leveling

	ApplyXPGain(p, 300, &fixedRand{})

	if p.Rank != model.RankB {
		t.Errorf("expected rank to stay B, got %s", p.Rank)
	}
}

func TestAllocateStatPoint_Success(t *testing.T) {
	t.Parallel()

	p := testPlayer()
	p.StatPoints = 3
	p.Fitness = 50

	if err := AllocateStatPoint(p, model.StatFitness); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Fitness != 51 {
		t.Errorf("expected fitness=51, got %d", p.Fitness)
	}
	if p.StatPoints != 2 {
		t.Errorf("expected 2 stat points left, got %d", p.StatPoints)
	}
}

func TestAllocateStatPoint_UnknownStat_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	p := testPlayer()
	p.StatPoints = 1

	err := AllocateStatPoint(p, "luck")

	var problem *model.ProblemDetails
	if !errors.As(err, &problem) || problem.Code != model.ErrCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if p.StatPoints != 1 {
		t.Errorf("expected stat points untouched, got %d", p.StatPoints)
	}
}

func TestAllocateStatPoint_NoPoints_ReturnsInsufficientResource(t *testing.T) {
	t.Parallel()

	p := testPlayer()

	err := AllocateStatPoint(p, model.StatIQ)

	var problem *model.ProblemDetails
	if !errors.As(err, &problem) || problem.Code != model.ErrCodeInsufficientResource {
		t.Fatalf("expected insufficient resource error, got %v", err)
	}
}
