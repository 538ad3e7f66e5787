// Package fixtures provides test data builders with sensible defaults and
// option functions for customization:
//
//	p := fixtures.Player()
//	q := fixtures.Quest(fixtures.QuestFor(p.ID))
package fixtures

import (
	"strings"
	"time"

	"github.com/arise/hunter/api/internal/model"
)

var fixedTime = time.Date(2026, time.January, 2, 8, 0, 0, 0, time.UTC)

// Player builds a player with the starting attribute block.
func Player(mods ...func(*model.Player)) *model.Player {
	p := model.NewPlayer("Jinwoo", "jinwoo@example.com", "$2a$10$fixturehash")
	p.ID = "player:jinwoo"
	p.CreatedOn = fixedTime
	p.UpdatedOn = fixedTime
	for _, mod := range mods {
		mod(p)
	}
	return p
}

// Named sets the player's name, id, and email from the given name.
func Named(name string) func(*model.Player) {
	return func(p *model.Player) {
		lower := strings.ToLower(name)
		p.Name = name
		p.ID = "player:" + lower
		p.Email = lower + "@example.com"
	}
}

// Champion raises the player to a stat block that reliably clears the
// starter boss.
func Champion(p *model.Player) {
	p.Level = 10
	p.Rank = model.RankD
	p.Fitness = 200
	p.HP = 1000
	p.MaxHP = 1000
	p.XPToNextLevel = 1000
}

// Quest builds an open E-rank quest.
func Quest(mods ...func(*model.Quest)) *model.Quest {
	q := &model.Quest{
		ID:         "quest:morningrun",
		PlayerID:   "player:jinwoo",
		Title:      "Morning run",
		Difficulty: model.DifficultyE,
		XPReward:   10,
		CreatedOn:  fixedTime,
	}
	for _, mod := range mods {
		mod(q)
	}
	return q
}

// QuestFor assigns the quest to the given player id.
func QuestFor(playerID string) func(*model.Quest) {
	return func(q *model.Quest) {
		q.PlayerID = playerID
	}
}

// Resolved marks the quest completed.
func Resolved(q *model.Quest) {
	q.Completed = true
}

// FoodLog builds a food log entry stamped at the fixture time.
func FoodLog(mods ...func(*model.FoodLog)) *model.FoodLog {
	l := &model.FoodLog{
		ID:       "foodlog:breakfast",
		PlayerID: "player:jinwoo",
		Name:     "Bibimbap",
		Calories: 600,
		Protein:  25,
		Date:     fixedTime,
	}
	for _, mod := range mods {
		mod(l)
	}
	return l
}
