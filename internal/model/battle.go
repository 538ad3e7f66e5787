package model

import "time"

// BattleType distinguishes duels against other players from boss fights.
type BattleType string

const (
	BattleTypePVP BattleType = "PVP"
	BattleTypePVE BattleType = "PVE"
)

// Valid reports whether t is a known encounter type.
func (t BattleType) Valid() bool {
	return t == BattleTypePVP || t == BattleTypePVE
}

// Battle result strings on the wire.
const (
	ResultVictory = "VICTORY"
	ResultDefeat  = "DEFEAT"
)

// Battle is the write-once record of one resolved encounter. DefenderID is
// empty for boss fights; DefenderName is always a snapshot so history
// survives renames. WinnerID stays empty when the challenger loses a boss
// fight or the turn cap is reached with both sides standing.
type Battle struct {
	ID           string     `json:"id"`
	ChallengerID string     `json:"challengerId"`
	DefenderID   string     `json:"defenderId,omitempty"`
	DefenderName string     `json:"defenderName"`
	WinnerID     string     `json:"winnerId,omitempty"`
	Type         BattleType `json:"type"`
	Log          []string   `json:"log"`
	RatingChange int        `json:"ratingChange"`
	CreatedOn    time.Time  `json:"createdAt"`
}

// StartBattleRequest is the body for starting an encounter. TargetID is
// required for PVP; BossID selects the PVE opponent and falls back to the
// default boss when unknown or empty.
type StartBattleRequest struct {
	ChallengerID string     `json:"challengerId"`
	TargetID     string     `json:"targetId,omitempty"`
	Type         BattleType `json:"type"`
	BossID       string     `json:"bossId,omitempty"`
}

// Validate checks the start request.
func (r *StartBattleRequest) Validate() []FieldError {
	var errs []FieldError
	if r.ChallengerID == "" {
		errs = append(errs, FieldError{Field: "challengerId", Message: "challengerId is required"})
	}
	if !r.Type.Valid() {
		errs = append(errs, FieldError{Field: "type", Message: "type must be PVP or PVE"})
	}
	if r.Type == BattleTypePVP && r.TargetID == "" {
		errs = append(errs, FieldError{Field: "targetId", Message: "targetId is required for PVP"})
	}
	return errs
}

// BattleOutcome is the response for a resolved encounter.
type BattleOutcome struct {
	Battle *Battle `json:"battle"`
	Result string  `json:"result"`
}
