package model

import "time"

// Difficulty is a quest difficulty tier, E (easiest) through S.
type Difficulty string

const (
	DifficultyE Difficulty = "E"
	DifficultyD Difficulty = "D"
	DifficultyC Difficulty = "C"
	DifficultyB Difficulty = "B"
	DifficultyA Difficulty = "A"
	DifficultyS Difficulty = "S"
)

// Valid reports whether d is a known difficulty tier.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyE, DifficultyD, DifficultyC, DifficultyB, DifficultyA, DifficultyS:
		return true
	}
	return false
}

// DefaultXPReward returns the xp a quest of the given difficulty grants
// when the client does not set a reward explicitly.
func DefaultXPReward(d Difficulty) int {
	switch d {
	case DifficultyE:
		return 10
	case DifficultyD:
		return 20
	default:
		return 50
	}
}

// Quest is a completable task owned by exactly one player. An open quest
// transitions to completed or failed, exactly once; both are terminal.
type Quest struct {
	ID          string     `json:"id"`
	PlayerID    string     `json:"playerId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	XPReward    int        `json:"xpReward"`
	GoldReward  int        `json:"goldReward"`
	IsDaily     bool       `json:"isDaily"`
	Completed   bool       `json:"completed"`
	Failed      bool       `json:"failed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedOn   time.Time  `json:"createdAt"`
}

// Terminal reports whether the quest has been resolved.
func (q *Quest) Terminal() bool {
	return q.Completed || q.Failed
}

// CreateQuestRequest is the body for creating a quest.
type CreateQuestRequest struct {
	PlayerID    string     `json:"playerId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	XPReward    *int       `json:"xpReward,omitempty"`
	GoldReward  int        `json:"goldReward,omitempty"`
	IsDaily     bool       `json:"isDaily,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// Validate checks the create request.
func (r *CreateQuestRequest) Validate() []FieldError {
	var errs []FieldError
	if r.PlayerID == "" {
		errs = append(errs, FieldError{Field: "playerId", Message: "playerId is required"})
	}
	if r.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if r.Difficulty != "" && !r.Difficulty.Valid() {
		errs = append(errs, FieldError{Field: "difficulty", Message: "difficulty must be one of E, D, C, B, A, S"})
	}
	if r.XPReward != nil && *r.XPReward < 0 {
		errs = append(errs, FieldError{Field: "xpReward", Message: "xpReward cannot be negative"})
	}
	if r.GoldReward < 0 {
		errs = append(errs, FieldError{Field: "goldReward", Message: "goldReward cannot be negative"})
	}
	return errs
}

// UpdateQuestRequest is the body for editing or resolving a quest.
// Setting completed or failed resolves the quest; the two are mutually
// exclusive and terminal.
type UpdateQuestRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
	Failed      *bool      `json:"failed,omitempty"`
}

// Validate checks the update request.
func (r *UpdateQuestRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Completed != nil && *r.Completed && r.Failed != nil && *r.Failed {
		errs = append(errs, FieldError{Field: "completed", Message: "a quest cannot be both completed and failed"})
	}
	if r.Title != nil && *r.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title cannot be empty"})
	}
	return errs
}
