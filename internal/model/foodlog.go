package model

import "time"

// DailyCalorieTarget is the calorie total that triggers the daily
// nutrition reward.
const DailyCalorieTarget = 2500

// FoodLog is one logged meal or snack.
type FoodLog struct {
	ID       string    `json:"id"`
	PlayerID string    `json:"playerId"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Protein  int       `json:"protein"`
	Carbs    int       `json:"carbs"`
	Fat      int       `json:"fat"`
	Date     time.Time `json:"date"`
}

// LogFoodRequest is the body for logging food.
type LogFoodRequest struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein,omitempty"`
	Carbs    int    `json:"carbs,omitempty"`
	Fat      int    `json:"fat,omitempty"`
}

// Validate checks the log request.
func (r *LogFoodRequest) Validate() []FieldError {
	var errs []FieldError
	if r.PlayerID == "" {
		errs = append(errs, FieldError{Field: "playerId", Message: "playerId is required"})
	}
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if r.Calories < 0 {
		errs = append(errs, FieldError{Field: "calories", Message: "calories cannot be negative"})
	}
	return errs
}

// NutritionReward announces a met daily goal.
type NutritionReward struct {
	Message string         `json:"message"`
	Stats   map[string]int `json:"stats"`
}

// LogFoodResponse is returned after logging food. Reward is nil unless
// this entry pushed the player over the daily calorie target for the
// first time today.
type LogFoodResponse struct {
	Log    *FoodLog         `json:"log"`
	Reward *NutritionReward `json:"reward"`
}
