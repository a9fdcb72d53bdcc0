package api

import "github.com/mwestrum/liftlog/internal/models"

// workoutInput is the create payload. Reps and sets are pointers so that
// validation only rejects missing fields, not zero values: only the
// field types are enforced, not domain ranges.
type workoutInput struct {
	Type   string   `json:"type" validate:"required"`
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
	Reps   *int     `json:"reps" validate:"required"`
	Sets   *int     `json:"sets" validate:"required"`
	Weight *float64 `json:"weight"`
}

func (input workoutInput) toModel() *models.Workout {
	return &models.Workout{
		Type:   input.Type,
		Date:   input.Date,
		Reps:   *input.Reps,
		Sets:   *input.Sets,
		Weight: input.Weight,
	}
}
