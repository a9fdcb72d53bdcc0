package db

import "gorm.io/gorm"

type Repositories struct {
	Workouts *WorkoutRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Workouts: NewWorkoutRepository(database),
	}
}
