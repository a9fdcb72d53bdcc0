package db

import (
	"github.com/mwestrum/liftlog/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

// Create inserts the entry and reads the stored row back by its new id.
// The read-back is a second statement, not atomic with the insert: a
// concurrent delete of the same id can make it come up empty.
func (repo *WorkoutRepository) Create(entry *models.Workout) (models.Workout, error) {
	if err := repo.database.Create(entry).Error; err != nil {
		return models.Workout{}, err
	}

	stored := models.Workout{}
	if err := repo.database.First(&stored, entry.ID).Error; err != nil {
		return models.Workout{}, err
	}
	return stored, nil
}

// List returns every workout, newest date first. Same-date rows keep
// their natural insertion order.
func (repo *WorkoutRepository) List() ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.Order("date DESC").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

// SummarizeByTypeSince groups workouts dated on or after fromDate
// (inclusive, ISO-8601 text) by type and totals their rep count and
// weighted volume. Unweighted entries count their weight as 1.
func (repo *WorkoutRepository) SummarizeByTypeSince(fromDate string) ([]models.TypeVolume, error) {
	summaries := make([]models.TypeVolume, 0)
	if err := repo.database.Model(&models.Workout{}).
		Select("type, SUM(reps * sets) AS total_reps, SUM(reps * sets * COALESCE(weight, 1)) AS total_volume").
		Where("date >= ?", fromDate).
		Group("type").
		Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (repo *WorkoutRepository) FindByID(id uint) (models.Workout, bool, error) {
	entry := models.Workout{}
	result := repo.database.Limit(1).Find(&entry, id)
	if result.Error != nil {
		return models.Workout{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Workout{}, false, nil
	}
	return entry, true, nil
}

func (repo *WorkoutRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Workout{}, id).Error
}
