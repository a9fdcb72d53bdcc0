package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mwestrum/liftlog/internal/db"
	"github.com/mwestrum/liftlog/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	repos     *db.Repositories
	analytics *services.AnalyticsService
	location  *time.Location
	validate  *validator.Validate
}

func NewHandler(database *gorm.DB, location *time.Location) *Handler {
	repos := db.NewRepositories(database)
	return &Handler{
		repos:     repos,
		analytics: services.NewAnalyticsService(repos.Workouts),
		location:  location,
		validate:  validator.New(),
	}
}
