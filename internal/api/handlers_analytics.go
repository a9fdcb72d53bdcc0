package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetAnalytics(c *fiber.Ctx) error {
	report, err := handler.analytics.BuildWeeklyReport(time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(report)
}
