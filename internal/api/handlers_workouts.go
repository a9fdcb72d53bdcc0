package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	input := workoutInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	created, err := handler.repos.Workouts.Create(input.toModel())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(created)
}

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	workouts, err := handler.repos.Workouts.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(workouts)
}

func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return apiError(c, fiber.StatusNotFound, "workout not found")
	}

	// Existence check and delete are separate statements. A concurrent
	// delete of the same id between them loses nothing.
	_, found, err := handler.repos.Workouts.FindByID(uint(id))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "workout not found")
	}

	if err := handler.repos.Workouts.Delete(uint(id)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"status": "success", "message": "Workout deleted"})
}
