package api

import (
	"errors"
	"strings"
	"time"

	"github.com/brunomarqs/studia/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetStudyStats(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	stats, todayContent, err := handler.studyService.LoadStats(user.ID, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load study stats")
	}

	return c.JSON(buildStudyStatsView(stats, todayContent))
}

func (handler *Handler) CompleteToday(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := completeTodayInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	stats, err := handler.studyService.MarkTodayComplete(user.ID, input.Content, time.Now(), handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyStudyContent):
			return apiError(c, fiber.StatusBadRequest, "study content is required")
		case errors.Is(err, services.ErrAlreadyCompletedToday):
			return apiError(c, fiber.StatusConflict, "today already completed")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to complete today")
		}
	}

	return c.JSON(buildStudyStatsView(stats, strings.TrimSpace(input.Content)))
}

func (handler *Handler) ResetStreak(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	stats, err := handler.studyService.ResetStreak(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset streak")
	}

	return c.JSON(buildStudyStatsView(stats, ""))
}
