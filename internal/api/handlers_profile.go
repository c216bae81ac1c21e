package api

import (
	"errors"

	"github.com/brunomarqs/studia/internal/models"
	"github.com/brunomarqs/studia/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type profileView struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	StudyObjective string `json:"study_objective"`
	UniqueReward   string `json:"unique_reward"`
}

func buildProfileView(user *models.User) profileView {
	return profileView{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		StudyObjective: user.StudyObjective,
		UniqueReward:   user.UniqueReward,
	}
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(buildProfileView(user))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	err := handler.profileService.UpdateProfile(user.ID, services.ProfileUpdate{
		Name:           input.Name,
		StudyObjective: input.StudyObjective,
		UniqueReward:   input.UniqueReward,
	})
	if err != nil {
		if errors.Is(err, services.ErrProfileNameMissing) {
			return apiError(c, fiber.StatusBadRequest, "name is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	updated, err := handler.profileService.LoadProfile(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(buildProfileView(&updated))
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.profileService.ValidateCurrentPassword(user.PasswordHash, input.CurrentPassword); err != nil {
		return apiError(c, fiber.StatusForbidden, "current password invalid")
	}
	if err := services.ValidatePasswordConfirmation(input.NewPassword, input.ConfirmPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, passwordPolicyMessage(err))
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	if err := handler.profileService.UpdatePassword(user.ID, string(passwordHash)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}

	return apiOK(c)
}
