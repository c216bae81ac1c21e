package api

import (
	"time"

	"github.com/brunomarqs/studia/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input, validationError := parseRegisterInput(c)
	if validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	handler.ensureDependencies()
	exists, err := handler.authService.RegistrationEmailExists(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	recoveryCode, recoveryHash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	user := models.User{
		Name:             input.Name,
		Email:            input.Email,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: recoveryHash,
		StudyObjective:   input.StudyObjective,
		UniqueReward:     input.UniqueReward,
		CreatedAt:        time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":            true,
		"recovery_code": recoveryCode,
		"profile":       buildProfileView(&user),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	// Identity just became known, so the streak engine reloads stats (and
	// applies any pending auto-reset) before the client renders anything.
	stats, todayContent, err := handler.studyService.LoadStats(user.ID, time.Now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load study stats")
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"profile": buildProfileView(&user),
		"stats":   buildStudyStatsView(stats, todayContent),
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return apiOK(c)
}
