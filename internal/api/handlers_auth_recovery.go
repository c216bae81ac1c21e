package api

import (
	"time"

	"github.com/brunomarqs/studia/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	recoveryAttemptsLimit  = 8
	recoveryAttemptsWindow = 15 * time.Minute
)

// ForgotPassword exchanges a valid recovery code for a fresh password and a
// new recovery code. The old code stops working immediately.
func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	now := time.Now().In(handler.location)
	limiterKey := requestLimiterKey(c)
	handler.ensureDependencies()
	if handler.recoveryLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many recovery attempts")
	}

	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.recoveryLimiter.recordFailure(limiterKey, now)
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	code := normalizeRecoveryCode(input.RecoveryCode)
	if err := services.ValidateRecoveryCodeFormat(code); err != nil {
		handler.recoveryLimiter.recordFailure(limiterKey, now)
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}

	if err := services.ValidatePasswordConfirmation(input.NewPassword, input.ConfirmPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, passwordPolicyMessage(err))
	}

	user, err := handler.authService.FindUserByRecoveryCode(code)
	if err != nil {
		handler.recoveryLimiter.recordFailure(limiterKey, now)
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	recoveryCode, recoveryHash, err := generateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	user.PasswordHash = string(passwordHash)
	user.RecoveryCodeHash = recoveryHash
	if err := handler.authService.SaveUser(user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset password")
	}
	handler.recoveryLimiter.clear(limiterKey)

	if err := handler.setAuthCookie(c, user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"ok":            true,
		"recovery_code": recoveryCode,
	})
}
