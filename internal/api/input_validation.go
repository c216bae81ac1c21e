package api

import (
	"errors"
	"strings"

	"github.com/brunomarqs/studia/internal/services"
	"github.com/gofiber/fiber/v2"
)

func passwordPolicyMessage(err error) string {
	if errors.Is(err, services.ErrPasswordTooLong) {
		return "password too long"
	}
	return "weak password"
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	email, password, err := services.NormalizeCredentialsInput(credentials.Email, credentials.Password)
	if err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = email
	credentials.Password = password
	credentials.RememberMe = credentials.RememberMe || parseBoolValue(c.FormValue("remember_me"))

	return credentials, nil
}

func parseRegisterInput(c *fiber.Ctx) (registerInput, string) {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return registerInput{}, "invalid input"
	}

	email, password, err := services.NormalizeCredentialsInput(input.Email, input.Password)
	if err != nil {
		return registerInput{}, "invalid input"
	}
	input.Email = email
	input.Password = password

	if err := services.ValidatePasswordConfirmation(input.Password, input.ConfirmPassword); err != nil {
		return registerInput{}, "password mismatch"
	}
	if err := services.ValidatePasswordStrength(input.Password); err != nil {
		return registerInput{}, passwordPolicyMessage(err)
	}

	profile, err := services.NormalizeRegistrationProfile(input.Name, input.StudyObjective, input.UniqueReward)
	if err != nil {
		return registerInput{}, "name is required"
	}
	input.Name = profile.Name
	input.StudyObjective = profile.StudyObjective
	input.UniqueReward = profile.UniqueReward

	return input, ""
}

func parseBoolValue(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true" || normalized == "on" || normalized == "yes"
}
