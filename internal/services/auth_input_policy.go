package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrAuthCredentialsInvalid  = errors.New("auth credentials invalid")
	ErrAuthNameMissing         = errors.New("auth name missing")
	ErrAuthPasswordMismatch    = errors.New("auth password mismatch")
	ErrAuthRecoveryCodeInvalid = errors.New("auth recovery code invalid")
)

var recoveryCodeFormatRegex = regexp.MustCompile(`^STUD-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// RegistrationProfile carries the profile fields collected at sign-up.
type RegistrationProfile struct {
	Name           string
	StudyObjective string
	UniqueReward   string
}

func NormalizeRegistrationProfile(nameRaw string, objectiveRaw string, rewardRaw string) (RegistrationProfile, error) {
	profile := RegistrationProfile{
		Name:           strings.TrimSpace(nameRaw),
		StudyObjective: strings.TrimSpace(objectiveRaw),
		UniqueReward:   strings.TrimSpace(rewardRaw),
	}
	if profile.Name == "" {
		return RegistrationProfile{}, ErrAuthNameMissing
	}
	return profile, nil
}

func ValidatePasswordConfirmation(password string, confirmPassword string) error {
	if strings.TrimSpace(confirmPassword) == "" || password != strings.TrimSpace(confirmPassword) {
		return ErrAuthPasswordMismatch
	}
	return nil
}

func ValidateRecoveryCodeFormat(code string) error {
	if !recoveryCodeFormatRegex.MatchString(strings.TrimSpace(code)) {
		return ErrAuthRecoveryCodeInvalid
	}
	return nil
}
