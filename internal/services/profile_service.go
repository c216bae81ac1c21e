package services

import (
	"errors"
	"strings"

	"github.com/brunomarqs/studia/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrProfileNameMissing     = errors.New("profile name missing")
	ErrCurrentPasswordInvalid = errors.New("current password invalid")
)

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateProfile(userID uint, updates map[string]any) error
	UpdatePassword(userID uint, passwordHash string) error
}

// ProfileUpdate mirrors the mutable profile fields. Email is identity and
// stays immutable after registration.
type ProfileUpdate struct {
	Name           string
	StudyObjective string
	UniqueReward   string
}

type ProfileService struct {
	users ProfileUserRepository
}

func NewProfileService(users ProfileUserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (service *ProfileService) LoadProfile(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *ProfileService) UpdateProfile(userID uint, update ProfileUpdate) error {
	name := strings.TrimSpace(update.Name)
	if name == "" {
		return ErrProfileNameMissing
	}
	return service.users.UpdateProfile(userID, map[string]any{
		"name":            name,
		"study_objective": strings.TrimSpace(update.StudyObjective),
		"unique_reward":   strings.TrimSpace(update.UniqueReward),
	})
}

func (service *ProfileService) ValidateCurrentPassword(passwordHash string, rawPassword string) error {
	password := strings.TrimSpace(rawPassword)
	if password == "" {
		return ErrCurrentPasswordInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return ErrCurrentPasswordInvalid
	}
	return nil
}

func (service *ProfileService) UpdatePassword(userID uint, passwordHash string) error {
	return service.users.UpdatePassword(userID, passwordHash)
}
