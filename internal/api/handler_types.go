package api

import (
	"time"

	"github.com/brunomarqs/studia/internal/db"
	"github.com/brunomarqs/studia/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	location        *time.Location
	cookieSecure    bool
	repositories    *db.Repositories
	authService     *services.AuthService
	studyService    *services.StudyService
	profileService  *services.ProfileService
	recoveryLimiter *attemptLimiter
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:              database,
		secretKey:       []byte(secretKey),
		location:        location,
		cookieSecure:    cookieSecure,
		recoveryLimiter: newAttemptLimiter(recoveryAttemptsLimit, recoveryAttemptsWindow),
	}
	return handler.withDependencies(database)
}
