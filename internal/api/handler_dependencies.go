package api

import (
	"github.com/brunomarqs/studia/internal/db"
	"github.com/brunomarqs/studia/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.studyService = services.NewStudyService(handler.repositories.Streaks, handler.repositories.StudyRecords)
	handler.profileService = services.NewProfileService(handler.repositories.Users)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.studyService == nil {
		handler.studyService = services.NewStudyService(handler.repositories.Streaks, handler.repositories.StudyRecords)
	}
	if handler.profileService == nil {
		handler.profileService = services.NewProfileService(handler.repositories.Users)
	}
	if handler.recoveryLimiter == nil {
		handler.recoveryLimiter = newAttemptLimiter(recoveryAttemptsLimit, recoveryAttemptsWindow)
	}
}
