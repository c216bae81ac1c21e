package api

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type registerInput struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	StudyObjective  string `json:"study_objective" form:"study_objective"`
	UniqueReward    string `json:"unique_reward" form:"unique_reward"`
}

type completeTodayInput struct {
	Content string `json:"content" form:"content"`
}

type profileInput struct {
	Name           string `json:"name" form:"name"`
	StudyObjective string `json:"study_objective" form:"study_objective"`
	UniqueReward   string `json:"unique_reward" form:"unique_reward"`
}

type forgotPasswordInput struct {
	RecoveryCode    string `json:"recovery_code" form:"recovery_code"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}
