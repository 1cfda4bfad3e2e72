package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken,omitempty"`
	TokenType        string `json:"tokenType" example:"Bearer"`
	ExpiresIn        int64  `json:"expiresIn"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn,omitempty"`
}

// RefreshTokenRequest represents a refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RegisterStudentRequest carries the full student registration form.
// Skills arrive as the raw comma-separated text the student typed.
type RegisterStudentRequest struct {
	Name              string `json:"name" binding:"required,min=2,max=100"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required"`
	ConfirmPassword   string `json:"confirmPassword" binding:"required"`
	School            string `json:"school" binding:"required"`
	Batch             string `json:"batch" binding:"required"`
	YearsOfExperience int    `json:"yearsOfExperience" binding:"min=0"`
	LinkedinURL       string `json:"linkedinUrl" binding:"required,url"`
	ResumeURL         string `json:"resumeUrl" binding:"omitempty,url"`
	Skills            string `json:"skills" binding:"required"`
}

// RegisterRecruiterRequest represents a recruiter account registration
type RegisterRecruiterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// UserProfile represents the authenticated user's profile
type UserProfile struct {
	ID      int64    `json:"id"`
	Email   string   `json:"email"`
	Role    string   `json:"role"`
	Student *StudentResponse `json:"student,omitempty"`
}
