package dto

import (
	"time"

	"github.com/haca/placement/internal/app/models"
)

// StudentResponse represents a student profile as returned by the API
type StudentResponse struct {
	ID                int64                 `json:"id"`
	Name              string                `json:"name"`
	School            models.School         `json:"school"`
	Batch             models.Batch          `json:"batch"`
	YearsOfExperience int                   `json:"yearsOfExperience"`
	LinkedinURL       string                `json:"linkedinUrl"`
	ResumeURL         *string               `json:"resumeUrl,omitempty"`
	Status            models.ApprovalStatus `json:"status"`
	Skills            []string              `json:"skills"`
	CreatedAt         time.Time             `json:"createdAt"`
}

// NewStudentResponse maps a student model to its API shape
func NewStudentResponse(s *models.Student) *StudentResponse {
	skills := make([]string, 0, len(s.Skills))
	for _, skill := range s.Skills {
		skills = append(skills, skill.Name)
	}
	return &StudentResponse{
		ID:                s.ID,
		Name:              s.Name,
		School:            s.School,
		Batch:             s.Batch,
		YearsOfExperience: s.YearsOfExperience,
		LinkedinURL:       s.LinkedinURL,
		ResumeURL:         s.ResumeURL,
		Status:            s.Status,
		Skills:            skills,
		CreatedAt:         s.CreatedAt,
	}
}

// NewStudentResponses maps a slice of student models
func NewStudentResponses(students []*models.Student) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// SkillResponse represents one catalog skill
type SkillResponse struct {
	ID   int64  `json:"id" example:"3"`
	Name string `json:"name" example:"React"`
}

// NewSkillResponses maps a slice of skill models
func NewSkillResponses(skills []models.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, skill := range skills {
		out = append(out, SkillResponse{ID: skill.ID, Name: skill.Name})
	}
	return out
}

// UpdateStatusRequest represents an admin status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// RegistrationResponse reports the outcome of a registration, including
// which skills could not be attached (best-effort loop)
type RegistrationResponse struct {
	Token         TokenResponse    `json:"token"`
	Student       *StudentResponse `json:"student"`
	SkippedSkills []string         `json:"skippedSkills,omitempty"`
}

// StudentCounts aggregates students per approval status for the admin dashboard
type StudentCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// ResumeUploadResponse returns the stored resume URL
type ResumeUploadResponse struct {
	ResumeURL string `json:"resumeUrl"`
}
