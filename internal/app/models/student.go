package models

import (
	"time"
)

// Skill defines the skill model based on the 'skills' table.
// A skill row is shared across students through the student_skills join table;
// names are unique and matched case-sensitively on registration.
type Skill struct {
	ID   int64  `json:"id" db:"id" example:"3"`          // Unique identifier for the skill
	Name string `json:"name" db:"name" example:"React"`  // Skill name, unique
}

// Student defines the student model based on the 'students' table.
// A student is created pending and only ever transitions between approval
// statuses; rows are never deleted.
type Student struct {
	ID                int64          `json:"id" db:"id"`                                         // Unique identifier for the student record
	UserID            int64          `json:"userId" db:"user_id"`                                // ID of the owning user account
	Name              string         `json:"name" db:"name" example:"Jane Doe"`                  // Student's full name
	School            School         `json:"school" db:"school" example:"Coding"`                // School the student belongs to
	Batch             Batch          `json:"batch" db:"batch" example:"C4"`                      // Cohort code within the school
	YearsOfExperience int            `json:"yearsOfExperience" db:"years_of_experience"`         // Prior work experience in whole years
	LinkedinURL       string         `json:"linkedinUrl" db:"linkedin_url"`                      // LinkedIn profile URL, required
	ResumeURL         *string        `json:"resumeUrl,omitempty" db:"resume_url"`                // Resume URL (nullable)
	Status            ApprovalStatus `json:"status" db:"status" example:"pending"`               // Approval status governing recruiter visibility
	CreatedAt         time.Time      `json:"createdAt" db:"created_at"`                          // Timestamp set at insertion

	// Relations (populated when needed)
	Skills []Skill `json:"skills"` // Skills attached through the student_skills join
	User   *User   `json:"user,omitempty"`
}
