package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/app/models/dto"
	"github.com/haca/placement/internal/pkg/apperrors"
	"github.com/haca/placement/internal/pkg/auth"
	"github.com/haca/placement/internal/pkg/validation"
)

// emailChecker reports whether an email is already taken
type emailChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}

// accountCreator persists a user and its student profile atomically
type accountCreator interface {
	CreateAccountAndStudent(ctx context.Context, user *models.User, student *models.Student) error
}

// skillStore resolves skill names to rows and links them to students
type skillStore interface {
	GetOrCreate(ctx context.Context, name string) (*models.Skill, error)
	Link(ctx context.Context, studentID, skillID int64) error
}

// tokenIssuer signs a freshly registered user in
type tokenIssuer interface {
	IssueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error)
}

// RegistrationService handles student registration. Account and profile are
// created in one transaction; skill linking runs afterwards as a best-effort
// loop so one bad skill never costs the student their registration.
type RegistrationService struct {
	emails   emailChecker
	accounts accountCreator
	skills   skillStore
	tokens   tokenIssuer
	logger   zerolog.Logger
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	emails emailChecker,
	accounts accountCreator,
	skills skillStore,
	tokens tokenIssuer,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		emails:   emails,
		accounts: accounts,
		skills:   skills,
		tokens:   tokens,
		logger:   logger,
	}
}

// ParseSkillNames splits raw comma-separated skill text into trimmed names,
// dropping empty entries. Case is preserved; "React" and "react" are distinct.
func ParseSkillNames(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// validateRegistration applies the form rules beyond what binding covers
func (s *RegistrationService) validateRegistration(req *dto.RegisterStudentRequest) ([]string, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewValidationError("invalid email format")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewValidationError("passwords do not match")
	}
	if !models.School(req.School).IsValid() {
		return nil, apperrors.NewValidationError("unknown school: " + req.School)
	}
	if !models.Batch(req.Batch).IsValid() {
		return nil, apperrors.NewValidationError("unknown batch: " + req.Batch)
	}
	if req.YearsOfExperience < 0 {
		return nil, apperrors.NewValidationError("years of experience cannot be negative")
	}
	if !validation.IsValidURL(req.LinkedinURL) {
		return nil, apperrors.NewValidationError("linkedin URL must be a valid http(s) URL")
	}
	if req.ResumeURL != "" && !validation.IsValidURL(req.ResumeURL) {
		return nil, apperrors.NewValidationError("resume URL must be a valid http(s) URL")
	}

	skillNames := ParseSkillNames(req.Skills)
	if len(skillNames) == 0 {
		return nil, apperrors.ErrSkillsRequired
	}

	return skillNames, nil
}

// RegisterStudent creates the account and student profile, attaches skills and
// signs the student in
func (s *RegistrationService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.RegistrationResponse, error) {
	skillNames, err := s.validateRegistration(req)
	if err != nil {
		return nil, err
	}

	exists, err := s.emails.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("email check error: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("password hashing error: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleStudent,
		IsActive: true,
	}

	student := &models.Student{
		Name:              req.Name,
		School:            models.School(req.School),
		Batch:             models.Batch(req.Batch),
		YearsOfExperience: req.YearsOfExperience,
		LinkedinURL:       req.LinkedinURL,
		Status:            models.StatusPending,
	}
	if req.ResumeURL != "" {
		student.ResumeURL = &req.ResumeURL
	}

	if err := s.accounts.CreateAccountAndStudent(ctx, user, student); err != nil {
		return nil, err
	}

	// Skills are attached after the commit. A failed skill is logged and
	// reported back, never rolled into a registration failure.
	skipped := s.attachSkills(ctx, student, skillNames)

	tokens, err := s.tokens.IssueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Str("school", string(student.School)).
		Str("batch", string(student.Batch)).
		Int("skills", len(student.Skills)).
		Msg("Student registered")

	return &dto.RegistrationResponse{
		Token:         *tokens,
		Student:       dto.NewStudentResponse(student),
		SkippedSkills: skipped,
	}, nil
}

// attachSkills links each named skill to the student, creating missing skill
// rows on the way. Returns the names that could not be attached.
func (s *RegistrationService) attachSkills(ctx context.Context, student *models.Student, names []string) []string {
	var skipped []string
	for _, name := range names {
		skill, err := s.skills.GetOrCreate(ctx, name)
		if err != nil {
			s.logger.Warn().Err(err).Str("skill", name).Int64("studentID", student.ID).
				Msg("Failed to resolve skill, skipping")
			skipped = append(skipped, name)
			continue
		}

		if err := s.skills.Link(ctx, student.ID, skill.ID); err != nil {
			s.logger.Warn().Err(err).Str("skill", name).Int64("studentID", student.ID).
				Msg("Failed to link skill, skipping")
			skipped = append(skipped, name)
			continue
		}

		student.Skills = append(student.Skills, *skill)
	}
	return skipped
}
