package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/app/models/dto"
	"github.com/haca/placement/internal/app/services"
	"github.com/haca/placement/internal/pkg/apperrors"
)

type fakeEmails struct {
	exists bool
	err    error
	calls  int
}

func (f *fakeEmails) EmailExists(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.exists, f.err
}

type fakeAccounts struct {
	err   error
	calls int
	user  *models.User
}

func (f *fakeAccounts) CreateAccountAndStudent(_ context.Context, user *models.User, student *models.Student) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	user.ID = 1
	student.ID = 10
	student.UserID = user.ID
	f.user = user
	return nil
}

type fakeSkills struct {
	nextID     int64
	failCreate map[string]bool
	links      int
}

func (f *fakeSkills) GetOrCreate(_ context.Context, name string) (*models.Skill, error) {
	if f.failCreate[name] {
		return nil, errors.New("skill store down")
	}
	f.nextID++
	return &models.Skill{ID: f.nextID, Name: name}, nil
}

func (f *fakeSkills) Link(_ context.Context, _ int64, _ int64) error {
	f.links++
	return nil
}

type fakeIssuer struct {
	err error
}

func (f *fakeIssuer) IssueTokens(_ context.Context, _ *models.User) (*dto.TokenResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}, nil
}

func validRequest() *dto.RegisterStudentRequest {
	return &dto.RegisterStudentRequest{
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		Password:          "secret1",
		ConfirmPassword:   "secret1",
		School:            "Coding",
		Batch:             "C4",
		YearsOfExperience: 3,
		LinkedinURL:       "https://linkedin.com/in/jane",
		Skills:            "React, Node.js, SQL",
	}
}

func newRegistrationService(emails *fakeEmails, accounts *fakeAccounts, skills *fakeSkills) *services.RegistrationService {
	return services.NewRegistrationService(emails, accounts, skills, &fakeIssuer{}, zerolog.Nop())
}

func TestParseSkillNames(t *testing.T) {
	t.Run("splits trims and drops empties", func(t *testing.T) {
		got := services.ParseSkillNames(" React , , Node.js ,SQL,")
		assert.Equal(t, []string{"React", "Node.js", "SQL"}, got)
	})

	t.Run("preserves case", func(t *testing.T) {
		got := services.ParseSkillNames("react,React")
		assert.Equal(t, []string{"react", "React"}, got)
	})

	t.Run("blank input yields nothing", func(t *testing.T) {
		assert.Empty(t, services.ParseSkillNames("  ,  , "))
	})
}

func TestRegisterStudent(t *testing.T) {
	t.Run("creates account profile and skills", func(t *testing.T) {
		emails := &fakeEmails{}
		accounts := &fakeAccounts{}
		skills := &fakeSkills{}
		svc := newRegistrationService(emails, accounts, skills)

		resp, err := svc.RegisterStudent(context.Background(), validRequest())

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, "access", resp.Token.AccessToken)
		assert.Empty(t, resp.SkippedSkills)

		require.NotNil(t, resp.Student)
		assert.Equal(t, models.StatusPending, resp.Student.Status)
		assert.Equal(t, []string{"React", "Node.js", "SQL"}, resp.Student.Skills)

		require.NotNil(t, accounts.user)
		assert.Equal(t, models.RoleStudent, accounts.user.Role)
		assert.True(t, accounts.user.IsActive)
		assert.NotEqual(t, "secret1", accounts.user.Password, "password must be hashed")
	})

	t.Run("empty skills fail before any store call", func(t *testing.T) {
		emails := &fakeEmails{}
		accounts := &fakeAccounts{}
		svc := newRegistrationService(emails, accounts, &fakeSkills{})

		req := validRequest()
		req.Skills = " , , "

		_, err := svc.RegisterStudent(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrSkillsRequired)
		assert.Zero(t, emails.calls)
		assert.Zero(t, accounts.calls)
	})

	t.Run("password mismatch is rejected", func(t *testing.T) {
		svc := newRegistrationService(&fakeEmails{}, &fakeAccounts{}, &fakeSkills{})

		req := validRequest()
		req.ConfirmPassword = "different"

		_, err := svc.RegisterStudent(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		svc := newRegistrationService(&fakeEmails{}, &fakeAccounts{}, &fakeSkills{})

		req := validRequest()
		req.Password = "abc"
		req.ConfirmPassword = "abc"

		_, err := svc.RegisterStudent(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown school is rejected", func(t *testing.T) {
		svc := newRegistrationService(&fakeEmails{}, &fakeAccounts{}, &fakeSkills{})

		req := validRequest()
		req.School = "Cooking"

		_, err := svc.RegisterStudent(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unknown batch is rejected", func(t *testing.T) {
		svc := newRegistrationService(&fakeEmails{}, &fakeAccounts{}, &fakeSkills{})

		req := validRequest()
		req.Batch = "Z9"

		_, err := svc.RegisterStudent(context.Background(), req)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		accounts := &fakeAccounts{}
		svc := newRegistrationService(&fakeEmails{exists: true}, accounts, &fakeSkills{})

		_, err := svc.RegisterStudent(context.Background(), validRequest())

		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		assert.Zero(t, accounts.calls)
	})

	t.Run("failed skill is skipped not fatal", func(t *testing.T) {
		skills := &fakeSkills{failCreate: map[string]bool{"Node.js": true}}
		svc := newRegistrationService(&fakeEmails{}, &fakeAccounts{}, skills)

		resp, err := svc.RegisterStudent(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, []string{"Node.js"}, resp.SkippedSkills)
		assert.Equal(t, []string{"React", "SQL"}, resp.Student.Skills)
	})

	t.Run("account creation failure surfaces", func(t *testing.T) {
		accounts := &fakeAccounts{err: apperrors.ErrStudentAlreadyExists}
		svc := newRegistrationService(&fakeEmails{}, accounts, &fakeSkills{})

		_, err := svc.RegisterStudent(context.Background(), validRequest())
		assert.ErrorIs(t, err, apperrors.ErrStudentAlreadyExists)
	})
}
