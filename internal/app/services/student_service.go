package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/app/models/dto"
	"github.com/haca/placement/internal/pkg/apperrors"
	"github.com/haca/placement/internal/pkg/cache"
)

// studentStore is the data access surface StudentService needs
type studentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	GetByStatus(ctx context.Context, status models.ApprovalStatus) ([]*models.Student, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApprovalStatus) error
	UpdateResumeURL(ctx context.Context, id int64, resumeURL string) error
	CountByStatus(ctx context.Context) (map[models.ApprovalStatus]int, error)
}

// fileStorage persists uploaded files and returns their public URLs
type fileStorage interface {
	SaveFile(fileHeader *multipart.FileHeader) (string, error)
	DeleteFile(filePath string) error
}

// StudentService handles the admin review workflow and student self-service
type StudentService struct {
	students studentStore
	storage  fileStorage
	cache    *cache.StudentCache
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students studentStore, storage fileStorage, studentCache *cache.StudentCache, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		storage:  storage,
		cache:    studentCache,
		logger:   logger,
	}
}

// ListByStatus returns students in one approval status, newest first
func (s *StudentService) ListByStatus(ctx context.Context, status models.ApprovalStatus) ([]*models.Student, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	return s.students.GetByStatus(ctx, status)
}

// GetByID returns one student with skills attached
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// UpdateStatus transitions a student between approval statuses. Any valid
// status can be set from any other, so a rejection can be reconsidered.
func (s *StudentService) UpdateStatus(ctx context.Context, id int64, status models.ApprovalStatus) error {
	if !status.IsValid() {
		return apperrors.ErrInvalidStatus
	}

	if err := s.students.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	// The approved listing is cached; any transition can change it
	s.cache.Invalidate(ctx)

	s.logger.Info().Int64("studentID", id).Str("status", string(status)).Msg("Student status updated")
	return nil
}

// Counts aggregates students per approval status for the admin dashboard
func (s *StudentService) Counts(ctx context.Context) (*dto.StudentCounts, error) {
	counts, err := s.students.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}

	return &dto.StudentCounts{
		Pending:  counts[models.StatusPending],
		Approved: counts[models.StatusApproved],
		Rejected: counts[models.StatusRejected],
	}, nil
}

// UploadResume stores the uploaded file and records its URL on the caller's
// student profile
func (s *StudentService) UploadResume(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	resumeURL, err := s.storage.SaveFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to store resume: %w", err)
	}

	if err := s.students.UpdateResumeURL(ctx, student.ID, resumeURL); err != nil {
		return "", err
	}

	// The replaced file is unreachable once the URL is overwritten
	if student.ResumeURL != nil && *student.ResumeURL != resumeURL {
		if err := s.storage.DeleteFile(*student.ResumeURL); err != nil {
			s.logger.Warn().Err(err).Str("path", *student.ResumeURL).Msg("Failed to remove replaced resume file")
		}
	}

	s.cache.Invalidate(ctx)

	s.logger.Info().Int64("studentID", student.ID).Msg("Resume uploaded")
	return resumeURL, nil
}
