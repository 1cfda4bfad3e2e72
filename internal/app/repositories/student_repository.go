package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/pkg/apperrors"
	"github.com/haca/placement/internal/pkg/dberrors"
)

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, user_id, name, school, batch, years_of_experience, linkedin_url, resume_url, status, created_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.UserID,
		&student.Name,
		&student.School,
		&student.Batch,
		&student.YearsOfExperience,
		&student.LinkedinURL,
		&student.ResumeURL,
		&student.Status,
		&student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	student.Skills = []models.Skill{}
	return &student, nil
}

// CreateTx inserts a new student row within an existing transaction.
// Status defaults to pending and created_at is set at insertion time.
func (r *StudentRepository) CreateTx(ctx context.Context, tx pgx.Tx, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, name, school, batch, years_of_experience, linkedin_url, resume_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query,
		student.UserID,
		student.Name,
		student.School,
		student.Batch,
		student.YearsOfExperience,
		student.LinkedinURL,
		student.ResumeURL,
		student.Status,
	).Scan(&student.ID, &student.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_user_id_key") {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID, skills included
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if err := r.attachSkills(ctx, []*models.Student{student}); err != nil {
		return nil, err
	}

	return student, nil
}

// GetByUserID retrieves the student profile owned by a user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE user_id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student by user: %w", err)
	}

	if err := r.attachSkills(ctx, []*models.Student{student}); err != nil {
		return nil, err
	}

	return student, nil
}

// GetByStatus retrieves all students with the given status, newest first,
// skills included
func (r *StudentRepository) GetByStatus(ctx context.Context, status models.ApprovalStatus) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE status = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by status: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachSkills(ctx, students); err != nil {
		return nil, err
	}

	return students, nil
}

// UpdateStatus updates exactly the status column of one student row.
// Returns ErrStudentNotFound when no row matched; nothing else changes.
func (r *StudentRepository) UpdateStatus(ctx context.Context, id int64, status models.ApprovalStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating student status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateResumeURL updates the resume URL on a student row
func (r *StudentRepository) UpdateResumeURL(ctx context.Context, id int64, resumeURL string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET resume_url = $1 WHERE id = $2`, resumeURL, id)
	if err != nil {
		return fmt.Errorf("error updating resume url: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// CountByStatus returns the number of students per approval status
func (r *StudentRepository) CountByStatus(ctx context.Context) (map[models.ApprovalStatus]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM students GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ApprovalStatus]int)
	for rows.Next() {
		var status models.ApprovalStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// attachSkills loads the skills for each student in one query
func (r *StudentRepository) attachSkills(ctx context.Context, students []*models.Student) error {
	if len(students) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(students))
	byID := make(map[int64]*models.Student, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	query := `
		SELECT ss.student_id, sk.id, sk.name
		FROM student_skills ss
		JOIN skills sk ON sk.id = ss.skill_id
		WHERE ss.student_id = ANY($1)
		ORDER BY sk.name
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("error retrieving student skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var studentID int64
		var skill models.Skill
		if err := rows.Scan(&studentID, &skill.ID, &skill.Name); err != nil {
			return err
		}
		if student, ok := byID[studentID]; ok {
			student.Skills = append(student.Skills, skill)
		}
	}

	return rows.Err()
}
