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

// SkillRepository handles database operations for skills and their
// student associations
type SkillRepository struct {
	db querier
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{
		db: db,
	}
}

// GetByName retrieves a skill by exact, case-sensitive name
func (r *SkillRepository) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM skills WHERE name = $1`, name).
		Scan(&skill.ID, &skill.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, fmt.Errorf("error retrieving skill: %w", err)
	}

	return &skill, nil
}

// GetOrCreate returns the skill with the given name, inserting it lazily.
// A concurrent insert losing the unique-constraint race falls back to a
// re-fetch, so the existing row is always reused.
func (r *SkillRepository) GetOrCreate(ctx context.Context, name string) (*models.Skill, error) {
	skill, err := r.GetByName(ctx, name)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, apperrors.ErrSkillNotFound) {
		return nil, err
	}

	var created models.Skill
	err = r.db.QueryRow(ctx,
		`INSERT INTO skills (name) VALUES ($1) RETURNING id, name`, name).
		Scan(&created.ID, &created.Name)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "skills_name_key") {
			return r.GetByName(ctx, name)
		}
		return nil, fmt.Errorf("error creating skill: %w", err)
	}

	return &created, nil
}

// Link associates a skill with a student. Linking an already linked pair
// is a no-op.
func (r *SkillRepository) Link(ctx context.Context, studentID, skillID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO student_skills (student_id, skill_id) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		studentID, skillID)
	if err != nil {
		return fmt.Errorf("error linking skill to student: %w", err)
	}

	return nil
}

// GetAll retrieves all skills ordered by name
func (r *SkillRepository) GetAll(ctx context.Context) ([]models.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.ID, &skill.Name); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	return skills, rows.Err()
}
