package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/db"
)

// RegistrationRepository creates the account and student profile of a
// registration as one atomic unit. The original multi-call flow could leave
// orphaned accounts when the profile insert failed; a single transaction
// removes that failure mode.
type RegistrationRepository struct {
	pool        *pgxpool.Pool
	userRepo    *UserRepository
	studentRepo *StudentRepository
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(pool *pgxpool.Pool, userRepo *UserRepository, studentRepo *StudentRepository) *RegistrationRepository {
	return &RegistrationRepository{
		pool:        pool,
		userRepo:    userRepo,
		studentRepo: studentRepo,
	}
}

// CreateAccountAndStudent inserts the user and its student row in one
// transaction. On success both models carry their generated IDs; on any
// failure neither row exists.
func (r *RegistrationRepository) CreateAccountAndStudent(ctx context.Context, user *models.User, student *models.Student) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.userRepo.CreateTx(ctx, tx, user); err != nil {
			return err
		}

		student.UserID = user.ID
		return r.studentRepo.CreateTx(ctx, tx, student)
	})
}
