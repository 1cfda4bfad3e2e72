package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the subset of pgxpool.Pool the repositories issue statements
// through. Satisfied by *pgxpool.Pool and by test doubles.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repositories bundles all data access objects
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	SkillRepository        *SkillRepository
	TokenRepository        *TokenRepository
	RegistrationRepository *RegistrationRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	userRepo := NewUserRepository(db)
	studentRepo := NewStudentRepository(db)
	return &Repositories{
		UserRepository:         userRepo,
		StudentRepository:      studentRepo,
		SkillRepository:        NewSkillRepository(db),
		TokenRepository:        NewTokenRepository(db),
		RegistrationRepository: NewRegistrationRepository(db, userRepo, studentRepo),
	}
}
