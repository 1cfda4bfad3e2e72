package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/haca/placement/internal/app/models"
	appRepos "github.com/haca/placement/internal/app/repositories"
	"github.com/haca/placement/internal/config"
	"github.com/haca/placement/internal/pkg/auth"
)

// starterSkills are pre-created so early registrations link to shared rows
// instead of each minting their own spelling
var starterSkills = []string{
	"HTML", "CSS", "JavaScript", "React", "Node.js",
	"Python", "SQL", "Figma", "SEO", "Copywriting",
}

// CreateDefaultData creates the admin account and starter skills if they do
// not exist. Errors are collected and reported but never abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	skillRepo := appRepos.NewSkillRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin account, starter skills)...")
	var finalErr error

	// --- Admin account --- //
	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin account")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:    cfg.Admin.Email,
				Password: hashedPassword,
				Role:     appModels.RoleAdmin,
				IsActive: true,
			}
			if err := userRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating admin account")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("email", cfg.Admin.Email).Msg("Admin account created")
			}
		}
	}

	// --- Starter skills --- //
	for _, name := range starterSkills {
		if _, err := skillRepo.GetOrCreate(ctx, name); err != nil {
			lgr.Error().Err(err).Str("skill", name).Msg("Error creating starter skill")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
