package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/app/search"
	"github.com/haca/placement/internal/pkg/cache"
)

// candidateStore loads students by approval status
type candidateStore interface {
	GetByStatus(ctx context.Context, status models.ApprovalStatus) ([]*models.Student, error)
}

// skillCatalog lists the known skills
type skillCatalog interface {
	GetAll(ctx context.Context) ([]models.Skill, error)
}

// SearchService serves recruiter candidate queries over approved students.
// The approved pool is read through a cache so repeated searches do not hit
// the database; ranking always runs on the live query.
type SearchService struct {
	students candidateStore
	skills   skillCatalog
	cache    *cache.StudentCache
	logger   zerolog.Logger
}

// NewSearchService creates a new SearchService
func NewSearchService(students candidateStore, skills skillCatalog, studentCache *cache.StudentCache, logger zerolog.Logger) *SearchService {
	return &SearchService{
		students: students,
		skills:   skills,
		cache:    studentCache,
		logger:   logger,
	}
}

// SearchCandidates returns approved students ranked against the query.
// A blank query returns the full approved pool unranked.
func (s *SearchService) SearchCandidates(ctx context.Context, query string) ([]*models.Student, error) {
	candidates, err := s.approvedCandidates(ctx)
	if err != nil {
		return nil, err
	}

	ranked := search.Rank(query, candidates)

	s.logger.Debug().
		Str("query", query).
		Int("pool", len(candidates)).
		Int("matched", len(ranked)).
		Msg("Candidate search executed")

	return ranked, nil
}

// ListSkills returns the skill catalog ordered by name. The registration
// form shows it as typing suggestions.
func (s *SearchService) ListSkills(ctx context.Context) ([]models.Skill, error) {
	return s.skills.GetAll(ctx)
}

// approvedCandidates loads the approved pool, cache first
func (s *SearchService) approvedCandidates(ctx context.Context) ([]*models.Student, error) {
	if students, ok := s.cache.GetApproved(ctx); ok {
		return students, nil
	}

	students, err := s.students.GetByStatus(ctx, models.StatusApproved)
	if err != nil {
		return nil, err
	}

	s.cache.SetApproved(ctx, students)
	return students, nil
}
