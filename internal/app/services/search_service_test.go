package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/app/services"
)

type fakeCandidateStore struct {
	pool  []*models.Student
	err   error
	calls int
}

func (f *fakeCandidateStore) GetByStatus(_ context.Context, status models.ApprovalStatus) ([]*models.Student, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if status != models.StatusApproved {
		return nil, nil
	}
	return f.pool, nil
}

type fakeSkillCatalog struct {
	skills []models.Skill
	err    error
}

func (f *fakeSkillCatalog) GetAll(_ context.Context) ([]models.Skill, error) {
	return f.skills, f.err
}

func approvedPool() []*models.Student {
	return []*models.Student{
		{
			ID: 1, Name: "Jane", School: models.SchoolCoding, Batch: models.BatchC4,
			YearsOfExperience: 3, Status: models.StatusApproved,
			Skills: []models.Skill{{ID: 1, Name: "React"}},
		},
		{
			ID: 2, Name: "Omar", School: models.SchoolMarketing, Batch: models.BatchM1,
			YearsOfExperience: 0, Status: models.StatusApproved,
			Skills: []models.Skill{{ID: 2, Name: "SEO"}},
		},
	}
}

func TestSearchCandidates(t *testing.T) {
	t.Run("blank query returns the whole approved pool", func(t *testing.T) {
		store := &fakeCandidateStore{pool: approvedPool()}
		svc := services.NewSearchService(store, &fakeSkillCatalog{}, noCache(), zerolog.Nop())

		got, err := svc.SearchCandidates(context.Background(), "")

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("query filters and ranks", func(t *testing.T) {
		store := &fakeCandidateStore{pool: approvedPool()}
		svc := services.NewSearchService(store, &fakeSkillCatalog{}, noCache(), zerolog.Nop())

		got, err := svc.SearchCandidates(context.Background(), "C4 coding student with React experience")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Jane", got[0].Name)
	})

	t.Run("store errors surface", func(t *testing.T) {
		store := &fakeCandidateStore{err: errors.New("db down")}
		svc := services.NewSearchService(store, &fakeSkillCatalog{}, noCache(), zerolog.Nop())

		_, err := svc.SearchCandidates(context.Background(), "react")
		assert.Error(t, err)
	})

	t.Run("skill catalog passes through", func(t *testing.T) {
		catalog := &fakeSkillCatalog{skills: []models.Skill{{ID: 1, Name: "React"}, {ID: 2, Name: "SEO"}}}
		svc := services.NewSearchService(&fakeCandidateStore{}, catalog, noCache(), zerolog.Nop())

		skills, err := svc.ListSkills(context.Background())

		require.NoError(t, err)
		require.Len(t, skills, 2)
		assert.Equal(t, "React", skills[0].Name)
	})

	t.Run("disabled cache hits the store every time", func(t *testing.T) {
		store := &fakeCandidateStore{pool: approvedPool()}
		svc := services.NewSearchService(store, &fakeSkillCatalog{}, noCache(), zerolog.Nop())

		_, err := svc.SearchCandidates(context.Background(), "react")
		require.NoError(t, err)
		_, err = svc.SearchCandidates(context.Background(), "react")
		require.NoError(t, err)

		assert.Equal(t, 2, store.calls)
	})
}
