package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/app/search"
)

func student(name string, school models.School, batch models.Batch, years int, skills ...string) *models.Student {
	s := &models.Student{
		Name:              name,
		School:            school,
		Batch:             batch,
		YearsOfExperience: years,
		Status:            models.StatusApproved,
	}
	for i, skill := range skills {
		s.Skills = append(s.Skills, models.Skill{ID: int64(i + 1), Name: skill})
	}
	return s
}

func TestScore(t *testing.T) {
	t.Run("batch school and skill matches add up", func(t *testing.T) {
		c := student("Jane", models.SchoolCoding, models.BatchC4, 3, "React", "Node.js")

		// C4 (+10), coding (+10), react (+5), 3 years (+3)
		got := search.Score("C4 coding student with React experience", c)
		assert.Equal(t, 28, got)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		c := student("Jane", models.SchoolCoding, models.BatchC4, 0, "React")

		assert.Equal(t, search.Score("c4 CODING react", c),
			search.Score("C4 coding React", c))
	})

	t.Run("experience counts without any matched term", func(t *testing.T) {
		c := student("Amina", models.SchoolMarketing, models.BatchM2, 4, "SEO")

		assert.Equal(t, 4, search.Score("design figma", c))
	})

	t.Run("each matching skill scores once", func(t *testing.T) {
		c := student("Lee", models.SchoolDesign, models.BatchD1, 0, "Figma", "CSS")

		assert.Equal(t, 10, search.Score("figma css portfolio", c))
	})
}

func TestRank(t *testing.T) {
	t.Run("blank query returns input unchanged", func(t *testing.T) {
		pool := []*models.Student{
			student("A", models.SchoolCoding, models.BatchC1, 0),
			student("B", models.SchoolDesign, models.BatchD2, 5),
		}

		assert.Equal(t, pool, search.Rank("", pool))
		assert.Equal(t, pool, search.Rank("   ", pool))
	})

	t.Run("zero-score candidates are dropped", func(t *testing.T) {
		relevant := student("Jane", models.SchoolCoding, models.BatchC4, 0, "React")
		irrelevant := student("Omar", models.SchoolMarketing, models.BatchM1, 0, "SEO")

		got := search.Rank("react developer", []*models.Student{irrelevant, relevant})

		require.Len(t, got, 1)
		assert.Equal(t, "Jane", got[0].Name)
	})

	t.Run("experience beats score", func(t *testing.T) {
		junior := student("Junior", models.SchoolCoding, models.BatchC4, 1, "React")
		senior := student("Senior", models.SchoolMarketing, models.BatchM3, 6)

		// Junior matches batch, school and skill; Senior matches nothing
		// but carries six years. Experience orders first.
		got := search.Rank("C4 coding react", []*models.Student{junior, senior})

		require.Len(t, got, 2)
		assert.Equal(t, "Senior", got[0].Name)
		assert.Equal(t, "Junior", got[1].Name)
	})

	t.Run("score breaks experience ties", func(t *testing.T) {
		strong := student("Strong", models.SchoolCoding, models.BatchC4, 2, "React")
		weak := student("Weak", models.SchoolCoding, models.BatchC1, 2)

		got := search.Rank("C4 coding react", []*models.Student{weak, strong})

		require.Len(t, got, 2)
		assert.Equal(t, "Strong", got[0].Name)
		assert.Equal(t, "Weak", got[1].Name)
	})

	t.Run("exact ties keep input order", func(t *testing.T) {
		first := student("First", models.SchoolCoding, models.BatchC2, 1)
		second := student("Second", models.SchoolCoding, models.BatchC2, 1)

		got := search.Rank("coding c2", []*models.Student{first, second})

		require.Len(t, got, 2)
		assert.Equal(t, "First", got[0].Name)
		assert.Equal(t, "Second", got[1].Name)
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		a := student("A", models.SchoolCoding, models.BatchC1, 1)
		b := student("B", models.SchoolCoding, models.BatchC1, 5)
		pool := []*models.Student{a, b}

		search.Rank("coding", pool)

		assert.Equal(t, "A", pool[0].Name)
		assert.Equal(t, "B", pool[1].Name)
	})
}
