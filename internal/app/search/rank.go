// Package search implements the candidate search and relevance ranking used
// by recruiters. Ranking is a pure function over an in-memory candidate
// list; it performs no I/O and callers are expected to pass only approved
// students.
package search

import (
	"sort"
	"strings"

	"github.com/haca/placement/internal/app/models"
)

// Scoring weights. Experience contributes unconditionally, which means any
// candidate with at least one year passes the relevance filter even without
// a matched term.
const (
	batchWeight      = 10
	schoolWeight     = 10
	skillWeight      = 5
	experienceWeight = 1
)

// Score computes the relevance of one candidate for a free-text query.
// Batch, school and skill matches are case-insensitive substring checks
// against the query text.
func Score(query string, candidate *models.Student) int {
	lowerQuery := strings.ToLower(query)

	score := 0

	if strings.Contains(lowerQuery, strings.ToLower(string(candidate.Batch))) {
		score += batchWeight
	}

	if strings.Contains(lowerQuery, strings.ToLower(string(candidate.School))) {
		score += schoolWeight
	}

	for _, skill := range candidate.Skills {
		if strings.Contains(lowerQuery, strings.ToLower(skill.Name)) {
			score += skillWeight
		}
	}

	score += candidate.YearsOfExperience * experienceWeight

	return score
}

// Rank returns the candidates relevant to the query, most experienced
// first. A blank query returns the input unchanged, acting as "show all".
// Zero-score candidates are dropped. Ordering is years of experience
// descending, then score descending; exact ties keep input order.
func Rank(query string, candidates []*models.Student) []*models.Student {
	if strings.TrimSpace(query) == "" {
		return candidates
	}

	type scored struct {
		student *models.Student
		score   int
	}

	matches := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		if s := Score(query, candidate); s > 0 {
			matches = append(matches, scored{student: candidate, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].student.YearsOfExperience != matches[j].student.YearsOfExperience {
			return matches[i].student.YearsOfExperience > matches[j].student.YearsOfExperience
		}
		return matches[i].score > matches[j].score
	})

	result := make([]*models.Student, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.student)
	}

	return result
}
