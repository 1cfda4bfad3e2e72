package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/haca/placement/internal/app/services"
	"github.com/haca/placement/internal/pkg/apperrors"
)

func TestAnalyzeSkillsWithoutAnalyzer(t *testing.T) {
	svc := services.NewAnalysisService(nil, zerolog.Nop())

	_, err := svc.AnalyzeSkills(context.Background(), "React, Node.js")

	assert.ErrorIs(t, err, apperrors.ErrAnalysisUnavailable)
}
