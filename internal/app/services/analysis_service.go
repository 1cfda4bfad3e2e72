package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/haca/placement/internal/pkg/analysis"
	"github.com/haca/placement/internal/pkg/apperrors"
)

// AnalysisService exposes the AI skill analysis. The analyzer is optional:
// without an API key it is nil and every request reports the feature as
// unavailable instead of failing at startup.
type AnalysisService struct {
	analyzer *analysis.Analyzer
	logger   zerolog.Logger
}

// NewAnalysisService creates a new AnalysisService. A nil analyzer disables
// the feature.
func NewAnalysisService(analyzer *analysis.Analyzer, logger zerolog.Logger) *AnalysisService {
	return &AnalysisService{
		analyzer: analyzer,
		logger:   logger,
	}
}

// AnalyzeSkills returns the model's take on the given skill text
func (s *AnalysisService) AnalyzeSkills(ctx context.Context, text string) (string, error) {
	if s.analyzer == nil {
		return "", apperrors.ErrAnalysisUnavailable
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperrors.NewValidationError("text cannot be empty")
	}

	result, err := s.analyzer.AnalyzeSkills(ctx, text)
	if err != nil {
		s.logger.Error().Err(err).Msg("Skill analysis call failed")
		return "", apperrors.ErrAnalysisUnavailable
	}

	return result, nil
}
