package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/haca/placement/internal/app/models/dto"
	"github.com/haca/placement/internal/app/services"
	"github.com/haca/placement/internal/middleware"
)

// SearchController serves recruiter candidate queries and skill analysis
type SearchController struct {
	searchService   *services.SearchService
	analysisService *services.AnalysisService
	logger          zerolog.Logger
}

// NewSearchController creates a new SearchController
func NewSearchController(searchService *services.SearchService, analysisService *services.AnalysisService, logger zerolog.Logger) *SearchController {
	return &SearchController{
		searchService:   searchService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// SearchCandidates returns approved students ranked against the query
// @Summary Search candidates
// @Description Returns approved students ranked against the free-text query. A blank query returns the full approved pool.
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param q query string false "Free-text query, e.g. 'C4 coding student with React experience'"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Ranked candidates"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Recruiter or admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /candidates [get]
func (c *SearchController) SearchCandidates(ctx *gin.Context) {
	query := ctx.Query("q")

	candidates, err := c.searchService.SearchCandidates(ctx.Request.Context(), query)
	if err != nil {
		c.logger.Error().Err(err).Str("query", query).Msg("Candidate search failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewStudentResponses(candidates)})
}

// ListSkills returns the skill catalog
// @Summary List skills
// @Description Returns all known skills ordered by name, for registration form suggestions
// @Tags skills
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.SkillResponse} "Skill catalog"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /skills [get]
func (c *SearchController) ListSkills(ctx *gin.Context) {
	skills, err := c.searchService.ListSkills(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Skill listing failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.NewSkillResponses(skills)})
}

// AnalyzeSkills runs the AI skill analysis on free text
// @Summary Analyze skills
// @Description Asks the AI model for job market insight on the given skill text
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnalyzeSkillsRequest true "Skill text"
// @Success 200 {object} dto.APIResponse{data=dto.AnalyzeSkillsResponse} "Analysis"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 503 {object} dto.ErrorResponse "Analysis unavailable"
// @Router /skills/analyze [post]
func (c *SearchController) AnalyzeSkills(ctx *gin.Context) {
	var req dto.AnalyzeSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.analysisService.AnalyzeSkills(ctx.Request.Context(), req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.AnalyzeSkillsResponse{Analysis: result}})
}
