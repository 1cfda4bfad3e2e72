package dto

// AnalyzeSkillsRequest carries free text for the AI skill analysis
type AnalyzeSkillsRequest struct {
	Text string `json:"text" binding:"required"`
}

// AnalyzeSkillsResponse returns the generated analysis text
type AnalyzeSkillsResponse struct {
	Analysis string `json:"analysis"`
}
