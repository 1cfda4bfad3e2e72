// Package analysis wraps the Gemini generative endpoint used to produce
// descriptive skill insights. The output is shown to users verbatim and is
// never fed into candidate matching or ranking.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-pro-latest"

// Analyzer holds the Gemini client and model configuration
type Analyzer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewAnalyzer creates an Analyzer backed by the Gemini API.
// modelName may be empty to use the default model.
func NewAnalyzer(ctx context.Context, apiKey, modelName string) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = defaultModel
	}

	model := client.GenerativeModel(modelName)
	temp := float32(0.2)
	topk := int32(40)
	topp := float32(0.95)
	maxTokens := int32(1024)
	model.Temperature = &temp
	model.TopK = &topk
	model.TopP = &topp
	model.MaxOutputTokens = &maxTokens

	return &Analyzer{
		client: client,
		model:  model,
	}, nil
}

// AnalyzeSkills asks the model for job market insight on the given skill text
func (a *Analyzer) AnalyzeSkills(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(
		"Analyze the following skills and provide insights about their job market demand and compatibility: %s",
		text,
	)

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("error generating skill analysis: %w", err)
	}

	analysis := extractText(resp)
	if analysis == "" {
		return "Unable to analyze skills. Please try again later.", nil
	}
	return analysis, nil
}

// Close releases the underlying client
func (a *Analyzer) Close() error {
	return a.client.Close()
}

// extractText concatenates the text parts of the first candidate
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
