package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"reqlens/internal/analyzer"
)

// AnalyzeTranscript sends a transcript to the OpenAI API and returns the
// extracted requirements in the same shape as the rule-based analyzer.
func AnalyzeTranscript(ctx context.Context, apiKey, transcript, projectName string) (*analyzer.AnalysisResult, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is not configured")
	}

	language := DetectLanguage(transcript)
	systemPrompt, userPrompt := BuildAnalysisPrompt(transcript, projectName, language)
	log.Printf("Analyzing transcript with OpenAI (language=%s, length=%d)", language, len(transcript))

	client := openai.NewClient(apiKey)
	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices")
	}

	content := extractJSONFromMarkdown(resp.Choices[0].Message.Content)

	var result analyzer.AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("parse openai response: %w", err)
	}

	normalizeResult(&result, projectName)
	log.Printf("OpenAI analysis complete: %d needs, %d wants", len(result.Needs), len(result.Wants))
	return &result, nil
}

// extractJSONFromMarkdown strips a markdown code fence if the model wrapped
// its JSON output in one.
func extractJSONFromMarkdown(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// normalizeResult fills in the fields the model may omit so callers get the
// same guarantees as the rule-based analyzer: non-nil slices, valid
// priorities and categories, and rendered reports.
func normalizeResult(r *analyzer.AnalysisResult, projectName string) {
	if r.Customer == "" {
		r.Customer = projectName
	}
	if r.Needs == nil {
		r.Needs = []analyzer.RequirementItem{}
	}
	if r.Wants == nil {
		r.Wants = []analyzer.RequirementItem{}
	}
	if r.Risks == nil {
		r.Risks = []string{}
	}
	if r.Assumptions == nil {
		r.Assumptions = []string{}
	}
	if r.OpenQuestions == nil {
		r.OpenQuestions = []string{}
	}
	if r.AcceptanceCriteria == nil {
		r.AcceptanceCriteria = []string{}
	}
	for i := range r.Needs {
		normalizeItem(&r.Needs[i])
	}
	for i := range r.Wants {
		normalizeItem(&r.Wants[i])
	}
	if r.TechReportMd == "" || r.SalesReportMd == "" {
		r.FillReports(time.Now())
	}
}

func normalizeItem(item *analyzer.RequirementItem) {
	switch item.Priority {
	case analyzer.PriorityP0, analyzer.PriorityP1, analyzer.PriorityP2, analyzer.PriorityP3:
	default:
		item.Priority = analyzer.PriorityP3
	}
	if item.Category == "" {
		item.Category = analyzer.CategoryGeneral
	}
}
