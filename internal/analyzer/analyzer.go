// Package analyzer implements the deterministic, rule-based transcript
// analysis pipeline: segmentation, speaker/timestamp attribution,
// NEED/WANT classification and report synthesis.
package analyzer

import (
	"fmt"
	"time"
)

// RequirementItem is one classified utterance from the transcript.
type RequirementItem struct {
	Text      string `json:"text"`
	Priority  string `json:"priority"` // P0, P1, P2 or P3
	Speaker   string `json:"speaker,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Category  string `json:"category"`
}

// AnalysisResult is the complete output of one analysis run.
type AnalysisResult struct {
	Customer           string            `json:"customer"`
	Needs              []RequirementItem `json:"needs"`
	Wants              []RequirementItem `json:"wants"`
	Risks              []string          `json:"risks"`
	Assumptions        []string          `json:"assumptions"`
	OpenQuestions      []string          `json:"open_questions"`
	AcceptanceCriteria []string          `json:"acceptance_criteria"`
	TechReportMd       string            `json:"techReportMd"`
	SalesReportMd      string            `json:"salesReportMd"`
}

// Analyze runs the full pipeline over a raw transcript. It is total: any
// input, including the empty string, produces a valid result. projectName
// is passed through as the customer name and defaults to "Project".
func Analyze(transcriptContent, projectName string) *AnalysisResult {
	return analyzeAt(transcriptContent, projectName, time.Now())
}

// analyzeAt is Analyze with an injectable report date.
func analyzeAt(transcriptContent, projectName string, now time.Time) *AnalysisResult {
	if projectName == "" {
		projectName = "Project"
	}

	result := &AnalysisResult{
		Customer:           projectName,
		Needs:              []RequirementItem{},
		Wants:              []RequirementItem{},
		Risks:              []string{},
		Assumptions:        []string{},
		OpenQuestions:      []string{},
		AcceptanceCriteria: []string{},
	}

	// Single left-to-right scan; the speaker accumulator is local to this
	// call so concurrent analyses never share state.
	currentSpeaker := ""
	for _, line := range segment(transcriptContent) {
		utt, next := annotate(line, currentSpeaker)
		currentSpeaker = next

		switch classifyRequirement(utt.text) {
		case kindNeed:
			result.Needs = append(result.Needs, newRequirement(utt))
		case kindWant:
			result.Wants = append(result.Wants, newRequirement(utt))
		}

		// Risk/assumption/question extraction runs on every utterance,
		// classified or not, and the three checks are independent.
		if containsAny(utt.text, riskKeywords) {
			result.Risks = append(result.Risks, utt.text)
		}
		if containsAny(utt.text, assumptionKeywords) {
			result.Assumptions = append(result.Assumptions, utt.text)
		}
		if isOpenQuestion(utt.text) {
			result.OpenQuestions = append(result.OpenQuestions, utt.text)
		}
	}

	for _, need := range result.Needs {
		if need.Priority == PriorityP0 || need.Priority == PriorityP1 {
			result.AcceptanceCriteria = append(result.AcceptanceCriteria,
				fmt.Sprintf("Given the requirement %q, then the system must validate and handle this correctly", need.Text))
		}
	}

	result.TechReportMd = buildTechReport(result, now)
	result.SalesReportMd = buildSalesReport(result, now)

	return result
}

// FillReports regenerates both Markdown reports from the structured fields.
// Used by the LLM analysis path when the model returns requirement data but
// no usable report documents.
func (r *AnalysisResult) FillReports(now time.Time) {
	r.TechReportMd = buildTechReport(r, now)
	r.SalesReportMd = buildSalesReport(r, now)
}

func newRequirement(utt utterance) RequirementItem {
	return RequirementItem{
		Text:      utt.text,
		Priority:  assignPriority(utt.text),
		Speaker:   utt.speaker,
		Timestamp: utt.timestamp,
		Category:  determineCategory(utt.text),
	}
}
