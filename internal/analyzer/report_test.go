package analyzer

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportTestDate = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func TestBuildTechReport_SectionOrder(t *testing.T) {
	r := &AnalysisResult{Customer: "Acme"}
	report := buildTechReport(r, reportTestDate)

	sections := []string{
		"# Technical Specification: Acme",
		"## Executive Summary",
		"## High Priority Requirements (P1)",
		"## Proposed Architecture",
		"## Integrations",
		"## Acceptance Criteria & SLOs",
		"## Risks & Mitigations",
		"## Open Assumptions",
		"## Implementation Roadmap",
		"_Report generated on 2026-01-15_",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(report, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestBuildTechReport_RequirementRendering(t *testing.T) {
	r := &AnalysisResult{
		Customer: "Acme",
		Needs: []RequirementItem{
			{Text: "encrypt everything", Priority: PriorityP0, Category: CategorySecurity, Speaker: "CTO"},
			{Text: "no speaker on this one", Priority: PriorityP0, Category: CategoryGeneral},
			{Text: "fast sign in", Priority: PriorityP1, Category: CategoryAuthentication, Speaker: "PM"},
		},
	}

	report := buildTechReport(r, reportTestDate)

	assert.Contains(t, report, "1. **Security & Compliance**: encrypt everything _(CTO)_")
	assert.Contains(t, report, "2. **General**: no speaker on this one\n")
	assert.Contains(t, report, "1. **Authentication**: fast sign in _(PM)_")
	assert.NotContains(t, report, noP0Placeholder)
	assert.NotContains(t, report, noP1Placeholder)
}

func TestBuildTechReport_SLOTable(t *testing.T) {
	report := buildTechReport(&AnalysisResult{Customer: "Acme"}, reportTestDate)

	assert.Contains(t, report, "| Availability | 99.9% |")
	assert.Contains(t, report, "| Latency (P95) | < 300ms |")
	assert.Contains(t, report, "| RTO / RPO | 4h / 1h |")
}

func TestBuildTechReport_TruncatesAcceptanceAndRisks(t *testing.T) {
	r := &AnalysisResult{Customer: "Acme"}
	for i := 0; i < 7; i++ {
		r.Needs = append(r.Needs, RequirementItem{
			Text:     fmt.Sprintf("p0 need number %d", i),
			Priority: PriorityP0,
			Category: CategoryGeneral,
		})
		r.Risks = append(r.Risks, fmt.Sprintf("risk number %d", i))
	}

	report := buildTechReport(r, reportTestDate)

	// Acceptance statements and risk entries stop at the first five.
	assert.Contains(t, report, `"p0 need number 4"`)
	assert.NotContains(t, report, `"p0 need number 5"`)
	assert.Contains(t, report, "5. **Risk**: risk number 4")
	assert.NotContains(t, report, "risk number 5")
}

func TestBuildTechReport_RoadmapConditionalBullets(t *testing.T) {
	empty := buildTechReport(&AnalysisResult{Customer: "Acme"}, reportTestDate)
	assert.Contains(t, empty, "- No P0 requirements identified in this analysis")
	assert.Contains(t, empty, "- No P1 requirements identified in this analysis")
	assert.Contains(t, empty, "- No P2-P3 requirements identified in this analysis")

	full := buildTechReport(&AnalysisResult{
		Customer: "Acme",
		Needs: []RequirementItem{
			{Text: "a", Priority: PriorityP0, Category: CategoryGeneral},
			{Text: "b", Priority: PriorityP1, Category: CategoryGeneral},
			{Text: "c", Priority: PriorityP3, Category: CategoryGeneral},
		},
	}, reportTestDate)
	assert.Contains(t, full, "- Address critical (P0) requirements")
	assert.Contains(t, full, "- High priority (P1) requirements")
	assert.Contains(t, full, "- Remaining (P2-P3) requirements")
}

func TestBuildSalesReport_SectionOrder(t *testing.T) {
	report := buildSalesReport(&AnalysisResult{Customer: "Globex"}, reportTestDate)

	sections := []string{
		"# Sales Brief: Globex",
		"## Key Points",
		"### Critical Customer Needs (P0)",
		"### High Priority Needs (P1)",
		"### Upsell Opportunities",
		"## Pending Decisions",
		"## Potential Objections",
		"## Next Steps",
		"## Suggested Agenda (60 min)",
		"## Deal Assessment",
		"_Report generated on 2026-01-15_",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(report, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestBuildSalesReport_ChecklistAndObjections(t *testing.T) {
	report := buildSalesReport(&AnalysisResult{Customer: "Globex"}, reportTestDate)

	assert.Equal(t, 8, strings.Count(report, "- [ ] "))
	assert.Contains(t, report, "- [ ] Schedule technical deep-dive with engineering team")
	assert.Contains(t, report, "- [ ] Executive sponsor alignment meeting")
	assert.Contains(t, report, "| Budget concerns |")
	assert.Contains(t, report, "| Competitive alternatives |")
}

func TestBuildSalesReport_UpsellAndPendingLimits(t *testing.T) {
	r := &AnalysisResult{Customer: "Globex"}
	for i := 0; i < 6; i++ {
		r.Wants = append(r.Wants, RequirementItem{Text: fmt.Sprintf("want %d", i), Priority: PriorityP3})
		r.OpenQuestions = append(r.OpenQuestions, fmt.Sprintf("question %d", i))
	}

	report := buildSalesReport(r, reportTestDate)

	assert.Contains(t, report, "want 3 — _Upsell opportunity_")
	assert.NotContains(t, report, "want 4")
	assert.Contains(t, report, "5. question 4")
	assert.NotContains(t, report, "question 5")
}

func TestDealAssessment(t *testing.T) {
	assert.Equal(t, "Discovery", dealStage(3))
	assert.Equal(t, "Qualified - High Priority", dealStage(4))

	assert.Equal(t, "2-4 weeks", decisionTimeline(2))
	assert.Equal(t, "4-8 weeks (pending clarity)", decisionTimeline(3))

	assert.Equal(t, "High (70-80%)", winProbability(1, 4))
	assert.Equal(t, "Medium (40-60%)", winProbability(0, 0))
	assert.Equal(t, "Medium (40-60%)", winProbability(2, 5))
}

func TestKeyStakeholders(t *testing.T) {
	needs := []RequirementItem{
		{Text: "a", Priority: PriorityP0, Speaker: "CTO"},
		{Text: "b", Priority: PriorityP0, Speaker: "CFO"},
		{Text: "c", Priority: PriorityP0, Speaker: "CTO"},
		{Text: "d", Priority: PriorityP0},
	}

	assert.Equal(t, "CTO, CFO", keyStakeholders(needs))
	assert.Equal(t, "To be identified", keyStakeholders(nil))
}
