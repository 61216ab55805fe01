package analyzer

import (
	"fmt"
	"strings"
	"time"
)

const (
	noWantsPlaceholder     = "_No wants identified_"
	noQuestionsPlaceholder = "_No open questions identified_"
)

// buildSalesReport renders the sales brief. The objections table, next
// steps checklist and agenda are fixed; the deal assessment is computed
// from requirement and question counts.
func buildSalesReport(r *AnalysisResult, now time.Time) string {
	p0Needs := filterByPriority(r.Needs, PriorityP0)
	p1Needs := filterByPriority(r.Needs, PriorityP1)

	var b strings.Builder

	fmt.Fprintf(&b, "# Sales Brief: %s\n\n", r.Customer)

	b.WriteString("## Key Points\n\n")
	b.WriteString("### Critical Customer Needs (P0)\n")
	b.WriteString(renderRequirementList(truncateRequirements(p0Needs, 5), noP0Placeholder))
	b.WriteString("\n\n### High Priority Needs (P1)\n")
	b.WriteString(renderRequirementList(truncateRequirements(p1Needs, 5), noP1Placeholder))
	b.WriteString("\n\n### Upsell Opportunities\n")
	if len(r.Wants) == 0 {
		b.WriteString(noWantsPlaceholder + "\n")
	} else {
		for i, want := range truncateRequirements(r.Wants, 4) {
			fmt.Fprintf(&b, "%d. %s — _Upsell opportunity_\n", i+1, want.Text)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Pending Decisions\n")
	if len(r.OpenQuestions) == 0 {
		b.WriteString(noQuestionsPlaceholder + "\n")
	} else {
		for i, q := range truncateStrings(r.OpenQuestions, 5) {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
	}
	b.WriteString(`
Internal decisions needed:
- Pricing model and discount approval thresholds
- Implementation partner vs. in-house delivery
- Support tier and SLA commitments
- Contract length and renewal terms

## Potential Objections

| Objection | Response | Proof Point |
|-----------|----------|-------------|
| Budget concerns | Phased delivery spreads cost across quarters | ROI case studies from similar deployments |
| Timeline pressure | P0 scope is deliverable in the first phase | Reference implementations shipped in 8-12 weeks |
| Solution complexity | Managed delivery reduces operational burden | Architecture review with customer engineering |
| Competitive alternatives | Compliance and security depth differentiate | Third-party audit reports and certifications |

## Next Steps

**This week**
- [ ] Schedule technical deep-dive with engineering team
- [ ] Provide detailed pricing proposal and SOW
- [ ] Share case studies from similar implementations
- [ ] Set up demo environment with sample data

**Next two weeks**
- [ ] Conduct security and compliance review
- [ ] Finalize technical architecture and integrations plan
- [ ] Legal review of contract terms and SLA
- [ ] Executive sponsor alignment meeting

## Suggested Agenda (60 min)
1. Recap of requirements and priorities (10 min)
2. Technical architecture walkthrough (15 min)
3. Security and compliance review (15 min)
4. Commercial proposal and phasing (15 min)
5. Next steps and owners (5 min)

## Deal Assessment
`)

	fmt.Fprintf(&b, "- **Stage**: %s\n", dealStage(len(p0Needs)))
	fmt.Fprintf(&b, "- **Decision timeline**: %s\n", decisionTimeline(len(r.OpenQuestions)))
	fmt.Fprintf(&b, "- **Win probability**: %s\n", winProbability(len(p0Needs), len(r.OpenQuestions)))
	fmt.Fprintf(&b, "- **Key stakeholders**: %s\n", keyStakeholders(p0Needs))

	fmt.Fprintf(&b, "\n---\n_Report generated on %s_\n", now.Format(reportDateLayout))

	return b.String()
}

func dealStage(p0Count int) string {
	if p0Count > 3 {
		return "Qualified - High Priority"
	}
	return "Discovery"
}

func decisionTimeline(openQuestionCount int) string {
	if openQuestionCount < 3 {
		return "2-4 weeks"
	}
	return "4-8 weeks (pending clarity)"
}

func winProbability(p0Count, openQuestionCount int) string {
	if p0Count > 0 && openQuestionCount < 5 {
		return "High (70-80%)"
	}
	return "Medium (40-60%)"
}

// keyStakeholders lists the distinct speakers behind P0 needs, in order
// of first appearance.
func keyStakeholders(p0Needs []RequirementItem) string {
	seen := make(map[string]bool)
	speakers := make([]string, 0, len(p0Needs))
	for _, need := range p0Needs {
		if need.Speaker == "" || seen[need.Speaker] {
			continue
		}
		seen[need.Speaker] = true
		speakers = append(speakers, need.Speaker)
	}
	if len(speakers) == 0 {
		return "To be identified"
	}
	return strings.Join(speakers, ", ")
}
