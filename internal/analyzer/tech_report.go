package analyzer

import (
	"fmt"
	"strings"
	"time"
)

// Placeholder lines rendered when a report section has no content. These
// strings are part of the observable contract; consumers match on them.
const (
	noP0Placeholder          = "_No P0 requirements identified_"
	noP1Placeholder          = "_No P1 requirements identified_"
	noRisksPlaceholder       = "_No risks identified_"
	noAssumptionsPlaceholder = "_No assumptions identified_"
)

const reportDateLayout = "2006-01-02"

// filterByPriority returns the items with one of the given priorities,
// preserving transcript order.
func filterByPriority(items []RequirementItem, priorities ...string) []RequirementItem {
	out := make([]RequirementItem, 0, len(items))
	for _, item := range items {
		for _, p := range priorities {
			if item.Priority == p {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// renderRequirementList renders numbered requirement lines of the form
// `1. **Category**: text _(speaker)_`, or the placeholder when empty.
func renderRequirementList(items []RequirementItem, placeholder string) string {
	if len(items) == 0 {
		return placeholder
	}
	lines := make([]string, 0, len(items))
	for i, item := range items {
		line := fmt.Sprintf("%d. **%s**: %s", i+1, item.Category, item.Text)
		if item.Speaker != "" {
			line += fmt.Sprintf(" _(%s)_", item.Speaker)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// buildTechReport renders the technical specification document. Sections
// and wording are fixed; only the requirement data and the footer date
// vary between runs.
func buildTechReport(r *AnalysisResult, now time.Time) string {
	p0Needs := filterByPriority(r.Needs, PriorityP0)
	p1Needs := filterByPriority(r.Needs, PriorityP1)
	p2p3Needs := filterByPriority(r.Needs, PriorityP2, PriorityP3)

	var b strings.Builder

	fmt.Fprintf(&b, "# Technical Specification: %s\n\n", r.Customer)

	b.WriteString("## Executive Summary\n")
	b.WriteString("Critical (P0) requirements identified during transcript analysis:\n\n")
	b.WriteString(renderRequirementList(p0Needs, noP0Placeholder))
	b.WriteString("\n\n")

	b.WriteString("## High Priority Requirements (P1)\n")
	b.WriteString(renderRequirementList(p1Needs, noP1Placeholder))
	b.WriteString("\n\n")

	b.WriteString(`## Proposed Architecture
- API gateway with authentication and rate limiting
- Stateless core application services, horizontally scalable
- PostgreSQL for transactional data, object storage for documents
- Asynchronous worker queue for long-running analysis jobs
- Centralized logging, metrics and distributed tracing

**Technology stack**: containerized services behind a load balancer, managed PostgreSQL, OIDC-compatible identity provider, infrastructure as code.

## Integrations
- **Authentication / SSO**: OIDC integration with the customer identity provider (Azure AD, Okta)
- **Security**: encryption in transit (TLS 1.2+) and at rest (AES-256), centralized secrets management
- **Logging**: audit logging for all user actions with retention aligned to compliance requirements

`)

	b.WriteString("## Acceptance Criteria & SLOs\n")
	if len(p0Needs) == 0 {
		b.WriteString(noP0Placeholder + "\n")
	} else {
		for i, need := range truncateRequirements(p0Needs, 5) {
			fmt.Fprintf(&b, "%d. Given the requirement %q, then the system must validate and handle this correctly\n", i+1, need.Text)
		}
	}
	b.WriteString(`
| SLO | Target |
|-----|--------|
| Availability | 99.9% |
| Latency (P50) | < 100ms |
| Latency (P95) | < 300ms |
| Latency (P99) | < 500ms |
| Error rate | < 0.1% |
| Durability | 99.999999999% |
| RTO / RPO | 4h / 1h |

`)

	b.WriteString("## Risks & Mitigations\n")
	if len(r.Risks) == 0 {
		b.WriteString(noRisksPlaceholder + "\n")
	} else {
		for i, risk := range truncateStrings(r.Risks, 5) {
			fmt.Fprintf(&b, "%d. **Risk**: %s\n", i+1, risk)
			b.WriteString("   - Mitigation to be assessed with the technical team\n")
		}
	}
	b.WriteString(`
Additional considerations:
- Legacy data migration complexity
- Third-party integration dependencies
- Regulatory changes during implementation
- Team availability and onboarding time

`)

	b.WriteString("## Open Assumptions\n")
	if len(r.Assumptions) == 0 {
		b.WriteString(noAssumptionsPlaceholder + "\n")
	} else {
		for i, assumption := range r.Assumptions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, assumption)
		}
	}
	b.WriteString(`
Questions for stakeholders:
- What is the expected number of concurrent users at peak?
- Which existing systems must be integrated or migrated?
- What is the target go-live date and are there hard deadlines?
- Who owns security sign-off on the customer side?

`)

	b.WriteString("## Implementation Roadmap\n\n")
	b.WriteString("### Phase 1: Foundation (Weeks 1-4)\n")
	b.WriteString("- Core infrastructure, CI/CD and security baseline\n")
	if len(p0Needs) > 0 {
		b.WriteString("- Address critical (P0) requirements: compliance, security and data constraints\n")
	} else {
		b.WriteString("- No P0 requirements identified in this analysis\n")
	}
	b.WriteString("\n### Phase 2: Core Features (Weeks 5-8)\n")
	if len(p1Needs) > 0 {
		b.WriteString("- High priority (P1) requirements: authentication, performance, offline capability\n")
	} else {
		b.WriteString("- No P1 requirements identified in this analysis\n")
	}
	b.WriteString("- Integration with customer systems\n")
	b.WriteString("\n### Phase 3: Enhancements (Weeks 9-12)\n")
	if len(p2p3Needs) > 0 {
		b.WriteString("- Remaining (P2-P3) requirements: UI improvements and additional features\n")
	} else {
		b.WriteString("- No P2-P3 requirements identified in this analysis\n")
	}
	b.WriteString("- Hardening, load testing and launch preparation\n")

	fmt.Fprintf(&b, "\n---\n_Report generated on %s_\n", now.Format(reportDateLayout))

	return b.String()
}

func truncateRequirements(items []RequirementItem, max int) []RequirementItem {
	if len(items) > max {
		return items[:max]
	}
	return items
}

func truncateStrings(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
