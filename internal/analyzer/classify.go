package analyzer

import "strings"

// Priority tiers, P0 highest.
const (
	PriorityP0 = "P0"
	PriorityP1 = "P1"
	PriorityP2 = "P2"
	PriorityP3 = "P3"
)

// Requirement categories.
const (
	CategorySecurity       = "Security & Compliance"
	CategoryPerformance    = "Performance"
	CategoryAuthentication = "Authentication"
	CategoryUserInterface  = "User Interface"
	CategoryIntegration    = "Integration"
	CategoryDataManagement = "Data Management"
	CategoryGeneral        = "General"
)

type requirementKind int

const (
	kindNone requirementKind = iota
	kindNeed
	kindWant
)

// containsAny reports whether text contains any of the keywords,
// case-insensitively. Keywords are assumed lowercase.
func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// classifyRequirement decides whether an utterance expresses a NEED, a
// WANT, or neither. The NEED check runs first: an utterance matching both
// keyword sets is always a NEED.
func classifyRequirement(text string) requirementKind {
	if containsAny(text, needKeywords) {
		return kindNeed
	}
	if containsAny(text, wantKeywords) {
		return kindWant
	}
	return kindNone
}

// assignPriority picks the priority tier for a classified utterance.
// Tiers are checked P0 first; P3 is the unconditional default.
func assignPriority(text string) string {
	if containsAny(text, priorityP0Keywords) {
		return PriorityP0
	}
	if containsAny(text, priorityP1Keywords) {
		return PriorityP1
	}
	if containsAny(text, priorityP2Keywords) {
		return PriorityP2
	}
	return PriorityP3
}

// determineCategory maps an utterance onto the fixed category taxonomy.
// Checks run in priority order; first match wins.
func determineCategory(text string) string {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "security"),
		strings.Contains(lower, "seguridad"),
		strings.Contains(lower, "compliance"):
		return CategorySecurity
	case strings.Contains(lower, "performance"),
		strings.Contains(lower, "rendimiento"),
		strings.Contains(lower, "latency"):
		return CategoryPerformance
	case strings.Contains(lower, "auth"),
		strings.Contains(lower, "autenticación"),
		strings.Contains(lower, "login"):
		return CategoryAuthentication
	case strings.Contains(lower, "ui"),
		strings.Contains(lower, "ux"),
		strings.Contains(lower, "interface"),
		strings.Contains(lower, "design"):
		return CategoryUserInterface
	case strings.Contains(lower, "api"),
		strings.Contains(lower, "integration"),
		strings.Contains(lower, "integración"):
		return CategoryIntegration
	case strings.Contains(lower, "data"),
		strings.Contains(lower, "database"),
		strings.Contains(lower, "storage"):
		return CategoryDataManagement
	}

	return CategoryGeneral
}

// isOpenQuestion reports whether an utterance should be collected as an
// open question: it contains a literal question mark or a question word.
func isOpenQuestion(text string) bool {
	return strings.Contains(text, "?") || containsAny(text, questionKeywords)
}
