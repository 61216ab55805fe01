package analyzer

// Keyword tables for the two embedded languages (English, Spanish).
// Matching is case-insensitive substring containment, not word-boundary
// matching: "musty" contains "must" and will match. All entries are
// stored lowercase.

// needKeywords marks an utterance as a mandatory requirement.
var needKeywords = []string{
	// English
	"must", "need", "require", "requirement", "mandatory", "critical",
	"essential", "necessary", "compliance", "p0", "have to",
	// Spanish
	"debe", "necesita", "requiere", "requisito", "obligatorio", "crítico",
	"esencial", "necesario", "cumplimiento", "tiene que",
}

// wantKeywords marks an utterance as an optional/preferential requirement.
var wantKeywords = []string{
	// English
	"would like", "nice to have", "prefer", "wish", "hope", "maybe",
	"could", "optional", "bonus",
	// Spanish
	"gustaría", "sería bueno", "preferiría", "ojalá", "quizás", "podría",
	"opcional", "deseo",
}

// Priority tiers, checked in order; first match wins, default P3.
var (
	priorityP0Keywords = []string{
		"compliance", "security", "latency", "cumplimiento", "seguridad",
		"crítico", "critical", "must", "debe",
	}
	priorityP1Keywords = []string{
		"auth", "authentication", "performance", "offline", "rendimiento",
		"autenticación", "important", "importante",
	}
	priorityP2Keywords = []string{
		"ui", "ux", "interface", "design", "theme", "interfaz", "diseño",
		"tema",
	}
)

// Aggregate extraction keyword sets.
var (
	riskKeywords = []string{
		"risk", "problem", "issue", "concern", "riesgo", "problema",
		"preocupación",
	}
	assumptionKeywords = []string{
		"assume", "assuming", "expect", "suppose", "suponemos", "asumimos",
		"esperamos",
	}
	questionKeywords = []string{
		"how", "what", "when", "where", "why", "cómo", "qué", "cuándo",
		"dónde", "por qué",
	}
)
