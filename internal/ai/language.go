package ai

import "strings"

var spanishMarkers = []string{
	" el ", " la ", " los ", " las ", " que ", " para ", " con ",
	" debe ", " necesita ", " requisito ", " gustaría ", " también ",
	" pero ", " como ", " está ", " más ",
}

var englishMarkers = []string{
	" the ", " and ", " for ", " with ", " that ", " this ",
	" must ", " need ", " would ", " should ", " have ", " what ",
}

// DetectLanguage guesses whether a transcript is Spanish or English by
// counting common marker words. Defaults to English on a tie.
func DetectLanguage(transcript string) string {
	text := " " + strings.ToLower(transcript) + " "

	spanish := 0
	for _, marker := range spanishMarkers {
		spanish += strings.Count(text, marker)
	}
	english := 0
	for _, marker := range englishMarkers {
		english += strings.Count(text, marker)
	}

	if spanish > english {
		return "es"
	}
	return "en"
}
