package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Sentence boundaries: any run of terminal punctuation or newlines.
	sentenceSplitRegex = regexp.MustCompile(`[.!?;\n]+`)

	// Speaker label: leading run of letters (Latin-1 accented included)
	// and spaces before a colon, e.g. "Cliente: Necesitamos...". Ordinary
	// prose ending in a colon ("Note: this matters") matches too; that is
	// the established matching rule and report output depends on it.
	speakerRegex = regexp.MustCompile(`^([A-Za-zÀ-ÿ\s]+):\s*(.+)$`)

	// Leading bracketed timecode: [M:SS], [MM:SS] or [H:MM:SS].
	timestampRegex = regexp.MustCompile(`^\[(\d{1,2}:\d{2}(?::\d{2})?)\]\s*(.+)`)
)

// noiseThreshold is the maximum trimmed length (in characters) of a
// fragment that is discarded as noise ("Yes.", "OK").
const noiseThreshold = 20

// segment splits a raw transcript into candidate utterance lines,
// trimmed and with short noise fragments dropped.
func segment(transcript string) []string {
	parts := sentenceSplitRegex.Split(transcript, -1)
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > noiseThreshold {
			lines = append(lines, part)
		}
	}
	return lines
}

// utterance is one annotated transcript fragment.
type utterance struct {
	text      string
	speaker   string
	timestamp string
}

// annotate extracts the speaker label and leading timestamp from a line.
// A declared speaker replaces the carried-forward one; an utterance with
// no label inherits the current speaker. Returns the annotated utterance
// and the speaker to carry into the next line.
func annotate(line, currentSpeaker string) (utterance, string) {
	working := line
	if m := speakerRegex.FindStringSubmatch(line); m != nil {
		currentSpeaker = strings.TrimSpace(m[1])
		working = m[2]
	}

	timestamp := ""
	clean := working
	if m := timestampRegex.FindStringSubmatch(working); m != nil {
		timestamp = m[1]
		clean = m[2]
	}

	return utterance{
		text:      clean,
		speaker:   currentSpeaker,
		timestamp: timestamp,
	}, currentSpeaker
}
