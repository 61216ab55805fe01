package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_SplitsOnSentenceBoundaries(t *testing.T) {
	input := "This is the first full sentence! And here comes the second one; finally a third sentence arrives\nand a fourth one on its own line"

	lines := segment(input)

	require.Len(t, lines, 4)
	assert.Equal(t, "This is the first full sentence", lines[0])
	assert.Equal(t, "And here comes the second one", lines[1])
	assert.Equal(t, "finally a third sentence arrives", lines[2])
	assert.Equal(t, "and a fourth one on its own line", lines[3])
}

func TestSegment_DropsShortFragments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t ", 0},
		{"exactly twenty chars", "abcdefghij abcdefghi.", 0},
		{"twenty one chars", "abcdefghij abcdefghij.", 1},
		{"mixed", "OK. This fragment is long enough to keep. No!", 1},
		{"punctuation runs collapse", "first long enough fragment here!!!???second long enough fragment here", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, segment(tt.input), tt.want)
		})
	}
}

func TestAnnotate_SpeakerExtraction(t *testing.T) {
	utt, carried := annotate("Alice: we should review the proposal", "")

	assert.Equal(t, "Alice", utt.speaker)
	assert.Equal(t, "we should review the proposal", utt.text)
	assert.Equal(t, "Alice", carried)
}

func TestAnnotate_AccentedSpeakerNames(t *testing.T) {
	utt, _ := annotate("José María: necesitamos el informe completo", "")

	assert.Equal(t, "José María", utt.speaker)
	assert.Equal(t, "necesitamos el informe completo", utt.text)
}

func TestAnnotate_CarryForward(t *testing.T) {
	_, carried := annotate("Bob: first utterance text", "")
	utt, carried := annotate("a later utterance without a label", carried)

	assert.Equal(t, "Bob", utt.speaker)
	assert.Equal(t, "Bob", carried)
	assert.Equal(t, "a later utterance without a label", utt.text)
}

func TestAnnotate_NoSpeakerBeforeFirstDeclaration(t *testing.T) {
	utt, carried := annotate("an utterance before anyone speaks", "")

	assert.Empty(t, utt.speaker)
	assert.Empty(t, carried)
}

func TestAnnotate_ProseColonMatchesAsSpeaker(t *testing.T) {
	// Known quirk: any leading run of letters and spaces before a colon is
	// taken as a speaker label, including ordinary prose.
	utt, _ := annotate("Note: this matters a great deal", "")

	assert.Equal(t, "Note", utt.speaker)
	assert.Equal(t, "this matters a great deal", utt.text)
}

func TestAnnotate_ParenthesizedRoleBlocksSpeakerMatch(t *testing.T) {
	// Parentheses are outside the speaker character class, so role
	// suffixes prevent the label from matching at all.
	utt, carried := annotate("Client (CTO): we need encryption", "")

	assert.Empty(t, utt.speaker)
	assert.Empty(t, carried)
	assert.Equal(t, "Client (CTO): we need encryption", utt.text)
}

func TestAnnotate_TimestampExtraction(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantTimestamp string
		wantText      string
	}{
		{"minute second", "[1:23] we start the discussion", "1:23", "we start the discussion"},
		{"two digit minutes", "[12:34] performance numbers look fine", "12:34", "performance numbers look fine"},
		{"hours included", "[01:23:45] We must comply", "01:23:45", "We must comply"},
		{"no timestamp", "nothing bracketed in this line", "", "nothing bracketed in this line"},
		{"not leading", "text first [12:34] then numbers", "", "text first [12:34] then numbers"},
		{"malformed", "[1234] not a real timecode here", "", "[1234] not a real timecode here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			utt, _ := annotate(tt.input, "")
			assert.Equal(t, tt.wantTimestamp, utt.timestamp)
			assert.Equal(t, tt.wantText, utt.text)
		})
	}
}

func TestAnnotate_SpeakerThenTimestamp(t *testing.T) {
	utt, _ := annotate("Sales: [06:10] what requirements do you have for latency", "")

	assert.Equal(t, "Sales", utt.speaker)
	assert.Equal(t, "06:10", utt.timestamp)
	assert.Equal(t, "what requirements do you have for latency", utt.text)
}
