package prompt

import (
	"strings"
	"testing"
)

func TestQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		context  string
		want     string
	}{
		{
			name:     "no context",
			question: "What is Raven?",
			context:  "",
			want:     "What is Raven?",
		},
		{
			name:     "with context",
			question: "Summarize",
			context:  "=== a.pdf ===\nhello",
			want: "Context from uploaded documents:\n=== a.pdf ===\nhello\n\n" +
				"Question: Summarize\n\nPlease provide a response based on the context above.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Question(tt.question, tt.context); got != tt.want {
				t.Errorf("Question() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPhrases(t *testing.T) {
	styles := map[Style]string{
		StyleCasual:       "casual and friendly conversation",
		StyleProfessional: "professional and informative discussion",
		StyleEntertaining: "entertaining and engaging banter",
		"Professional":    "professional and informative discussion",
		"weird":           "casual and friendly conversation",
	}
	for s, want := range styles {
		if got := s.Phrase(); got != want {
			t.Errorf("Style(%q).Phrase() = %q, want %q", s, got, want)
		}
	}

	lengths := map[Length]string{
		LengthShort:  "5-7 minutes",
		LengthMedium: "10-15 minutes",
		LengthLong:   "20-25 minutes",
		"":           "10-15 minutes",
	}
	for l, want := range lengths {
		if got := l.Phrase(); got != want {
			t.Errorf("Length(%q).Phrase() = %q, want %q", l, got, want)
		}
	}
}

func TestPodcast(t *testing.T) {
	got := Podcast("Thesis", "=== a.pdf ===\nhello", StyleEntertaining, LengthShort)

	wantPrefix := "Create a podcast script for a 5-7 minutes episode with two hosts having a " +
		"entertaining and engaging banter about the content from the project \"Thesis\".\n\n" +
		"Content to discuss:\n=== a.pdf ===\nhello\n\nFormat the script like this:\n\nHOST 1:"
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("Podcast() prefix mismatch:\n%s", got)
	}

	for _, want := range []string{
		"HOST 2: [Response and setting the topic]",
		"- Keep the tone entertaining and engaging banter\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Podcast() missing %q", want)
		}
	}

	if !strings.HasSuffix(got, "between two knowledgeable hosts discussing the material.") {
		t.Errorf("Podcast() suffix mismatch")
	}
}
