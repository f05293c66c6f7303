// Package prompt builds the text payloads sent to the completion service.
package prompt

import (
	"fmt"
	"strings"
)

// Question wraps a user question in the extracted context.
// With no context the question goes out as is.
func Question(question, context string) string {
	if context == "" {
		return question
	}
	return fmt.Sprintf("Context from uploaded documents:\n%s\n\nQuestion: %s\n\nPlease provide a response based on the context above.",
		context, question)
}

type Style string

const (
	StyleCasual       Style = "casual"
	StyleProfessional Style = "professional"
	StyleEntertaining Style = "entertaining"
)

type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Phrase is the wording used inside the podcast prompt. Unknown styles read as casual.
func (s Style) Phrase() string {
	switch Style(strings.ToLower(string(s))) {
	case StyleProfessional:
		return "professional and informative discussion"
	case StyleEntertaining:
		return "entertaining and engaging banter"
	default:
		return "casual and friendly conversation"
	}
}

// Phrase is the target running time. Unknown lengths read as medium.
func (l Length) Phrase() string {
	switch Length(strings.ToLower(string(l))) {
	case LengthShort:
		return "5-7 minutes"
	case LengthLong:
		return "20-25 minutes"
	default:
		return "10-15 minutes"
	}
}

// Styles and Lengths list the accepted values, for flag help.
func Styles() []Style   { return []Style{StyleCasual, StyleProfessional, StyleEntertaining} }
func Lengths() []Length { return []Length{LengthShort, LengthMedium, LengthLong} }

const podcastTemplate = `Create a podcast script for a %[1]s episode with two hosts having a %[2]s about the content from the project "%[3]s".

Content to discuss:
%[4]s

Format the script like this:

HOST 1: [Opening introduction and welcome]

HOST 2: [Response and setting the topic]

HOST 1: [Discussing first key point]

HOST 2: [Adding insights and asking questions]

Continue the conversation naturally, making sure to:
- Cover all important points from the content
- Make it engaging and conversational
- Include natural transitions between topics
- End with a summary and closing remarks
- Keep the tone %[2]s

Make it feel like a real podcast conversation between two knowledgeable hosts discussing the material.`

// Podcast builds the two-host script request for a project's content.
func Podcast(projectName, content string, style Style, length Length) string {
	return fmt.Sprintf(podcastTemplate, length.Phrase(), style.Phrase(), projectName, content)
}
