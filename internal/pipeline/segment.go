package pipeline

import (
	"fmt"
	"strings"

	"github.com/31d4r/Raven/internal/media"
)

const segmentSeparator = "\n\n"

// Segment is one file's extracted text.
type Segment struct {
	Name string
	Kind media.Kind
	Text string
}

// Suffix is the human-readable kind tag shown after the file name.
func (s Segment) Suffix() string {
	switch s.Kind {
	case media.KindAudio:
		return "(Audio Transcript)"
	case media.KindVideo:
		return "(Video Transcript)"
	default:
		return ""
	}
}

func (s Segment) String() string {
	header := s.Name
	if suffix := s.Suffix(); suffix != "" {
		header += " " + suffix
	}
	return fmt.Sprintf("=== %s ===\n%s", header, s.Text)
}

// Failure is a file whose extraction failed. The batch carries on without it.
type Failure struct {
	Name string
	Kind media.Kind
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Name, f.Err)
}

// Report is the result of one extraction run. Segments and Failures follow input order.
type Report struct {
	Context  string
	Segments []Segment
	Failures []Failure
	Skipped  []string
}

// Join renders segments in order, separated by a blank line.
func Join(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.String()
	}
	return strings.Join(parts, segmentSeparator)
}
