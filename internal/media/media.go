// Package media maps a file's media-type tag to the coarse kind the extraction pipeline routes on.
package media

import "strings"

type Kind string

const (
	KindImage       Kind = "image"
	KindPDF         Kind = "pdf"
	KindAudio       Kind = "audio"
	KindVideo       Kind = "video"
	KindUnsupported Kind = "unsupported"
)

var kindByTag = map[string]Kind{
	"jpg":  KindImage,
	"jpeg": KindImage,
	"png":  KindImage,
	"tiff": KindImage,
	"heic": KindImage,

	"pdf": KindPDF,

	"mp3":  KindAudio,
	"wav":  KindAudio,
	"aiff": KindAudio,
	"m4a":  KindAudio,

	"mp4": KindVideo,
	"mov": KindVideo,
	"avi": KindVideo,
	"mkv": KindVideo,
	"m4v": KindVideo,
}

// Classify returns the kind for a media-type tag. It is case-insensitive, tolerates a
// leading dot, and maps anything unknown to KindUnsupported.
func Classify(tag string) Kind {
	tag = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(tag)), ".")
	if kind, ok := kindByTag[tag]; ok {
		return kind
	}
	return KindUnsupported
}

// Supported reports whether the pipeline has an extractor for tag.
func Supported(tag string) bool {
	return Classify(tag) != KindUnsupported
}
