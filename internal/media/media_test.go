package media

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		tag  string
		want Kind
	}{
		{"jpg", KindImage},
		{"jpeg", KindImage},
		{"png", KindImage},
		{"tiff", KindImage},
		{"heic", KindImage},
		{"pdf", KindPDF},
		{"mp3", KindAudio},
		{"wav", KindAudio},
		{"aiff", KindAudio},
		{"m4a", KindAudio},
		{"mp4", KindVideo},
		{"mov", KindVideo},
		{"avi", KindVideo},
		{"mkv", KindVideo},
		{"m4v", KindVideo},
		{"JPG", KindImage},
		{"Pdf", KindPDF},
		{".mov", KindVideo},
		{"txt", KindUnsupported},
		{"", KindUnsupported},
		{"docx", KindUnsupported},
		{"tif", KindUnsupported},
		{"webm", KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := Classify(tt.tag); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	if !Supported("mp4") {
		t.Error("mp4 should be supported")
	}
	if Supported("txt") {
		t.Error("txt should not be supported")
	}
}
