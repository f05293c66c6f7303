package engine

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/31d4r/Raven/internal/config"
	"github.com/31d4r/Raven/internal/logger"
)

type call struct {
	name string
	args []string
}

// fakeExecutor records commands and answers from canned outputs keyed by binary name.
type fakeExecutor struct {
	mu      sync.Mutex
	calls   []call
	outputs map[string]string
	errs    map[string]error
	missing map[string]bool
	onRun   func(name string, args []string)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{name: name, args: args})
	f.mu.Unlock()

	if f.onRun != nil {
		f.onRun(name, args)
	}
	if err := f.errs[name]; err != nil {
		return "", err
	}
	return f.outputs[name], nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", errors.New("not found")
	}
	return "/usr/bin/" + name, nil
}

func argAfter(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func TestTesseractRecognize(t *testing.T) {
	exec := &fakeExecutor{outputs: map[string]string{
		"tesseract": "Chapter One\n\n  The beginning  \n\f",
	}}
	ocr := NewTesseract(config.OCRConfig{BinaryPath: "tesseract", Languages: "eng"}, exec, logger.Nop())

	regions, err := ocr.Recognize(context.Background(), "/tmp/page.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chapter One", "The beginning"}, regions)

	require.Len(t, exec.calls, 1)
	assert.Equal(t, "/tmp/page.png", exec.calls[0].args[0])
	assert.Equal(t, "eng", argAfter(exec.calls[0].args, "-l"))
}

func TestTesseractUnavailable(t *testing.T) {
	exec := &fakeExecutor{missing: map[string]bool{"tesseract": true}}
	ocr := NewTesseract(config.OCRConfig{BinaryPath: "tesseract"}, exec, logger.Nop())

	_, err := ocr.Recognize(context.Background(), "x.png")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, exec.calls)
}

func newWhisper(t *testing.T, exec *fakeExecutor) (Transcriber, string) {
	t.Helper()
	dir := t.TempDir()
	model := filepath.Join(dir, "ggml-base.bin")
	require.NoError(t, os.WriteFile(model, []byte("model"), 0644))

	tempDir := filepath.Join(dir, "temp")
	w := NewWhisper(
		config.SpeechConfig{BinaryPath: "whisper-cli", ModelPath: model, Language: "en", Threads: 4},
		config.FFmpegConfig{BinaryPath: "ffmpeg"},
		tempDir, exec, logger.Nop(),
	)
	return w, tempDir
}

func TestWhisperTranscribe(t *testing.T) {
	exec := &fakeExecutor{}
	exec.onRun = func(name string, args []string) {
		switch name {
		case "ffmpeg":
			os.WriteFile(args[len(args)-1], []byte("wav"), 0644)
		case "whisper-cli":
			prefix := argAfter(args, "--output-file")
			os.WriteFile(prefix+".txt", []byte(" Hello there.\n General Kenobi.\n\n"), 0644)
		}
	}
	w, tempDir := newWhisper(t, exec)

	require.NoError(t, w.Available())

	text, err := w.Transcribe(context.Background(), "/audio/interview.m4a")
	require.NoError(t, err)
	assert.Equal(t, "Hello there. General Kenobi.", text)

	require.Len(t, exec.calls, 2)
	assert.Equal(t, "ffmpeg", exec.calls[0].name)
	assert.Equal(t, "16000", argAfter(exec.calls[0].args, "-ar"))
	assert.Equal(t, "whisper-cli", exec.calls[1].name)
	assert.Equal(t, "4", argAfter(exec.calls[1].args, "-t"))

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files must be removed")
}

func TestWhisperTranscribeFailureCleansUp(t *testing.T) {
	exec := &fakeExecutor{errs: map[string]error{"whisper-cli": errors.New("killed")}}
	exec.onRun = func(name string, args []string) {
		switch name {
		case "ffmpeg":
			os.WriteFile(args[len(args)-1], []byte("wav"), 0644)
		case "whisper-cli":
			// partial transcript written before the process dies
			os.WriteFile(argAfter(args, "--output-file")+".txt", []byte("half a sen"), 0644)
		}
	}
	w, tempDir := newWhisper(t, exec)

	_, err := w.Transcribe(context.Background(), "/audio/a.mp3")
	require.Error(t, err)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWhisperAvailable(t *testing.T) {
	tests := []struct {
		name    string
		missing map[string]bool
		model   string
	}{
		{name: "binary missing", missing: map[string]bool{"whisper-cli": true}, model: "keep"},
		{name: "ffmpeg missing", missing: map[string]bool{"ffmpeg": true}, model: "keep"},
		{name: "model not set", model: ""},
		{name: "model missing", model: "/nonexistent/model.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := filepath.Join(t.TempDir(), "model.bin")
			require.NoError(t, os.WriteFile(model, nil, 0644))
			if tt.model != "keep" {
				model = tt.model
			}

			w := NewWhisper(
				config.SpeechConfig{BinaryPath: "whisper-cli", ModelPath: model},
				config.FFmpegConfig{BinaryPath: "ffmpeg"},
				t.TempDir(), &fakeExecutor{missing: tt.missing}, logger.Nop(),
			)
			assert.ErrorIs(t, w.Available(), ErrUnavailable)
		})
	}
}

func TestFFmpegDuration(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		err     error
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds", out: "12.500000\n", want: 12500 * time.Millisecond},
		{name: "not a number", out: "N/A\n", wantErr: true},
		{name: "zero", out: "0.000\n", wantErr: true},
		{name: "probe fails", err: errors.New("moov atom not found"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{
				outputs: map[string]string{"ffprobe": tt.out},
				errs:    map[string]error{"ffprobe": tt.err},
			}
			d := NewFFmpeg(config.FFmpegConfig{BinaryPath: "ffmpeg", ProbePath: "ffprobe"}, exec, logger.Nop())

			got, err := d.Duration(context.Background(), "clip.mp4")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFFmpegExportAudio(t *testing.T) {
	exec := &fakeExecutor{}
	d := NewFFmpeg(config.FFmpegConfig{BinaryPath: "ffmpeg", AudioCodec: "aac", AudioBitrate: "128k"}, exec, logger.Nop())

	err := d.ExportAudio(context.Background(), "clip.mov", "/tmp/out.m4a", 90*time.Second)
	require.NoError(t, err)

	require.Len(t, exec.calls, 1)
	args := exec.calls[0].args
	assert.Equal(t, "clip.mov", argAfter(args, "-i"))
	assert.Equal(t, "90.000", argAfter(args, "-t"))
	assert.Equal(t, "aac", argAfter(args, "-c:a"))
	assert.Equal(t, "/tmp/out.m4a", args[len(args)-1])
	assert.True(t, strings.HasSuffix(args[len(args)-1], ".m4a"))
}

type countingPrompter struct {
	mu     sync.Mutex
	calls  int
	answer bool
	delay  time.Duration
}

func (p *countingPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	time.Sleep(p.delay)
	return p.answer, nil
}

func TestConsentGateAsksOnce(t *testing.T) {
	file := filepath.Join(t.TempDir(), "consent")
	prompter := &countingPrompter{answer: true, delay: 20 * time.Millisecond}
	gate := NewConsentGate(config.ConsentAsk, file, prompter, logger.Nop())

	assert.Equal(t, AuthNotDetermined, gate.Status())

	var wg sync.WaitGroup
	results := make([]AuthStatus, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = gate.Request(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, prompter.calls)
	for _, s := range results {
		assert.Equal(t, AuthGranted, s)
	}

	// A new gate reads the saved decision without asking.
	again := &countingPrompter{answer: false}
	gate2 := NewConsentGate(config.ConsentAsk, file, again, logger.Nop())
	status, err := gate2.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AuthGranted, status)
	assert.Zero(t, again.calls)
}

func TestConsentGateFixedModes(t *testing.T) {
	prompter := &countingPrompter{answer: true}

	granted := NewConsentGate(config.ConsentGranted, "", prompter, logger.Nop())
	assert.Equal(t, AuthGranted, granted.Status())

	denied := NewConsentGate(config.ConsentDenied, "", prompter, logger.Nop())
	status, err := denied.Request(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AuthDenied, status)
	assert.Zero(t, prompter.calls)
}

func TestTerminalPrompter(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"yes", true},
	}

	for _, tt := range tests {
		var out strings.Builder
		p := NewTerminalPrompter(strings.NewReader(tt.input), &out)
		got, err := p.Confirm(context.Background(), "Continue?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Contains(t, out.String(), "Continue? [y/N]")
	}
}

func TestTerminalPrompterCancelledReadAnswersNextCall(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	var out strings.Builder
	p := NewTerminalPrompter(r, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Confirm(ctx, "Allow?")
	require.ErrorIs(t, err, context.Canceled)

	go func() {
		_, _ = w.Write([]byte("yes\n"))
	}()

	got, err := p.Confirm(context.Background(), "Allow?")
	require.NoError(t, err)
	assert.True(t, got)
}
