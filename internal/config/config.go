package config

import (
	"fmt"
	"time"
)

type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
	Extraction ExtractionConfig `yaml:"extraction"`
	OCR        OCRConfig        `yaml:"ocr"`
	Speech     SpeechConfig     `yaml:"speech"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Completion CompletionConfig `yaml:"completion"`
	Watcher    WatcherConfig    `yaml:"watcher"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type PathsConfig struct {
	Projects string `yaml:"projects"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	File      string `yaml:"file"`
	SentryDSN string `yaml:"sentry_dsn"`
}

type ExtractionConfig struct {
	MaxConcurrent       int  `yaml:"max_concurrent"`
	CacheSize           int  `yaml:"cache_size"`
	SurfaceEngineErrors bool `yaml:"surface_engine_errors"`
}

type OCRConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Languages  string `yaml:"languages"`
}

type SpeechConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	ModelPath   string `yaml:"model_path"`
	Language    string `yaml:"language"`
	Prompt      string `yaml:"prompt"`
	Threads     int    `yaml:"threads"`
	Consent     string `yaml:"consent"`
	ConsentFile string `yaml:"consent_file"`
}

type FFmpegConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ProbePath    string `yaml:"probe_path"`
	AudioCodec   string `yaml:"audio_codec"`
	AudioBitrate string `yaml:"audio_bitrate"`
}

type CompletionConfig struct {
	Provider     string   `yaml:"provider"`
	Model        string   `yaml:"model"`
	BaseURL      string   `yaml:"base_url"`
	GeminiKeys   []string `yaml:"-"`
	OpenAIAPIKey string   `yaml:"-"`
}

type WatcherConfig struct {
	MaxConcurrent int           `yaml:"max_concurrent"`
	SettleDelay   time.Duration `yaml:"settle_delay"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

const (
	ConsentAsk     = "ask"
	ConsentGranted = "granted"
	ConsentDenied  = "denied"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

func (c *Config) Validate() error {
	if c.Paths.Projects == "" {
		return fmt.Errorf("paths.projects is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	switch c.Speech.Consent {
	case "":
		c.Speech.Consent = ConsentAsk
	case ConsentAsk, ConsentGranted, ConsentDenied:
	default:
		return fmt.Errorf("speech.consent must be one of ask, granted, denied")
	}

	switch c.Completion.Provider {
	case "":
		c.Completion.Provider = ProviderGemini
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("completion.provider must be gemini or openai")
	}

	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Extraction.MaxConcurrent == 0 {
		c.Extraction.MaxConcurrent = 4
	}
	if c.Extraction.CacheSize < 0 {
		return fmt.Errorf("extraction.cache_size must not be negative")
	}
	if c.OCR.BinaryPath == "" {
		c.OCR.BinaryPath = "tesseract"
	}
	if c.OCR.Languages == "" {
		c.OCR.Languages = "eng"
	}
	if c.Speech.BinaryPath == "" {
		c.Speech.BinaryPath = "whisper-cli"
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "auto"
	}
	if c.Speech.Threads == 0 {
		c.Speech.Threads = 8
	}
	if c.Speech.ConsentFile == "" {
		c.Speech.ConsentFile = "data/speech_consent"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "aac"
	}
	if c.FFmpeg.AudioBitrate == "" {
		c.FFmpeg.AudioBitrate = "128k"
	}
	if c.Completion.Model == "" {
		if c.Completion.Provider == ProviderOpenAI {
			c.Completion.Model = "gpt-4o-mini"
		} else {
			c.Completion.Model = "gemini-2.5-flash"
		}
	}
	if c.Watcher.MaxConcurrent == 0 {
		c.Watcher.MaxConcurrent = 2
	}
	if c.Watcher.SettleDelay == 0 {
		c.Watcher.SettleDelay = 500 * time.Millisecond
	}

	return nil
}
