package completion

import (
	"fmt"

	"github.com/31d4r/Raven/internal/config"
	"github.com/31d4r/Raven/internal/logger"
)

// New picks the Completer for the configured provider.
func New(cfg config.CompletionConfig, log logger.Logger) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai: %w (set OPENAI_API_KEY)", ErrNoAPIKey)
		}
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.Model, cfg.BaseURL, log), nil
	case config.ProviderGemini, "":
		if len(cfg.GeminiKeys) == 0 {
			return nil, fmt.Errorf("gemini: %w (set GEMINI_API_KEYS or GEMINI_API_KEY)", ErrNoAPIKey)
		}
		return NewGemini(cfg.GeminiKeys, cfg.Model, log), nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
}
