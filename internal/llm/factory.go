package llm

import (
	"context"
	"fmt"

	"github.com/lshigami/quizreview/config"
	"github.com/rs/zerolog/log"
)

// NewProvider builds the configured provider wrapped with request logging.
// It returns a nil Provider (and no error) when the credential is missing or
// clearly invalid; callers treat that as "explanations unavailable".
func NewProvider(ctx context.Context, cfg config.LLM) (Provider, error) {
	var (
		base Provider
		err  error
	)

	switch cfg.Provider {
	case "openai", "":
		if !CredentialUsable("openai", cfg.OpenAIApiKey) {
			log.Warn().Msg("OPENAI_API_KEY is missing or invalid. Explanations will return a placeholder.")
			return nil, nil
		}
		base, err = NewOpenAIProvider(OpenAIConfig{APIKey: cfg.OpenAIApiKey, Model: cfg.OpenAIModel})
	case "gemini":
		if !CredentialUsable("gemini", cfg.GeminiApiKey) {
			log.Warn().Msg("GEMINI_API_KEY is missing or invalid. Explanations will return a placeholder.")
			return nil, nil
		}
		base, err = NewGeminiProvider(ctx, GeminiConfig{APIKey: cfg.GeminiApiKey, Model: cfg.GeminiModel})
	case "anthropic":
		if !CredentialUsable("anthropic", cfg.AnthropicApiKey) {
			log.Warn().Msg("ANTHROPIC_API_KEY is missing or invalid. Explanations will return a placeholder.")
			return nil, nil
		}
		base, err = NewAnthropicProvider(AnthropicConfig{APIKey: cfg.AnthropicApiKey, Model: cfg.AnthropicModel})
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	log.Info().Str("provider", cfg.Provider).Str("model", base.ModelID()).Msg("LLM provider ready")
	return WithLogging(base), nil
}
