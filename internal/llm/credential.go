package llm

import "strings"

// PlaceholderAPIKey is the value shipped in sample env files.
const PlaceholderAPIKey = "your-openai-api-key-here"

// Real keys are never shorter than this; Gemini keys are exactly 39 chars.
var minKeyLength = map[string]int{
	"openai":    40,
	"anthropic": 40,
	"gemini":    39,
}

// CredentialUsable reports whether key looks like a real credential for the
// provider. A false result means the network call is never attempted.
func CredentialUsable(provider, key string) bool {
	if provider == "mock" {
		return true
	}
	key = strings.TrimSpace(key)
	if key == "" || key == PlaceholderAPIKey {
		return false
	}
	min, ok := minKeyLength[provider]
	if !ok {
		min = 40
	}
	return len(key) >= min
}
