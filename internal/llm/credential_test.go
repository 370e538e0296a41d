package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialUsable(t *testing.T) {
	longKey := "sk-" + strings.Repeat("a", 45)
	geminiKey := "AIza" + strings.Repeat("b", 35)

	assert.True(t, CredentialUsable("openai", longKey))
	assert.False(t, CredentialUsable("openai", ""))
	assert.False(t, CredentialUsable("openai", "   "))
	assert.False(t, CredentialUsable("openai", PlaceholderAPIKey))
	assert.False(t, CredentialUsable("openai", "sk-short"))

	assert.True(t, CredentialUsable("gemini", geminiKey))
	assert.False(t, CredentialUsable("gemini", geminiKey[:38]))

	assert.True(t, CredentialUsable("mock", ""))
}
