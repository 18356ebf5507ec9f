package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"days\": []}\n```"
	assert.Equal(t, `{"days": []}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n[1, 2, 3]\n```"
	assert.Equal(t, "[1, 2, 3]", CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"overview": "plain"}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_SurroundingWhitespace(t *testing.T) {
	input := "  \n{\"a\": 1}\n  "
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestConfig_GetModelFallback(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierStandard: "gemini-2.5-flash"},
	}
	// Unconfigured tier falls back to standard
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierAdvanced))
}

func TestConfig_WithModel(t *testing.T) {
	cfg := DefaultGeminiConfig()
	custom := cfg.WithModel(TierAdvanced, "gemini-3.0-pro")

	assert.Equal(t, "gemini-3.0-pro", custom.GetModel(TierAdvanced))
	// Original is untouched
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
}
