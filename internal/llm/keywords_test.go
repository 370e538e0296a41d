package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"```json\n[\"a\", \"b\"]\n```": `["a", "b"]`,
		"```\n[\"a\"]\n```":           `["a"]`,
		"  [\"plain\"]  ":             `["plain"]`,
		"```JSON [\"x\"]```":          `["x"]`,
	}
	for in, want := range cases {
		assert.Equal(t, want, StripCodeFence(in), "input %q", in)
	}
}

func TestParseKeywords(t *testing.T) {
	keywords, err := ParseKeywords("```json\n[\"Multi-AZ\", \" RDS \", \"고가용성\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"Multi-AZ", "RDS", "고가용성"}, keywords)
}

func TestParseKeywordsDropsBlankEntries(t *testing.T) {
	keywords, err := ParseKeywords(`["  ", "S3"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"S3"}, keywords)
}

func TestParseKeywordsRejectsNonArrays(t *testing.T) {
	for _, raw := range []string{
		`Here are the keywords: RDS, S3`,
		`{"keywords": ["RDS"]}`,
		`[1, 2, 3]`,
		`[]`,
		`[""]`,
		`["  ", "\t"]`,
	} {
		_, err := ParseKeywords(raw)
		require.Error(t, err, "input %q", raw)
		var invalid *ErrInvalidResponse
		assert.True(t, errors.As(err, &invalid), "input %q: got %T", raw, err)
	}
}
