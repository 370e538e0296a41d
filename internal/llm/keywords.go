package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var fencePattern = regexp.MustCompile("(?i)```(?:json)?\\s*")

// StripCodeFence removes markdown code fences (``` or ```json) the model may
// wrap around a JSON payload.
func StripCodeFence(s string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(s, ""))
}

const keywordSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {"type": "string", "minLength": 1}
}`

var (
	keywordSchemaOnce     sync.Once
	keywordSchemaCompiled *jsonschema.Schema
	keywordSchemaErr      error
)

func compiledKeywordSchema() (*jsonschema.Schema, error) {
	keywordSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(keywordSchema))
		if err != nil {
			keywordSchemaErr = fmt.Errorf("parse keyword schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://keywords.json"
		if err := c.AddResource(url, doc); err != nil {
			keywordSchemaErr = fmt.Errorf("add keyword schema: %w", err)
			return
		}
		keywordSchemaCompiled, keywordSchemaErr = c.Compile(url)
	})
	return keywordSchemaCompiled, keywordSchemaErr
}

// ParseKeywords decodes a model reply that should be a JSON array of strings.
// Fences are stripped first; the payload must validate against the keyword
// schema.
func ParseKeywords(raw string) ([]string, error) {
	clean := StripCodeFence(raw)

	var parsed any
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledKeywordSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var keywords []string
	if err := json.Unmarshal([]byte(clean), &keywords); err != nil {
		return nil, &ErrInvalidResponse{Content: raw, Err: err}
	}
	out := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			out = append(out, keyword)
		}
	}
	if len(out) == 0 {
		return nil, &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("no non-blank keywords")}
	}
	return out, nil
}
