// Package codec converts the array-valued columns (answer indices, keywords)
// between their stored JSON text form and native Go slices.
package codec

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// EncodeIndices always yields a JSON array, never null, so the value fits a
// NOT NULL column.
func EncodeIndices(indices []int) (datatypes.JSON, error) {
	if indices == nil {
		indices = []int{}
	}
	raw, err := json.Marshal(indices)
	if err != nil {
		return nil, fmt.Errorf("encode indices: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func DecodeIndices(raw datatypes.JSON) ([]int, error) {
	out := []int{}
	if isBlank(raw) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode indices %q: %w", string(raw), err)
	}
	if out == nil {
		out = []int{}
	}
	return out, nil
}

func EncodeStrings(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("encode strings: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// DecodeStrings treats a missing value as an empty list, matching questions
// that never had keywords generated.
func DecodeStrings(raw datatypes.JSON) ([]string, error) {
	out := []string{}
	if isBlank(raw) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode strings %q: %w", string(raw), err)
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func isBlank(raw datatypes.JSON) bool {
	return len(raw) == 0 || string(raw) == "null"
}
