// Package records turns loosely-typed meeting records into typed documents.
//
// Input arrives as JSON or YAML whose list fields may be real lists, JSON
// encoded strings or comma separated text, and whose flags may be strings.
// Coerce fixes the shapes once, per document kind, and Normalize decodes the
// result into one of the Document variants and applies the cross-field rules
// (visiting authority filtering, recognition assembly).
package records

import (
	"fmt"
	"time"

	"github.com/flanksource/commons/logger"
	"gopkg.in/yaml.v3"
)

var log = logger.GetLogger("records")

// Raw is an undecoded record.
type Raw map[string]any

// Decode parses a JSON or YAML mapping. An empty document yields an empty Raw.
func Decode(data []byte) (Raw, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	out := Raw{}
	for k, v := range raw {
		out[k] = sanitize(v)
	}
	return out, nil
}

// sanitize rewrites YAML-only shapes into ones encoding/json accepts.
func sanitize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = sanitize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = sanitize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = sanitize(e)
		}
		return out
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	}
	return v
}
