// Package llmjson decodes untrusted JSON payloads returned by LLM providers.
// Replies frequently arrive wrapped in markdown code fences or with fields
// missing; decoding strips the fences and substitutes defaults per field,
// logging instead of failing, so callers always receive fully-populated values.
package llmjson

import (
	"encoding/json"
	"strings"

	log "github.com/sirupsen/logrus"
)

// StripFences removes a surrounding markdown code fence (``` or ```json)
// from an LLM reply, returning the inner content.
func StripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	parts := strings.SplitN(content, "```", 3)
	if len(parts) < 2 {
		return content
	}

	inner := parts[1]
	inner = strings.TrimPrefix(inner, "json")
	return strings.TrimSpace(inner)
}

// DecodeObject parses a reply into a generic object after fence stripping.
func DecodeObject(content string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(StripFences(content)), &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func Has(obj map[string]any, key string) bool {
	_, ok := obj[key]
	return ok
}

func String(obj map[string]any, key string, fallback string) string {
	value, ok := obj[key].(string)
	if !ok {
		logMissing(key)
		return fallback
	}
	return value
}

func Int(obj map[string]any, key string, fallback int) int {
	switch value := obj[key].(type) {
	case float64:
		return int(value)
	case string:
		var parsed float64
		if err := json.Unmarshal([]byte(value), &parsed); err == nil {
			return int(parsed)
		}
	}
	logMissing(key)
	return fallback
}

func StringSlice(obj map[string]any, key string, fallback []string) []string {
	raw, ok := obj[key].([]any)
	if !ok {
		logMissing(key)
		return fallback
	}

	var values []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	if len(values) == 0 {
		logMissing(key)
		return fallback
	}
	return values
}

func logMissing(key string) {
	log.Debugf("llm response is missing field %q, using default", key)
}
