// internal/extract/extract.go
// Salvage parsing for LLM output. Models are asked for bare JSON but routinely
// wrap it in prose or markdown fences, so parsing runs as a layered pipeline
// of attempts and stops at the first success.
package extract

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Object extracts a top-level JSON object from raw model output into out.
func Object(raw string, out interface{}) bool {
	return run(raw, '{', '}', out)
}

// Array extracts a top-level JSON array from raw model output into out.
func Array(raw string, out interface{}) bool {
	return run(raw, '[', ']', out)
}

func run(raw string, open, close byte, out interface{}) bool {
	for _, candidate := range candidates(raw, open, close) {
		if tryParse(candidate, open, out) {
			return true
		}
	}
	return false
}

// candidates yields the salvage attempts in order: the raw text, the text with
// markdown fences stripped, and the slice from the first opening bracket to
// the last matching closing bracket of the cleaned text.
func candidates(raw string, open, close byte) []string {
	attempts := []string{raw}
	cleaned := StripFences(raw)
	if cleaned != raw {
		attempts = append(attempts, cleaned)
	}
	if sliced, ok := BracketSlice(cleaned, open, close); ok {
		attempts = append(attempts, sliced)
	}
	return attempts
}

// tryParse accepts a candidate only when it parses and its top-level shape
// matches the expected bracket. Decoding goes through a fresh value so that a
// failed attempt never leaves partially decoded data in out: json.Unmarshal
// keeps filling slices and maps past the element it chokes on.
func tryParse(s string, open byte, out interface{}) bool {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != open {
		return false
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return false
	}
	fresh := reflect.New(rv.Type().Elem())
	if json.Unmarshal([]byte(s), fresh.Interface()) != nil {
		return false
	}
	rv.Elem().Set(fresh.Elem())
	return true
}

// StripFences removes a leading ```lang marker line and a trailing ```
// marker, trimming surrounding whitespace.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.IndexByte(s, '\n'); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// BracketSlice returns the inclusive substring between the first open bracket
// and the last close bracket, when both exist and are ordered.
func BracketSlice(s string, open, close byte) (string, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
