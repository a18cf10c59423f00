package generation

import (
	"encoding/json"
	"strings"
)

// RepairAndParse parses raw model output as a JSON object, salvaging
// truncated or fence-wrapped payloads where it can. The repair is a
// best-effort heuristic: it only ever truncates and closes open scopes, it
// never invents field values, so a repaired object may legitimately carry
// fewer array entries than the model intended. Returns ErrUnparsableResponse
// when nothing parseable can be recovered.
func RepairAndParse(raw string) (map[string]interface{}, error) {
	text := stripCodeFences(raw)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(text), &obj); err == nil {
		return obj, nil
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil, ErrUnparsableResponse
	}
	text = text[start:]

	// Look for the point where the top-level object closes inside a
	// well-formed region. Anything after it (trailing prose, a second
	// object) is discarded.
	if end, ok := validJSONEndpoint(text); ok {
		if err := json.Unmarshal([]byte(text[:end+1]), &obj); err == nil {
			return obj, nil
		}
	}

	// Likely truncated mid-value. Cut back to the last fully closed string
	// field and close every scope still open at that point.
	if idx := strings.LastIndex(text, `",`); idx >= 0 {
		candidate := closeOpenScopes(text[:idx+1])
		if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
			return obj, nil
		}
	}

	return nil, ErrUnparsableResponse
}

// stripCodeFences removes a wrapping ```json ... ``` (or bare ```) block.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// validJSONEndpoint scans text (which must start with '{') tracking brace
// depth, string state and escapes, and reports the index at which the
// top-level object closes. Braces inside quoted strings are never counted.
func validJSONEndpoint(text string) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return i, true
				}
			}
		}
	}
	return 0, false
}

// closeOpenScopes appends the closing brackets and braces needed to balance
// every '{' and '[' still open at the end of text, innermost first.
func closeOpenScopes(text string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{', '[':
			if !inString {
				stack = append(stack, c)
			}
		case '}':
			if !inString && len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if !inString && len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}

	var b strings.Builder
	b.WriteString(text)
	if inString {
		b.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}
