// Package sanitize normalizes raw LLM output into display-ready strings.
//
// LLM responses routinely arrive wrapped in markdown code fences, sprinkled
// with inline markup, or carrying bytes that do not survive a round trip
// through UTF-8 storage. Everything that crosses from a provider into the
// rest of the engine passes through Clean first.
package sanitize

import "strings"

// Clean normalizes a single string. It is idempotent: Clean(Clean(s)) ==
// Clean(s). Markdown fence delimiters and inline/bold/italic markers are
// removed while the delimited text is preserved, and bytes that are not
// valid UTF-8 are dropped so downstream serialization cannot fail.
//
// Clean never panics past its own boundary; if anything goes wrong
// internally it returns "" rather than propagating, so a bad response
// degrades to empty content instead of taking the request down.
func Clean(s string) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()

	s = strings.ToValidUTF8(s, "")
	s = StripFence(s)

	// Inline markup. Order matters: the two-character markers must go
	// before their single-character halves.
	for _, marker := range []string{"```", "**", "__", "~~", "`", "*"} {
		s = strings.ReplaceAll(s, marker, "")
	}

	return strings.TrimSpace(s)
}

// CleanValue recurses through maps, slices and string leaves, applying Clean
// to every string it finds. Non-string scalars pass through untouched. The
// input value is not modified; a cleaned copy is returned.
func CleanValue(v any) any {
	switch t := v.(type) {
	case string:
		return Clean(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = CleanValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = CleanValue(val)
		}
		return out
	default:
		return v
	}
}

// StripFence removes a markdown code-fence wrapper from around s, including
// a language tag on the opening fence ("```json\n...\n```"). Text that is
// not fence-wrapped is returned with only surrounding whitespace trimmed.
// Interior fences are left alone; Clean handles those.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	body := s[3:]
	// Opening fence may carry a language tag up to the first newline.
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		tag := strings.TrimSpace(body[:i])
		if isFenceTag(tag) {
			body = body[i+1:]
		}
	} else {
		// Single-line fenced fragment: "```json{...}```".
		body = strings.TrimPrefix(body, "json")
	}

	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}

// isFenceTag reports whether s looks like a code-fence language tag
// (short, ASCII alphanumeric) rather than content that happens to follow
// an opening fence.
func isFenceTag(s string) bool {
	if len(s) > 16 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
