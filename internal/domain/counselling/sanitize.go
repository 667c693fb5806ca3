package counselling

import "strings"

// supportiveDefault replaces messages that come out of sanitation unusable.
const supportiveDefault = "I'm here to help with your study-abroad journey. " +
	"Could you tell me a bit more about what you'd like to work on next?"

const minMessageLength = 12

// SanitizeMessage strips structured fragments from a counsellor message and
// substitutes a generic supportive line when what remains is too short or
// still looks like data rather than prose. Serialized lines go first, while
// the message still has its line structure; only then are brace blocks
// scrubbed and whitespace collapsed.
func SanitizeMessage(msg string) string {
	msg = stripKeyValueFragments(msg)
	msg = scrubStructuredArtifacts(msg)
	msg = strings.TrimSpace(msg)

	if len(msg) < minMessageLength || looksStructural(msg) {
		return supportiveDefault
	}
	return msg
}

// stripKeyValueFragments drops lines that read as serialized fields, e.g.
// `"action": "NONE"` or `message: hello`.
func stripKeyValueFragments(msg string) string {
	var kept []string
	for _, line := range strings.Split(msg, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if looksLikeKeyValue(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, " ")
}

func looksLikeKeyValue(line string) bool {
	colon := strings.Index(line, ":")
	if colon <= 0 {
		return false
	}
	key := strings.TrimSpace(line[:colon])
	quotedKey := len(key) >= 2 && (key[0] == '"' || key[0] == '\'')
	value := strings.TrimSpace(strings.TrimSuffix(line[colon+1:], ","))
	quotedValue := len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"'
	// `"action": "NONE",` style lines are serialized fields; a prose
	// sentence with a colon keeps its unquoted key and value.
	return quotedKey || quotedValue
}

// looksStructural reports whether the message is dominated by structural
// punctuation rather than words.
func looksStructural(msg string) bool {
	structural := 0
	for _, r := range msg {
		switch r {
		case '{', '}', '[', ']', '"', ':', ',':
			structural++
		}
	}
	return structural*4 >= len(msg)
}
