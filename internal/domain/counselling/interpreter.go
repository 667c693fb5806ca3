package counselling

import (
	"encoding/json"
	"regexp"
	"strings"
)

// markerKeys identify a candidate reply object during extraction.
var markerKeys = []string{`"message"`, `"action"`}

// maxExtractionScan bounds how much of a malformed payload gets scanned for
// an embedded object.
const maxExtractionScan = 64 * 1024

var (
	lockIntentRe      = regexp.MustCompile(`(?i)\block\b[:\s]+(.+)`)
	shortlistIntentRe = regexp.MustCompile(`(?i)\bshortlist\b[:\s]+(.+)`)
)

// Interpret converts raw engine output into a valid Reply. It never fails:
// strict parsing, then bounded extraction of an embedded object, then the
// deterministic fallback. The student's own message can force a shortlist
// or lock action regardless of what the engine said.
func Interpret(raw string, bctx Context) *Reply {
	reply := parseStrict(raw)
	if reply == nil {
		reply = parseEmbedded(raw)
	}
	if reply == nil {
		reply = FallbackReply(bctx)
	} else {
		reply.Normalize()
	}

	applyExplicitIntent(reply, bctx.UserMessage)
	return reply
}

func parseStrict(raw string) *Reply {
	var reply Reply
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &reply); err != nil {
		return nil
	}
	return &reply
}

// parseEmbedded finds the first balanced top-level object carrying a marker
// key and parses that. Handles engines that wrap JSON in prose or emit
// several concatenated objects.
func parseEmbedded(raw string) *Reply {
	if len(raw) > maxExtractionScan {
		raw = raw[:maxExtractionScan]
	}

	for offset := 0; offset < len(raw); {
		start := strings.IndexByte(raw[offset:], '{')
		if start < 0 {
			return nil
		}
		start += offset

		end := matchBrace(raw, start)
		if end < 0 {
			// Unclosed fragment; nothing balanced remains.
			return nil
		}

		candidate := raw[start : end+1]
		if hasMarkerKey(candidate) {
			var reply Reply
			if err := json.Unmarshal([]byte(candidate), &reply); err == nil {
				return &reply
			}
		}
		offset = end + 1
	}
	return nil
}

func hasMarkerKey(candidate string) bool {
	for _, key := range markerKeys {
		if strings.Contains(candidate, key) {
			return true
		}
	}
	return false
}

// matchBrace returns the index of the brace closing the object opened at
// start, or -1 if the object never closes. Braces inside JSON strings are
// ignored.
func matchBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// applyExplicitIntent lets a direct student instruction override the
// engine's chosen action. "lock MIT" or "shortlist Stanford" in the user
// message wins over whatever the reply carried; a bare keyword with no
// plausible target changes nothing.
func applyExplicitIntent(reply *Reply, userMessage string) {
	if target, ok := extractIntentTarget(lockIntentRe, userMessage); ok {
		reply.Action = ActionLockUniversity
		reply.UniversityName = target
		return
	}
	if target, ok := extractIntentTarget(shortlistIntentRe, userMessage); ok {
		reply.Action = ActionShortlistUniversity
		reply.UniversityName = target
	}
}

func extractIntentTarget(re *regexp.Regexp, msg string) (string, bool) {
	m := re.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	target := strings.TrimSpace(strings.Trim(m[1], `.!?"'`))
	if !plausibleUniversityTarget(target) {
		return "", false
	}
	return target, true
}

// plausibleUniversityTarget filters out captures that are clearly not a
// university name, so sentences like "lock in my decision later" don't
// trigger an action.
func plausibleUniversityTarget(target string) bool {
	if len(target) < 2 || len(target) > 120 {
		return false
	}
	words := strings.Fields(target)
	if len(words) > 10 {
		return false
	}
	// "lock in my decision" is phrasing, not a target.
	switch strings.ToLower(words[0]) {
	case "in", "it", "my", "me", "the", "them", "this", "that":
		return false
	}
	hasLetter := false
	for _, r := range target {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			hasLetter = true
			break
		}
	}
	return hasLetter
}
