package generator

import (
	"regexp"
	"strings"
)

var (
	// A reply wrapped in a single markdown fence, with or without a
	// language tag.
	fenceRe = regexp.MustCompile("(?ms)^```(?:\\w+)?\\s*([\\s\\S]+?)\\s*```$")

	thinkRe = regexp.MustCompile(`(?is)<think>.*?</think>`)

	// A conventional commit header line, optionally prefixed by an emoji:
	// "feat: x", "fix(core)!: y", "✨ feat: z".
	headerRe = regexp.MustCompile(`(?m)^\s*(?:[^"'• \t*\-\w\n\r]+\s+)?([a-z0-9_]+)(\([\w\-\./]+\))?(!)?: .+`)
)

// Clean normalizes a raw model reply into a usable commit message: unwrap
// a single code fence, drop <think> blocks, and discard any analysis prose
// before the first conventional commit header. Replies without a header
// pass through trimmed.
func Clean(msg string) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return ""
	}

	// Unwrap only when the fence spans the whole reply; a fence inside a
	// commit body is content, not wrapping.
	if loc := fenceRe.FindStringIndex(msg); loc != nil && loc[0] == 0 && loc[1] == len(msg) {
		msg = strings.TrimSpace(fenceRe.FindStringSubmatch(msg)[1])
	}

	msg = strings.TrimSpace(thinkRe.ReplaceAllString(msg, ""))

	if loc := headerRe.FindStringIndex(msg); loc != nil {
		msg = msg[loc[0]:]
	}

	return strings.TrimSpace(msg)
}
