package prompt

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// LongDiffThreshold is the character count past which the diff is
	// considered too long to send verbatim.
	LongDiffThreshold = 15000

	maxSummaryFiles = 10
	maxBulletLines  = 200

	// Rough tokenizer-free estimate: one token per four characters.
	charsPerToken = 4

	truncationMark = "...<truncated>"
)

// EstimateTokens approximates the token count of text without a model
// tokenizer.
func EstimateTokens(text string) int {
	return len(text) / charsPerToken
}

// CheckDiffLength reports whether the diff exceeds the threshold, with a
// human-readable warning when it does.
func CheckDiffLength(text string) (bool, string) {
	if len(text) > LongDiffThreshold {
		return true, fmt.Sprintf(
			"Diff is long (%d characters); consider staging in smaller batches.", len(text))
	}
	return false, ""
}

var diffFileRe = regexp.MustCompile(`diff --git a/(.+?) `)

// summarizeFiles lists the changed file paths, capped at maxSummaryFiles.
func summarizeFiles(text string) string {
	matches := diffFileRe.FindAllStringSubmatch(text, maxSummaryFiles)
	lines := make([]string, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, "- changed: "+m[1])
	}
	return "Change summary:\n" + strings.Join(lines, "\n")
}

// compressToBullets collapses the diff into add/delete bullets, dropping
// context lines and capping the result at maxBulletLines.
func compressToBullets(text string) string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			bullets = append(bullets, "- add: "+strings.TrimSpace(line[1:]))
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			bullets = append(bullets, "- delete: "+strings.TrimSpace(line[1:]))
		}
		if len(bullets) >= maxBulletLines {
			bullets = append(bullets, truncationMark)
			break
		}
	}
	return strings.Join(bullets, "\n")
}

// Fit returns diff text that estimates within maxTokens. Under-budget text
// passes through untouched. Over-budget text is replaced by a file summary
// plus a bullet compression, then hard-truncated if that is still too big.
func Fit(text string, maxTokens int) string {
	if maxTokens <= 0 || EstimateTokens(text) <= maxTokens {
		return text
	}

	var parts []string
	if long, warning := CheckDiffLength(text); long {
		parts = append(parts, warning)
	}
	parts = append(parts, summarizeFiles(text))
	parts = append(parts, "Change details (compressed):\n"+compressToBullets(text))
	out := strings.Join(parts, "\n\n")

	if excess := EstimateTokens(out) - maxTokens; excess > 0 {
		cut := excess * charsPerToken
		if len(out) > cut {
			keep := len(out) - cut
			for keep > 0 && !utf8.RuneStart(out[keep]) {
				keep--
			}
			out = out[:keep] + "\n" + truncationMark
		} else {
			out = "Diff is too large to process. Please stage fewer changes.\n" + truncationMark
		}
	}
	return out
}
