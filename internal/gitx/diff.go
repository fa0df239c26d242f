package gitx

import (
	"context"
	"strings"
)

// DiffInput is the staged diff plus the cheap facts derived from it.
// Empty means nothing is staged.
type DiffInput struct {
	Text      string
	FileCount int
	HasBinary bool
}

func (d DiffInput) Empty() bool { return strings.TrimSpace(d.Text) == "" }

// StagedDiff reads `git diff --staged`. Whitespace-only output collapses
// to an empty DiffInput rather than an error; whether an empty diff is a
// problem is the caller's call.
func StagedDiff(ctx context.Context, repoRoot string) (DiffInput, error) {
	out, err := Git(ctx, repoRoot, "diff", "--staged")
	if err != nil {
		return DiffInput{}, err
	}
	if strings.TrimSpace(out) == "" {
		return DiffInput{}, nil
	}
	return ParseDiff(out), nil
}

// ParseDiff derives the file count and binary marker from raw diff text.
// Binary content never appears in the text itself: git emits either a
// "Binary files ... differ" line or a "GIT binary patch" header, both a
// single line regardless of blob size.
func ParseDiff(text string) DiffInput {
	d := DiffInput{Text: text}
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			d.FileCount++
		case strings.HasPrefix(line, "Binary files ") && strings.HasSuffix(strings.TrimRight(line, "\r"), " differ"):
			d.HasBinary = true
		case strings.HasPrefix(line, "GIT binary patch"):
			d.HasBinary = true
		}
	}
	return d
}
