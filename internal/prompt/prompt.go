// Package prompt renders the instruction text sent to the model. Building
// is pure: the same diff and options always produce the same bytes.
package prompt

import (
	"fmt"
	"strings"

	"commity/internal/gitx"
)

const (
	DefaultLanguage        = "en"
	DefaultCommitType      = "conventional"
	DefaultMaxSubjectChars = 50
)

// StyleOptions shape the requested message, not the transport.
type StyleOptions struct {
	UseEmoji        bool
	Language        string
	CommitType      string
	MaxSubjectChars int
}

func (s StyleOptions) withDefaults() StyleOptions {
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.CommitType == "" {
		s.CommitType = DefaultCommitType
	}
	if s.MaxSubjectChars <= 0 {
		s.MaxSubjectChars = DefaultMaxSubjectChars
	}
	return s
}

// gitmojis maps commit types to the emoji requested when UseEmoji is on.
var gitmojis = []struct{ typ, emoji string }{
	{"feat", "✨"},
	{"fix", "🐛"},
	{"docs", "📝"},
	{"style", "🎨"},
	{"refactor", "♻️"},
	{"perf", "⚡"},
	{"test", "✅"},
	{"chore", "🔧"},
}

// Build renders the prompt for a staged diff. An empty diff still yields a
// well-formed prompt saying so; rejecting it is the caller's decision.
// Binary changes arrive as single-line placeholders in the diff text, so
// prompt size never depends on binary file size.
func Build(diff gitx.DiffInput, style StyleOptions) string {
	style = style.withDefaults()

	var b strings.Builder
	b.WriteString("You are an expert software engineer. ")
	b.WriteString("Write a commit message for the staged changes below.\n\n")

	fmt.Fprintf(&b, "Write the commit message in language: %s.\n", style.Language)

	if style.CommitType == "conventional" {
		b.WriteString("Follow the Conventional Commits specification:\n")
		b.WriteString("- Format: type(scope): description\n")
		b.WriteString("- Types: feat: a new feature, fix: a bug fix, docs:, style:, refactor:, perf:, test:, chore:\n")
		fmt.Fprintf(&b, "- Subject line must be ≤%d characters, lowercase type, no trailing period.\n", style.MaxSubjectChars)
		b.WriteString("- Add a body only when the change needs explanation.\n")
	} else {
		fmt.Fprintf(&b, "Write a %s-style commit message. Subject line must be ≤%d characters.\n",
			style.CommitType, style.MaxSubjectChars)
	}

	if style.UseEmoji {
		b.WriteString("\nStart the description with a gitmoji matching the type, as type(scope): <emoji> description:\n")
		for _, g := range gitmojis {
			fmt.Fprintf(&b, "- %s: %s\n", g.typ, g.emoji)
		}
	} else {
		b.WriteString("\nDo not include emojis.\n")
	}

	b.WriteString("\nRespond with the commit message only: no preamble, no explanation, no code fences.\n")

	b.WriteString("\nGit Diff:\n")
	if diff.Empty() {
		b.WriteString("(no changes are currently staged)\n")
	} else {
		b.WriteString(diff.Text)
		if !strings.HasSuffix(diff.Text, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}
