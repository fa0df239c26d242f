package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"commity/internal/gitx"
)

var sampleDiff = gitx.ParseDiff("diff --git a/test.go b/test.go\n+fmt.Println(\"hello\")\n")

func TestBuildBasic(t *testing.T) {
	p := Build(sampleDiff, StyleOptions{})

	assert.Contains(t, p, "Git Diff:")
	assert.Contains(t, p, "commit message")
	assert.Contains(t, p, sampleDiff.Text)
}

func TestBuildLanguage(t *testing.T) {
	p := Build(sampleDiff, StyleOptions{Language: "zh"})
	assert.Contains(t, p, "zh")

	p = Build(sampleDiff, StyleOptions{})
	assert.Contains(t, p, "language: en", "defaults to en")
}

func TestBuildWithEmoji(t *testing.T) {
	p := Build(sampleDiff, StyleOptions{UseEmoji: true})

	assert.Contains(t, strings.ToLower(p), "emoji")
	assert.Contains(t, p, "✨")
	assert.Contains(t, p, "🐛")
	assert.Contains(t, p, "type(scope): <emoji>")
}

func TestBuildWithoutEmoji(t *testing.T) {
	p := Build(sampleDiff, StyleOptions{UseEmoji: false})

	assert.Contains(t, p, "Do not include emojis")
	assert.NotContains(t, p, "✨")
}

func TestBuildConventional(t *testing.T) {
	p := Build(sampleDiff, StyleOptions{CommitType: "conventional"})

	assert.Contains(t, p, "Conventional Commits")
	assert.Contains(t, p, "feat:")
	assert.Contains(t, p, "fix:")
	assert.Contains(t, p, "type(scope): description")
}

func TestBuildSubjectLimit(t *testing.T) {
	assert.Contains(t, Build(sampleDiff, StyleOptions{MaxSubjectChars: 72}), "≤72 characters")
	assert.Contains(t, Build(sampleDiff, StyleOptions{}), "≤50 characters")
}

func TestBuildEmptyDiff(t *testing.T) {
	p := Build(gitx.DiffInput{}, StyleOptions{UseEmoji: true})

	assert.Contains(t, p, "Git Diff:")
	assert.Contains(t, p, "commit message")
	assert.Contains(t, p, "no changes are currently staged")
}

func TestBuildDeterministic(t *testing.T) {
	opts := StyleOptions{UseEmoji: true, Language: "zh", MaxSubjectChars: 60}
	assert.Equal(t, Build(sampleDiff, opts), Build(sampleDiff, opts))
}

func TestBuildBinaryDiffStaysSmall(t *testing.T) {
	// A binary change shows up as a one-line placeholder; the prompt must
	// not grow beyond the diff text itself.
	bin := gitx.ParseDiff("diff --git a/logo.png b/logo.png\nBinary files a/logo.png and b/logo.png differ\n")
	p := Build(bin, StyleOptions{})

	assert.Contains(t, p, "Binary files a/logo.png and b/logo.png differ")
	assert.Less(t, len(p), len(bin.Text)+2000)
}
