package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commity/internal/gitx"
	"commity/internal/llm"
	"commity/internal/prompt"
)

type stubClient struct {
	reply  string
	err    error
	prompt string
}

func (s *stubClient) Name() string { return "stub" }

func (s *stubClient) Generate(_ context.Context, p string) (string, error) {
	s.prompt = p
	return s.reply, s.err
}

var testDiff = gitx.ParseDiff("diff --git a/hello.go b/hello.go\n+fmt.Println(\"hello\")\n")

func TestGeneratePassthrough(t *testing.T) {
	stub := &stubClient{reply: "feat: add hello line"}

	got, err := Generate(context.Background(), testDiff, prompt.StyleOptions{}, stub, Options{})
	require.NoError(t, err)
	assert.Equal(t, "feat: add hello line", got)
	assert.Contains(t, stub.prompt, testDiff.Text, "prompt carries the diff")
}

func TestGenerateCleansReply(t *testing.T) {
	stub := &stubClient{reply: "<think>hmm</think>\nfix: close the leak"}

	got, err := Generate(context.Background(), testDiff, prompt.StyleOptions{}, stub, Options{})
	require.NoError(t, err)
	assert.Equal(t, "fix: close the leak", got)
}

func TestGenerateWhitespaceReplyIsEmptyResponse(t *testing.T) {
	stub := &stubClient{reply: "   \n\t  "}

	_, err := Generate(context.Background(), testDiff, prompt.StyleOptions{}, stub, Options{Model: "test-model"})
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "stub", genErr.Provider)
	assert.Equal(t, "test-model", genErr.Model)
	assert.True(t, llm.IsKind(err, llm.KindEmptyResponse), "got %v", err)
}

func TestGenerateWrapsClientFailure(t *testing.T) {
	cause := llm.Errorf(llm.KindRateLimited, "stub", "slow down")
	stub := &stubClient{err: cause}

	_, err := Generate(context.Background(), testDiff, prompt.StyleOptions{}, stub, Options{})
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.True(t, llm.IsKind(err, llm.KindRateLimited), "kind survives wrapping: %v", err)
	assert.True(t, errors.Is(err, cause) || errors.As(err, new(*llm.Error)))
}

func TestGenerateTruncatesLongMessage(t *testing.T) {
	stub := &stubClient{reply: "feat: " + strings.Repeat("x", 500)}

	got, err := Generate(context.Background(), testDiff, prompt.StyleOptions{}, stub, Options{MaxMessageChars: 72})
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(got)), 72)
	assert.True(t, strings.HasPrefix(got, "feat: "))
}

func TestGenerateNoRetry(t *testing.T) {
	calls := 0
	stub := &countingClient{count: &calls}

	_, err := Generate(context.Background(), testDiff, prompt.StyleOptions{}, stub, Options{})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "one attempt per call")
}

type countingClient struct{ count *int }

func (c *countingClient) Name() string { return "counting" }

func (c *countingClient) Generate(context.Context, string) (string, error) {
	*c.count++
	return "", llm.Errorf(llm.KindBackendUnavailable, "counting", "down")
}
