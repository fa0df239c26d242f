// Package gitx shells out to git for the handful of operations the tool
// needs: locating the repository, reading the staged diff, committing.
package gitx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

func Git(ctx context.Context, repoRoot string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", repoRoot}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %v failed: %v\n%s", args, err, stderr.String())
	}
	return stdout.String(), nil
}

// Commit records the staged changes with the given message.
func Commit(ctx context.Context, repoRoot, message string) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return fmt.Errorf("commit message cannot be empty")
	}
	_, err := Git(ctx, repoRoot, "commit", "-m", msg)
	return err
}
