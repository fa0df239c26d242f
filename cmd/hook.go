package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"commity/internal/gitx"
)

func newInstallHookCmd() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "install-hook",
		Short: "Install a prepare-commit-msg hook that runs commity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return installHook(cmd.Context(), repo)
		},
	}
	cmd.Flags().StringVar(&repo, "repo", "", "path to the git repository")
	return cmd
}

func installHook(ctx context.Context, repoArg string) error {
	repoRoot, err := gitx.ResolveRepoRoot(ctx, repoArg)
	if err != nil {
		return err
	}

	hooksDir := filepath.Join(repoRoot, ".git", "hooks")
	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return fmt.Errorf("create hooks dir: %w", err)
	}

	hookPath := filepath.Join(hooksDir, "prepare-commit-msg")
	if _, err := os.Stat(hookPath); err == nil {
		return fmt.Errorf("hook %s already exists, remove it first", hookPath)
	}

	exe, err := os.Executable()
	if err != nil {
		exe = "commity"
	} else {
		exe, _ = filepath.Abs(exe)
	}

	script := fmt.Sprintf(`#!/bin/sh
# commity prepare-commit-msg hook
# $1 is the message file, $2 the source, $3 the SHA.

COMMIT_MSG_FILE=$1
COMMIT_SOURCE=$2

# Skip when a message was already supplied (-m, merge, squash).
if [ -n "$COMMIT_SOURCE" ]; then
  exit 0
fi

# Reattach the terminal so the interactive UI works inside the hook.
if [ -t 0 ]; then
    exec < /dev/tty
fi

"%s" --hook "$COMMIT_MSG_FILE" < /dev/tty > /dev/tty
`, exe)

	if err := os.WriteFile(hookPath, []byte(script), 0755); err != nil {
		return fmt.Errorf("write hook: %w", err)
	}

	fmt.Printf("Hook installed to %s\n", hookPath)
	return nil
}
