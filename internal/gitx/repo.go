package gitx

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

func ResolveRepoRoot(ctx context.Context, repoArg string) (string, error) {
	if strings.TrimSpace(repoArg) != "" {
		p, err := filepath.Abs(repoArg)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(p); err != nil {
			return "", err
		}
		// If the user points at a subdir, normalize by asking git.
		root, err := Git(ctx, p, "rev-parse", "--show-toplevel")
		if err == nil {
			return strings.TrimSpace(root), nil
		}
		return p, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := Git(ctx, cwd, "rev-parse", "--show-toplevel")
	if err == nil {
		return strings.TrimSpace(root), nil
	}

	// Fallback: walk up looking for .git (normal repos; worktrees are
	// already covered by the rev-parse above).
	cur := cwd
	for {
		if _, err := os.Stat(filepath.Join(cur, ".git")); err == nil {
			root, err := Git(ctx, cur, "rev-parse", "--show-toplevel")
			if err == nil {
				return strings.TrimSpace(root), nil
			}
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}

	return "", errors.New("not inside a git repository. Use --repo /path/to/repo")
}
