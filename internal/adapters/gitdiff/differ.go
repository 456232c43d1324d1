// Package gitdiff lists changed files by shelling out to the git CLI.
package gitdiff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
)

// Differ implements ports.ChangeSource using `git diff --name-only`.
type Differ struct {
	logger ports.Logger
}

// NewDiffer creates a new Differ.
func NewDiffer(logger ports.Logger) *Differ {
	return &Differ{
		logger: logger,
	}
}

// Changes runs `git diff --name-only <base>` in root and returns the modified
// paths relative to the repository root. The working tree is compared against
// base, so staged and unstaged modifications are both reported.
func (d *Differ) Changes(ctx context.Context, root, base string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", root, "diff", "--name-only", base)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(err, "git diff failed"), "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return nil, wrapped
	}

	var paths []string
	for line := range strings.Lines(stdout.String()) {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}

	d.logger.Info(fmt.Sprintf("git reports %d changed files since %s", len(paths), base))
	return paths, nil
}
