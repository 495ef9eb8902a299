package local

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/matthewmueller/lmtranslate/sandbox"
)

// New creates a new local sandbox rooted at root
func New(root string) *sandbox.Exec {
	return sandbox.New(&Sandbox{root})
}

// Sandbox executes commands on the local machine.
type Sandbox struct {
	root string
}

var _ sandbox.Executor = (*Sandbox)(nil)

// ExitError is returned when a command runs but exits non-zero
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("sandbox/local: %q exited with status %d", e.Cmd, e.Code)
}

func (s *Sandbox) Run(ctx context.Context, c *sandbox.Cmd) error {
	rootDir, err := filepath.Abs(s.root)
	if err != nil {
		return fmt.Errorf("sandbox/local: resolving root dir: %w", err)
	}

	workDir := resolve(rootDir, c.Dir)
	isOutside, err := isOutsideRoot(rootDir, workDir)
	if err != nil {
		return fmt.Errorf("sandbox/local: unable to verify working dir: %w", err)
	} else if isOutside {
		return fmt.Errorf("sandbox/local: working dir %q is outside of root %q", c.Dir, s.root)
	}

	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = workDir
	if len(c.Env) > 0 {
		cmd.Env = append(cmd.Environ(), c.Env...)
	}
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{c.String(), exitErr.ExitCode()}
		}
		return fmt.Errorf("sandbox/local: running command: %w", err)
	}

	return nil
}

func resolve(absDir string, dirs ...string) string {
	for _, dir := range dirs {
		if filepath.IsAbs(dir) {
			absDir = dir
			continue
		}
		absDir = filepath.Join(absDir, dir)
	}
	return absDir
}

func isOutsideRoot(rootDir, workDir string) (bool, error) {
	rel, err := filepath.Rel(rootDir, workDir)
	if err != nil {
		return false, err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return true, nil
	}
	return false, nil
}
