package local_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/matthewmueller/lmtranslate/sandbox/local"
)

func TestRun(t *testing.T) {
	is := is.New(t)
	sb := local.New(t.TempDir())

	stdout := new(bytes.Buffer)
	cmd := sb.CommandContext(context.Background(), "sh", "-c", "printf 'hello\\n'")
	cmd.Stdout = stdout
	is.NoErr(cmd.Run())
	is.Equal(stdout.String(), "hello\n")
}

func TestRunWorkDir(t *testing.T) {
	is := is.New(t)
	root := t.TempDir()
	is.NoErr(os.Mkdir(filepath.Join(root, "sub"), 0755))
	sb := local.New(root)

	stdout := new(bytes.Buffer)
	cmd := sb.Command("sh", "-c", "ls")
	cmd.Dir = "."
	cmd.Stdout = stdout
	is.NoErr(cmd.Run())
	is.Equal(stdout.String(), "sub\n")
}

func TestRunNonZeroExit(t *testing.T) {
	is := is.New(t)
	sb := local.New(t.TempDir())

	stderr := new(bytes.Buffer)
	cmd := sb.Command("sh", "-c", "echo 'nope' >&2; exit 42")
	cmd.Stderr = stderr
	err := cmd.Run()
	var exitErr *local.ExitError
	is.True(errors.As(err, &exitErr))
	is.Equal(exitErr.Code, 42)
	is.Equal(stderr.String(), "nope\n")
}

func TestRunOutsideRoot(t *testing.T) {
	is := is.New(t)
	sb := local.New(t.TempDir())

	cmd := sb.Command("true")
	cmd.Dir = ".."
	is.True(cmd.Run() != nil)
}

func TestRunMissingCommand(t *testing.T) {
	is := is.New(t)
	sb := local.New(t.TempDir())

	err := sb.Command("lmtranslate-does-not-exist").Run()
	is.True(err != nil)
	var exitErr *local.ExitError
	is.True(!errors.As(err, &exitErr))
}
