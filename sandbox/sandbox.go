// Package sandbox runs external commands through a pluggable executor.
package sandbox

import (
	"context"
	"io"
	"strings"
)

// Executor runs a command to completion
type Executor interface {
	Run(ctx context.Context, cmd *Cmd) error
}

func New(executor Executor) *Exec {
	return &Exec{executor}
}

type Exec struct {
	exec Executor
}

func (e *Exec) Command(name string, args ...string) *Cmd {
	return e.CommandContext(context.Background(), name, args...)
}

func (e *Exec) CommandContext(ctx context.Context, name string, args ...string) *Cmd {
	return &Cmd{exec: e.exec, ctx: ctx, Path: name, Args: args}
}

// Cmd is a command prepared for an executor. Nil Stdout and Stderr discard the
// output.
type Cmd struct {
	exec   Executor
	ctx    context.Context
	Path   string
	Args   []string
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (c *Cmd) Run() error {
	return c.exec.Run(c.ctx, c)
}

// String returns the command line
func (c *Cmd) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}
