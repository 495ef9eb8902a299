// Package provision makes sure the capabilities a command needs are available
// before it runs, installing the missing ones.
package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/livebud/color"
	"github.com/matthewmueller/lmtranslate/sandbox"
)

// ErrInstall is returned when a missing requirement could not be installed
var ErrInstall = errors.New("provision: unable to install")

// Requirement is a capability that must be present before commands run
type Requirement struct {
	Name    string
	Present func() bool
	Install []string
}

// BuildInfo reads the build information of a binary
type BuildInfo func() (*debug.BuildInfo, bool)

// Module requires a Go module to be linked into the running binary
func Module(path string, install ...string) Requirement {
	return ModuleIn(debug.ReadBuildInfo, path, install...)
}

// ModuleIn requires a Go module to be listed in the build info read by info
func ModuleIn(info BuildInfo, path string, install ...string) Requirement {
	return Requirement{
		Name: path,
		Present: func() bool {
			return linked(info, path)
		},
		Install: install,
	}
}

func linked(read BuildInfo, path string) bool {
	info, ok := read()
	if !ok {
		// Without build info there's nothing to check against
		return true
	}
	if info.Main.Path == path {
		return true
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return true
		}
	}
	return false
}

// New creates a provisioner. Install commands run through exec with their
// output discarded and progress notices are written to stderr.
func New(log *slog.Logger, exec *sandbox.Exec, stderr io.Writer, reqs ...Requirement) *Provisioner {
	return &Provisioner{log, exec, stderr, reqs}
}

type Provisioner struct {
	log    *slog.Logger
	exec   *sandbox.Exec
	stderr io.Writer
	reqs   []Requirement
}

// Ensure installs every requirement that isn't present. It blocks until each
// install finishes and stops at the first failure.
func (p *Provisioner) Ensure(ctx context.Context) error {
	for _, req := range p.reqs {
		if req.Present() {
			p.log.Debug("provision: requirement present", "name", req.Name)
			continue
		}
		if len(req.Install) == 0 {
			return fmt.Errorf("%w %s: no install command", ErrInstall, req.Name)
		}
		fmt.Fprintln(p.stderr, color.Dim("installing "+req.Name+"..."))
		cmd := p.exec.CommandContext(ctx, req.Install[0], req.Install[1:]...)
		p.log.Debug("provision: installing", "name", req.Name, "cmd", cmd.String())
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%w %s: %w", ErrInstall, req.Name, err)
		}
		if !req.Present() {
			return fmt.Errorf("%w %s: still missing after install", ErrInstall, req.Name)
		}
	}
	return nil
}
