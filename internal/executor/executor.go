package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"ch/internal/logging"
)

// Executor runs command strings through a shell with inherited stdio
type Executor struct {
	Shell  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	log *logrus.Entry
}

// New creates an executor for shell wired to the process stdio
func New(shell string) *Executor {
	return &Executor{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		log:    logging.NewLogger("executor"),
	}
}

// Run prints a header, then runs command as `<shell> -c command` and waits.
// A non-zero exit is reported on Stderr and returned as an *exec.ExitError.
func (e *Executor) Run(ctx context.Context, command string) error {
	fmt.Fprintf(e.Stdout, "\n▶ Execute command:\n%s\n\n▶ Execute command result:\n", command)

	cmd := exec.CommandContext(ctx, e.Shell, "-c", command)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	log := e.log.WithFields(logrus.Fields{"shell": e.Shell, "command": command})
	log.Info("running command")

	err := cmd.Run()
	if err == nil {
		log.Debug("command finished")
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintf(e.Stderr, "\n❌ Command exited with status %d\n", exitErr.ExitCode())
		log.WithField("status", exitErr.ExitCode()).Warn("command failed")
		return err
	}

	log.WithError(err).Error("could not start command")
	return fmt.Errorf("run %q with %s: %w", command, e.Shell, err)
}

// ExitCode extracts the exit status from an error returned by Run.
// It is 0 for nil and -1 when the command never ran.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
