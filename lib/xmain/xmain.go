// Package xmain is the main stub of the gridcanvas command. It wires stdio, the
// environment, flags and signals into a State and turns returned errors into exit codes.
package xmain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

// SHUTDOWN_GRACE is how long a run may take to return after an interrupt.
const SHUTDOWN_GRACE = 10 * time.Second

type RunFunc func(context.Context, *State) error

type State struct {
	Name string

	Stdin  io.Reader
	Stdout io.WriteCloser
	Stderr io.WriteCloser

	Log  *cmdlog.Logger
	Env  *xos.Env
	Opts *Opts
}

// NewState builds a State over the given stdio. argv[0] names the command and the
// rest are parsed as flags.
func NewState(stdin io.Reader, stdout, stderr io.WriteCloser, env *xos.Env, argv []string) *State {
	ms := &State{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Env:    env,
	}
	var args []string
	if len(argv) > 0 {
		ms.Name = argv[0]
		args = argv[1:]
	}
	ms.Log = cmdlog.Log(env, stderr)
	ms.Opts = NewOpts(env, args)
	return ms
}

func Main(run RunFunc) {
	ms := NewState(os.Stdin, os.Stdout, os.Stderr, xos.NewEnv(os.Environ()), os.Args)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	err := ms.Main(context.Background(), sigs, run)
	if err == nil {
		os.Exit(0)
	}
	code, msg := ExitCode(err)
	if msg != "" {
		ms.Log.Error.Print(msg)
	}
	os.Exit(code)
}

// ExitCode maps an error returned by a RunFunc to a process exit code and the message
// to print. Usage errors exit with 2.
func ExitCode(err error) (int, string) {
	var eerr ExitError
	var uerr UsageError
	switch {
	case err == nil:
		return 0, ""
	case errors.As(err, &eerr):
		return eerr.Code, eerr.Message
	case errors.As(err, &uerr):
		return 2, fmt.Sprintf("%s\nRun with --help to see usage.", err)
	default:
		return 1, err.Error()
	}
}

// Main runs run until it returns or a signal arrives. After a signal run gets
// SHUTDOWN_GRACE to return before Main gives up on it.
func (ms *State) Main(ctx context.Context, sigs <-chan os.Signal, run RunFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- run(ctx, ms)
	}()

	var sig os.Signal
	select {
	case err := <-done:
		return err
	case sig = <-sigs:
	}

	ms.Log.Warn.Printf("received %v: stopping", sig)
	cancel()
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("failed to stop: %w", err)
		}
		if sig == syscall.SIGTERM {
			return nil
		}
		return ExitError{Code: 130}
	case <-time.After(SHUTDOWN_GRACE):
		return ExitError{
			Code:    1,
			Message: fmt.Sprintf("still running %v after %v: exiting", sig, SHUTDOWN_GRACE),
		}
	}
}

type ExitError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (ee ExitError) Error() string {
	s := fmt.Sprintf("exiting with code %d", ee.Code)
	if ee.Message != "" {
		s += ": " + ee.Message
	}
	return s
}

type UsageError struct {
	Message string `json:"message"`
}

func UsageErrorf(msg string, v ...interface{}) UsageError {
	return UsageError{
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ue UsageError) Error() string {
	return fmt.Sprintf("bad usage: %s", ue.Message)
}

// ReadPath reads fp, or stdin when fp is -.
func (ms *State) ReadPath(fp string) ([]byte, error) {
	if fp == "-" {
		return io.ReadAll(ms.Stdin)
	}
	return os.ReadFile(fp)
}

// WritePath writes p to fp, or to stdout when fp is -. Stdout is closed afterwards.
func (ms *State) WritePath(fp string, p []byte) error {
	if fp == "-" {
		_, err := ms.Stdout.Write(p)
		if err != nil {
			return err
		}
		return ms.Stdout.Close()
	}
	return os.WriteFile(fp, p, 0644)
}
