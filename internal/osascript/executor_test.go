//go:build unix

package osascript

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"
)

// fakeHost writes an executable shell script standing in for osascript.
// It receives the same argv as the real host: "-e" followed by the script.
func fakeHost(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "osascript")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("writing fake host: %v", err)
	}
	return path
}

func TestRun_SuccessTrimsStdout(t *testing.T) {
	host := fakeHost(t, `printf '  Note A|1, Note B|2 \n\n'`)
	res := New(WithCommand(host)).Run(context.Background(), "ignored")

	if !res.OK() {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Output != "Note A|1, Note B|2" {
		t.Errorf("Output = %q", res.Output)
	}
}

func TestRun_PassesScriptAsSingleArgument(t *testing.T) {
	host := fakeHost(t, `printf '%s|%s|%s' "$#" "$1" "$2"`)
	script := "tell application \"Notes\"\n\treturn 1\nend tell"

	res := New(WithCommand(host)).Run(context.Background(), script)
	if !res.OK() {
		t.Fatalf("expected success, got %+v", res)
	}
	want := "2|-e|" + script
	if res.Output != want {
		t.Errorf("Output = %q, want %q", res.Output, want)
	}
}

func TestRun_NoStdin(t *testing.T) {
	host := fakeHost(t, `cat; echo done`)
	res := New(WithCommand(host), WithTimeout(5*time.Second)).Run(context.Background(), "x")

	if !res.OK() || res.Output != "done" {
		t.Errorf("expected immediate EOF on stdin, got %+v", res)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"prefers stderr", `echo out; echo "execution error: Notes got an error (-1728)" >&2; exit 1`, "Error: execution error: Notes got an error (-1728)"},
		{"falls back to stdout", `echo "only stdout"; exit 2`, "Error: only stdout"},
		{"falls back to exit status", `exit 3`, "Error: exit status 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New(WithCommand(fakeHost(t, tt.body))).Run(context.Background(), "x")
			if res.OK() {
				t.Fatalf("expected failure, got %+v", res)
			}
			if res.Output != tt.want {
				t.Errorf("Output = %q, want %q", res.Output, tt.want)
			}
		})
	}
}

func TestRun_Timeout_KillsChild(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "pid")
	host := fakeHost(t, `echo $$ > `+pidFile+`; exec sleep 30`)

	start := time.Now()
	res := New(WithCommand(host), WithTimeout(300*time.Millisecond)).Run(context.Background(), "x")
	elapsed := time.Since(start)

	if res.OK() {
		t.Fatalf("expected failure, got %+v", res)
	}
	if !strings.Contains(res.Output, "timed out") {
		t.Errorf("Output = %q, want timeout diagnostic", res.Output)
	}
	if elapsed > 5*time.Second {
		t.Errorf("Run took %s, timeout not enforced", elapsed)
	}

	data, err := os.ReadFile(pidFile)
	if err != nil {
		t.Fatalf("reading pid file: %v", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		t.Fatalf("parsing pid: %v", err)
	}
	if err := syscall.Kill(pid, 0); !errors.Is(err, syscall.ESRCH) {
		t.Errorf("child %d still present after timeout (kill -0: %v)", pid, err)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	host := fakeHost(t, `exec sleep 30`)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	res := New(WithCommand(host)).Run(ctx, "x")
	if res.OK() || !strings.Contains(res.Output, "cancelled") {
		t.Errorf("expected cancellation failure, got %+v", res)
	}
}

func TestRun_SpawnFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-osascript")
	res := New(WithCommand(missing)).Run(context.Background(), "x")

	if res.OK() {
		t.Fatalf("expected failure, got %+v", res)
	}
	if !strings.HasPrefix(res.Output, FailurePrefix) {
		t.Errorf("Output = %q, want %q prefix", res.Output, FailurePrefix)
	}
}

func TestNew_Defaults(t *testing.T) {
	e := New(WithCommand(""), WithTimeout(0))
	if e.Command() != DefaultCommand {
		t.Errorf("Command = %q, want %q", e.Command(), DefaultCommand)
	}
	if e.Timeout() != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", e.Timeout(), DefaultTimeout)
	}
}

func TestRunnerFunc(t *testing.T) {
	var got string
	r := RunnerFunc(func(_ context.Context, script string) Result {
		got = script
		return Success("ok")
	})
	if res := r.Run(context.Background(), "s"); !res.OK() || got != "s" {
		t.Errorf("RunnerFunc did not delegate: %+v, %q", res, got)
	}
}
