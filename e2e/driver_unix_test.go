//go:build e2e && unix

package e2e

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/creack/pty"
)

const ringSize = 1 << 20 // 1 MiB of scrollback

var binPath = "ch_e2e"

// Key sequences as a terminal sends them
const (
	KeyEnter     = "\r"
	KeyEsc       = "\x1b"
	KeyCtrlC     = "\x03"
	KeyBackspace = "\x7f"
	KeyUp        = "\x1b[A"
	KeyDown      = "\x1b[B"
	KeyRight     = "\x1b[C"
	KeyLeft      = "\x1b[D"
)

const sampleConfig = `
[groups.db.commands]
start = "echo starting-db"
stop = "echo stopping-db"

[groups.web.connections]
deploy = "echo deploying-web"
`

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// TUITestFramework drives the ch binary inside a pseudo-terminal
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string

	done    chan struct{}
	waitErr error

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

// NewTUITest creates a framework with an isolated workspace used as $HOME
func NewTUITest(t *testing.T) *TUITestFramework {
	t.Helper()
	workspace, err := os.MkdirTemp("", "ch-e2e-*")
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	return &TUITestFramework{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: workspace,
	}
}

// WriteConfig writes content to the workspace and returns its path
func (tf *TUITestFramework) WriteConfig(name, content string) string {
	tf.t.Helper()
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tf.t.Fatalf("write config: %v", err)
	}
	return path
}

// StartApp launches ch with args in a 120x40 pseudo-terminal
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"HOME="+tf.workspace, // isolate $HOME
		"CH_CONFIG=",
		"CH_LOG_FILE="+filepath.Join(tf.workspace, "ch.log"),
		"CH_LOG_LEVEL=debug",
	)

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}
	if err := pty.Setsize(ptyFile, &pty.Winsize{Rows: 40, Cols: 120}); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to set pty size: %w", err)
	}

	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty
	// the pager opens /dev/tty, so the child needs the pty as its controlling terminal
	tf.cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true, Ctty: 0}

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	tf.done = make(chan struct{})
	go func() {
		tf.waitErr = tf.cmd.Wait()
		close(tf.done)
	}()
	tf.startReader()
	return nil
}

// startReader copies pty output into the ring buffer until the pty closes
func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
}

// SendKeys writes raw bytes to the terminal
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends text one key at a time so every rune arrives as its own key press
func (tf *TUITestFramework) Type(text string) {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			tf.t.Fatalf("send %q: %v", r, err)
		}
		time.Sleep(30 * time.Millisecond)
	}
}

// Press sends a key sequence and gives the UI time to redraw
func (tf *TUITestFramework) Press(key string) {
	tf.t.Helper()
	if err := tf.SendKeys(key); err != nil {
		tf.t.Fatalf("send key: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
}

// Ready waits for the first full frame
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.OutputContainsPlain("Menu: Groups", 15*time.Second)
}

// StartWithConfig writes content as config.toml, starts the launcher on it
// and waits for the first frame.
func (tf *TUITestFramework) StartWithConfig(content string) {
	tf.t.Helper()
	cfg := tf.WriteConfig("config.toml", content)
	if err := tf.StartApp("--config", cfg); err != nil {
		tf.t.Fatalf("start app: %v", err)
	}
	if !tf.Ready() {
		tf.DumpTail(2000)
		tf.t.Fatal("launcher did not render")
	}
}

// OutputContainsPlain checks if the normalized output contains text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// WaitExit waits for the process to exit and returns its exit code
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (int, bool) {
	tf.t.Helper()
	select {
	case <-tf.done:
		var exitErr *exec.ExitError
		if errors.As(tf.waitErr, &exitErr) {
			return exitErr.ExitCode(), true
		}
		return 0, true
	case <-time.After(timeout):
		return 0, false
	}
}

// Exited reports whether the process has already exited
func (tf *TUITestFramework) Exited() bool {
	select {
	case <-tf.done:
		return true
	default:
		return false
	}
}

// Snapshot returns the current contents of the ring buffer
func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// SnapshotPlain returns the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTail logs the last n bytes of normalized output
func (tf *TUITestFramework) DumpTail(n int) {
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	tf.t.Logf("--- output tail ---\n%s", s)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	// Close PTY first to deliver SIGHUP to child process
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil && !tf.Exited() {
		_ = tf.cmd.Process.Kill()
		<-tf.done
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}
