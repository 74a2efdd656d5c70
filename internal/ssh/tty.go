package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty adapts a gliderlabs/ssh session to the tcell.Tty interface so a
// connected client can drive a full-screen dungeon session over SSH.
type Tty struct {
	session gossh.Session
	winCh   <-chan gossh.Window

	mu     sync.Mutex
	window gossh.Window
	resize func()
}

// NewTty wraps an SSH session. pty carries the initial window size and
// winCh delivers resize events for the lifetime of the session.
func NewTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *Tty {
	return &Tty{session: s, window: pty.Window, winCh: winCh}
}

// Read reads keyboard input from the session.
func (t *Tty) Read(b []byte) (int, error) { return t.session.Read(b) }

// Write sends rendered output to the session.
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close closes the underlying SSH channel.
func (t *Tty) Close() error { return t.session.Close() }

// Start, Stop and Drain are no-ops: the SSH channel is already open, is
// owned by the server handler, and flushes writes immediately.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize reports the client's current terminal dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts draining the resize channel so the
// stored window size tracks the client.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	go func() {
		for win := range t.winCh {
			t.mu.Lock()
			t.window = win
			cb := t.resize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}()
}
