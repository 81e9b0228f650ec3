package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable reports that no system clipboard utility was found.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Backend names accepted by Open.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
)

// Sink receives text destined for the clipboard.
type Sink interface {
	SetText(content string) error
}

var (
	systemWrite       = clipboard.WriteAll
	systemUnsupported = func() bool { return clipboard.Unsupported }
)

// System writes through the platform clipboard utility (pbcopy, xclip,
// xsel, wl-copy or the Windows API).
type System struct{}

// NewSystem returns a System sink, or ErrUnavailable when the platform
// has no usable clipboard utility.
func NewSystem() (*System, error) {
	if systemUnsupported() {
		return nil, ErrUnavailable
	}
	return &System{}, nil
}

// SetText replaces the clipboard content.
func (s *System) SetText(content string) error {
	if err := systemWrite(content); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal to set the clipboard using an OSC 52 escape
// sequence. It works over SSH where no local utility exists.
type OSC52 struct {
	w    io.Writer
	tmux bool
}

// NewOSC52 returns an OSC52 sink writing to w. The sequence is wrapped in
// a tmux passthrough when $TMUX is set.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{w: w, tmux: os.Getenv("TMUX") != ""}
}

// SetText emits the escape sequence carrying content.
func (o *OSC52) SetText(content string) error {
	seq := osc52.New(content)
	if o.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.w); err != nil {
		return fmt.Errorf("write osc52: %w", err)
	}
	return nil
}

// Open resolves a backend name to a sink. "auto" prefers the system
// clipboard and falls back to OSC 52 on w. "system" returns
// ErrUnavailable when no utility is installed.
func Open(backend string, w io.Writer) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendAuto:
		if s, err := NewSystem(); err == nil {
			return s, nil
		}
		return NewOSC52(w), nil
	case BackendSystem:
		s, err := NewSystem()
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendOSC52:
		return NewOSC52(w), nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}
