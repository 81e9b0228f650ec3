package picker

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/amenu/internal/entries"
)

// DefaultCommitDelay gives clipboard consumers time to read the value before
// the owning process exits.
const DefaultCommitDelay = 200 * time.Millisecond

// ClipboardSink receives committed content.
type ClipboardSink interface {
	SetText(content string) error
}

// Reason says why the picker terminated.
type Reason int

const (
	Cancelled Reason = iota
	Committed
)

func (r Reason) String() string {
	switch r {
	case Committed:
		return "committed"
	default:
		return "cancelled"
	}
}

// Termination is the one-shot outcome of a commit or cancel.
type Termination struct {
	Reason Reason
	Name   string // highlighted candidate; empty when nothing matched
	Copied bool   // content reached the clipboard sink
	Err    error  // clipboard write failure, if any
}

// Committer resolves the highlighted candidate and writes it to the sink.
type Committer struct {
	sink   ClipboardSink
	delay  time.Duration
	sleep  func(time.Duration)
	logger *log.Logger
}

// CommitterOption customises a Committer.
type CommitterOption func(*Committer)

// WithDelay overrides the post-write delay. Zero disables it.
func WithDelay(d time.Duration) CommitterOption {
	return func(c *Committer) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithSleep replaces time.Sleep, mostly for tests.
func WithSleep(sleep func(time.Duration)) CommitterOption {
	return func(c *Committer) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *log.Logger) CommitterOption {
	return func(c *Committer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCommitter builds a Committer. A nil sink means the clipboard could not
// be acquired; commits then skip the write but still terminate.
func NewCommitter(sink ClipboardSink, opts ...CommitterOption) *Committer {
	c := &Committer{
		sink:   sink,
		delay:  DefaultCommitDelay,
		sleep:  time.Sleep,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Commit writes the highlighted entry's content to the sink. Write failures
// are logged and recorded but never stop termination.
func (c *Committer) Commit(store *entries.Store, cursor *Cursor) Termination {
	result := Termination{Reason: Committed}

	name, ok := cursor.Current()
	if !ok {
		c.logger.Debug("commit with no candidates")
		return result
	}
	result.Name = name

	content, ok := store.Content(name)
	if !ok {
		c.logger.Error("highlighted name missing from store", "name", name)
		return result
	}

	if c.sink == nil {
		c.logger.Warn("clipboard unavailable, nothing copied", "name", name)
		return result
	}

	if err := c.sink.SetText(content); err != nil {
		c.logger.Error("copy to clipboard failed", "name", name, "err", err)
		result.Err = err
	} else {
		c.logger.Info("copied entry to clipboard", "name", name, "bytes", len(content))
		result.Copied = true
	}

	if c.delay > 0 {
		c.sleep(c.delay)
	}
	return result
}

// Cancel terminates without touching the clipboard.
func (c *Committer) Cancel() Termination {
	return Termination{Reason: Cancelled}
}
