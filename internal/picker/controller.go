package picker

import "github.com/five82/amenu/internal/entries"

// State is the controller's lifecycle state.
type State int

const (
	Idle State = iota
	Terminating
)

// Batch collects the input events seen during one tick. The controller
// evaluates them in a fixed priority: cancel, cycle, commit, then text.
type Batch struct {
	Cancel       bool
	Cycle        bool
	Commit       bool
	QueryChanged bool
	Query        string
}

// Event is a single input from the UI surface.
type Event interface {
	apply(*Batch)
}

// QueryChangedEvent carries the full new query text.
type QueryChangedEvent struct{ Query string }

// CycleEvent asks for the next candidate.
type CycleEvent struct{}

// CommitEvent asks to copy the highlighted candidate and exit.
type CommitEvent struct{}

// CancelEvent asks to exit without copying.
type CancelEvent struct{}

func (e QueryChangedEvent) apply(b *Batch) {
	b.QueryChanged = true
	b.Query = e.Query
}

func (CycleEvent) apply(b *Batch)  { b.Cycle = true }
func (CommitEvent) apply(b *Batch) { b.Commit = true }
func (CancelEvent) apply(b *Batch) { b.Cancel = true }

// BatchOf folds events into a batch. A later query change replaces an
// earlier one.
func BatchOf(events ...Event) Batch {
	var b Batch
	for _, e := range events {
		if e != nil {
			e.apply(&b)
		}
	}
	return b
}

// Item is one candidate as the UI surface should draw it.
type Item struct {
	Name        string
	Highlighted bool
}

// RenderModel is everything the UI surface needs to draw a frame.
type RenderModel struct {
	Query string
	Items []Item
}

// Controller routes input batches to the filter, cursor and committer.
type Controller struct {
	store     *entries.Store
	names     []string
	committer *Committer

	state       State
	query       string
	cursor      Cursor
	termination Termination
}

// NewController builds a controller over store. A nil committer behaves like
// one with no clipboard.
func NewController(store *entries.Store, committer *Committer) *Controller {
	if store == nil {
		store = entries.Empty()
	}
	if committer == nil {
		committer = NewCommitter(nil, WithDelay(0))
	}
	return &Controller{
		store:     store,
		names:     store.Names(),
		committer: committer,
	}
}

// Step processes one tick. It returns true once the controller is
// terminating; later batches are ignored.
func (c *Controller) Step(b Batch) bool {
	if c.state == Terminating {
		return true
	}

	if b.Cancel {
		c.terminate(c.committer.Cancel())
		return true
	}
	if b.Cycle {
		c.cursor.Advance()
	}
	if b.Commit {
		c.terminate(c.committer.Commit(c.store, &c.cursor))
		return true
	}
	if b.QueryChanged {
		c.setQuery(b.Query)
	}
	return false
}

// Dispatch is Step over a set of events from the same tick.
func (c *Controller) Dispatch(events ...Event) bool {
	return c.Step(BatchOf(events...))
}

func (c *Controller) setQuery(query string) {
	c.query = query
	c.cursor.SetCandidates(Filter(c.names, query))
}

func (c *Controller) terminate(t Termination) {
	c.state = Terminating
	c.termination = t
}

// State reports the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Termination returns the outcome once terminating.
func (c *Controller) Termination() (Termination, bool) {
	return c.termination, c.state == Terminating
}

// Query returns the active query.
func (c *Controller) Query() string {
	return c.query
}

// Candidates returns the names matching the active query.
func (c *Controller) Candidates() []string {
	return c.cursor.Candidates()
}

// Selected returns the highlighted index.
func (c *Controller) Selected() int {
	return c.cursor.Index()
}

// Render builds the render model. It reports false once terminating, when
// nothing more should be drawn.
func (c *Controller) Render() (RenderModel, bool) {
	if c.state == Terminating {
		return RenderModel{}, false
	}
	candidates := c.cursor.Candidates()
	model := RenderModel{Query: c.query, Items: make([]Item, len(candidates))}
	for i, name := range candidates {
		model.Items[i] = Item{Name: name, Highlighted: i == c.cursor.Index()}
	}
	return model, true
}
