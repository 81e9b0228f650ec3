package picker

// Cursor tracks which candidate is highlighted.
type Cursor struct {
	candidates []string
	index      int
}

// SetCandidates replaces the candidate list and resets the highlight.
func (c *Cursor) SetCandidates(candidates []string) {
	c.candidates = candidates
	c.Reset()
}

// Candidates returns the current candidate list.
func (c *Cursor) Candidates() []string {
	return c.candidates
}

// Reset moves the highlight back to the first candidate.
func (c *Cursor) Reset() {
	c.index = 0
}

// Advance moves the highlight forward, wrapping at the end. It does nothing
// when there are no candidates.
func (c *Cursor) Advance() {
	if len(c.candidates) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.candidates)
}

// Index returns the highlighted position.
func (c *Cursor) Index() int {
	return c.index
}

// Current returns the highlighted name, or false when there are no candidates.
func (c *Cursor) Current() (string, bool) {
	if len(c.candidates) == 0 {
		return "", false
	}
	return c.candidates[c.index], true
}
