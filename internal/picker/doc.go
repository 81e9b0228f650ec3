// Package picker is the selection engine: it filters entry names against a
// query, tracks the highlighted candidate and turns a commit into a clipboard
// write followed by termination.
//
// # Components
//
//   - Filter: case-insensitive substring match over the store's names,
//     keeping store order. An empty query matches nothing.
//   - Cursor: highlighted index over the current candidates. It resets to
//     zero whenever candidates are recomputed and only moves forward,
//     wrapping at the end.
//   - Committer: resolves the highlighted name to its content, writes it to a
//     ClipboardSink and waits a short delay so the clipboard consumer can
//     read the value before the process exits.
//   - Controller: applies one Batch of input per tick in a fixed priority
//     and produces a RenderModel for the UI surface.
//
// # Tick Priority
//
// Within a single batch the controller evaluates:
//
//  1. Cancel: terminate without copying
//  2. Cycle: advance the highlight
//  3. Commit: copy and terminate
//  4. Query change: refilter and reset the highlight
//
// Once terminating the controller ignores further input and Render reports
// false.
//
// # Rendering Independence
//
// Nothing here knows about terminals. The UI surface translates key presses
// into Events and draws RenderModel values, so the whole engine can be
// exercised headlessly.
package picker
