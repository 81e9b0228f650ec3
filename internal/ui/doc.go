// Package ui is the terminal surface of amenu, built on Bubble Tea.
//
// # Layout
//
// The picker is a single line:
//
//	> gre_      Greeting  green tea  +3
//
// A prompt, the query box (placeholder "Type..." while empty) and one chip
// per candidate. The highlighted chip uses the theme's selection colors and
// the chip tab would move to next is drawn in the accent color. Chips that
// do not fit the terminal width are counted in a trailing "+N". An optional
// footer lists the key bindings.
//
// # Input Mapping
//
// Key presses are translated into picker events:
//
//   - esc, ctrl+c: CancelEvent
//   - tab: CycleEvent
//   - enter: CommitEvent
//   - ctrl+t: cycle the theme and persist it to prefs.toml
//   - anything else edits the query; a QueryChangedEvent is raised only
//     when the text actually changed
//
// Bubble Tea delivers one message per Update, so each key press is its own
// tick for the controller. Once the controller is terminating the model
// returns tea.Quit and draws nothing more. A commit blocks Update for the
// post-write delay, which keeps the process alive long enough for clipboard
// managers to read the new value.
//
// # Themes
//
// Amenu (the default), Nightfox, Kanagawa and Slate. Unknown names fall
// back to Amenu.
//
// # Running
//
// Run wraps tea.NewProgram with the context and alt-screen options and
// returns the controller's Termination. A cancelled context (SIGINT or
// SIGTERM from the command) is reported as a cancel rather than an error.
package ui
