// Package app is the composition root for amenu.
//
// # Overview
//
// Run wires configuration, logging, the entry store, the clipboard sink and
// the picker controller together, then hands the controller to the UI and
// blocks until the picker terminates.
//
// # Startup Sequence
//
//  1. Load ~/.config/amenu/config.toml (or -config); missing means defaults
//  2. Open the log file at the configured level (-debug forces debug)
//  3. Load entries from the positional argument, entries_file, or "prompts"
//  4. Acquire the clipboard sink once for the process lifetime
//  5. Read the saved theme from prefs.toml
//  6. Run the UI until commit, cancel or context cancellation
//
// # Error Handling
//
// Run returns an error only for setup failures:
//
//   - a config file that exists but does not parse, or names an unknown
//     log level
//   - an unknown clipboard backend name
//   - a Bubble Tea runtime failure
//
// Everything else degrades. An unreadable entry file gives an empty picker.
// A log file that cannot be opened disables logging with a note on stderr.
// A system clipboard that is not installed leaves the picker running with
// no sink. A clipboard write that fails after a commit is reported on
// stderr once the UI has released the terminal, and Run still returns nil.
package app
