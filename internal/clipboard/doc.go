// Package clipboard provides the sinks that receive committed entry content.
//
// Two backends exist. System shells out to the platform clipboard utility
// through github.com/atotto/clipboard. OSC52 writes an OSC 52 escape
// sequence to the controlling terminal, which lets terminals that support
// it (and tmux with set-clipboard enabled) update the local clipboard even
// from a remote session.
//
// Open picks a backend by name. The default "auto" backend uses the system
// clipboard when a utility is installed and falls back to OSC 52 otherwise.
package clipboard
