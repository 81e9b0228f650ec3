// Package config loads amenu's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided (the -config flag), use it
//  2. Otherwise, use ~/.config/amenu/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but a key is missing or blank, use its default
//
// A file that exists but cannot be parsed is an error. amenu refuses to
// start rather than silently ignoring a typo in the operator's settings.
//
// # Keys
//
//	entries_file    = "~/notes/prompts"   # default "prompts" in the working dir
//	commit_delay_ms = 200                 # pause after copying; 0 disables
//	clipboard       = "auto"              # auto | system | osc52
//	log_file        = "~/.local/state/amenu/amenu.log"
//	log_level       = "info"              # debug | info | warn | error
//	alt_screen      = true
//	show_help       = true
//
// A negative commit_delay_ms keeps the default. Paths starting with "~/"
// are expanded against the home directory and made absolute.
//
// # Entry Source
//
// EntriesPath applies the entry source precedence: the positional argument
// given on the command line, then entries_file, then "prompts".
package config
