// Package entries loads the picker's name/content pairs and holds them in an
// immutable Store.
//
// # Source Format
//
// The source is a plain text file with one entry per line:
//
//	Greeting: Hello there
//	Farewell: Goodbye now
//	Url: https://example.com/a:b
//
// Only the first colon separates name from content, so content may contain
// further colons. Both halves are trimmed. Lines without a colon and blank
// lines are ignored.
//
// # Ordering and Duplicates
//
// Names are kept in the order they first appear. When a name repeats, the
// later content replaces the earlier one but the name keeps its original
// position.
//
// # Error Handling
//
// Load never returns a nil store. A missing or unreadable file yields an
// empty store together with the error, so the caller can log it and keep
// going with a picker that simply never matches anything.
package entries
