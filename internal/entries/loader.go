package entries

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineBytes = 1024 * 1024

// Load reads the entry source at path. It always returns a usable store: when
// the file cannot be read the store is empty and the error says why.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("open entries: %w", err)
	}
	defer func() { _ = file.Close() }()

	store, err := Parse(file)
	if err != nil {
		return Empty(), err
	}
	return store, nil
}

// Parse reads name:content lines from r. Each line is split on its first
// colon and both halves are trimmed. Lines without a colon, blank lines and
// lines with an empty name are skipped.
func Parse(r io.Reader) (*Store, error) {
	var items []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		entry, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		items = append(items, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return New(items), nil
}

func parseLine(line string) (Entry, bool) {
	name, content, found := strings.Cut(line, ":")
	if !found {
		return Entry{}, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, false
	}
	return Entry{Name: name, Content: strings.TrimSpace(content)}, true
}
