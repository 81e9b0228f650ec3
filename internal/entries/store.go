package entries

// Entry is a single name/content pair read from the source file.
type Entry struct {
	Name    string
	Content string
}

// Store holds the loaded entries. It is never mutated after construction.
type Store struct {
	contents map[string]string
	names    []string
}

// New builds a store from entries in order. A repeated name keeps its first
// position and takes the last content.
func New(items []Entry) *Store {
	s := &Store{contents: make(map[string]string, len(items))}
	for _, item := range items {
		if _, seen := s.contents[item.Name]; !seen {
			s.names = append(s.names, item.Name)
		}
		s.contents[item.Name] = item.Content
	}
	return s
}

// Empty returns a store with no entries.
func Empty() *Store {
	return New(nil)
}

// Names returns a copy of all entry names in store order.
func (s *Store) Names() []string {
	if s == nil || len(s.names) == 0 {
		return nil
	}
	dup := make([]string, len(s.names))
	copy(dup, s.names)
	return dup
}

// Content returns the content mapped to name.
func (s *Store) Content(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	content, ok := s.contents[name]
	return content, ok
}

// Len reports the number of distinct entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}
