package picker

import "strings"

// Filter returns the names whose lowercase form contains the lowercase query,
// in the order given. An empty query matches nothing.
func Filter(names []string, query string) []string {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var out []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
		}
	}
	return out
}
