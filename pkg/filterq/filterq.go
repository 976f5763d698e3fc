// Package filterq parses free-text listing filters. A query like
//
//	assignee:alice state:done crash on login
//
// splits into field tokens (only those the caller allows) and a residual
// text fragment used for title matching.
package filterq

import "strings"

// Query is a parsed filter string.
type Query struct {
	Fields map[string]string
	Text   string
}

// Parse splits raw on whitespace. A word of the form `name:value` whose name
// appears in allowed becomes a field token; the last occurrence of a name
// wins. Anything else, including unknown names, joins the free-text part.
func Parse(raw string, allowed map[string]bool) Query {
	q := Query{Fields: make(map[string]string)}

	var text []string
	for _, word := range strings.Fields(raw) {
		name, value, ok := strings.Cut(word, ":")
		if ok && value != "" && allowed[name] {
			q.Fields[name] = value
			continue
		}
		text = append(text, word)
	}
	q.Text = strings.Join(text, " ")
	return q
}
