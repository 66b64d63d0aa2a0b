package tui

import (
	"net/url"
	"strings"
)

// location is a client-side route: a path plus its encoded query.
type location struct {
	path  string
	query string
}

// parseLocation accepts "/path?query" or a full URL such as an e-mailed
// reset link; only the path and query are kept.
func parseLocation(raw string) location {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return location{path: raw}
	}
	path := strings.TrimRight(u.Path, "/")
	if path == "" {
		path = "/"
	}
	return location{path: path, query: u.Query().Encode()}
}

func (l location) Param(name string) string {
	values, err := url.ParseQuery(l.query)
	if err != nil {
		return ""
	}
	return values.Get(name)
}

func (l location) String() string {
	if l.query == "" {
		return l.path
	}
	return l.path + "?" + l.query
}
