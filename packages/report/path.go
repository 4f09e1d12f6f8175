package report

import "strings"

// Path is the ordered list of labels naming a value under test, eg. the root
// name followed by "[3]" and ".size". Paths are never mutated once built;
// Append always returns a fresh copy so sibling derivations cannot share
// storage.
type Path []string

// Root returns the path of a top-level value. An empty name gives an empty
// path.
func Root(name string) Path {
	if name == "" {
		return nil
	}
	return Path{name}
}

// Append returns a new path with label added to the end.
func (p Path) Append(label string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, label)
}

// String joins the labels. A leading "." is dropped so that a property of an
// unnamed value reads "size" rather than ".size".
func (p Path) String() string {
	return strings.TrimPrefix(strings.Join(p, ""), ".")
}

// FormatName returns the name as it appears after "expected" in a message.
// Names are bracketed, except names which already start with an index.
func FormatName(p Path) string {
	name := p.String()
	switch {
	case name == "":
		return ""
	case strings.HasPrefix(name, "["):
		return " " + name
	default:
		return " [" + name + "]"
	}
}
