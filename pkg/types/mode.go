package types

// Mode is the application mode: exactly one of Listing or Searching.
// The zero value is Listing at the default cursor.
type Mode struct {
	searching bool
	cursor    string
	query     string
}

// Listing returns the listing mode positioned at cursor
func Listing(cursor string) Mode {
	return Mode{cursor: cursor}
}

// Searching returns the searching mode for a normalized query
func Searching(query string) Mode {
	return Mode{searching: true, query: query}
}

// IsListing reports whether the mode is Listing
func (m Mode) IsListing() bool {
	return !m.searching
}

// IsSearching reports whether the mode is Searching
func (m Mode) IsSearching() bool {
	return m.searching
}

// Cursor returns the listing cursor, empty while searching
func (m Mode) Cursor() string {
	return m.cursor
}

// Query returns the search query, empty while listing
func (m Mode) Query() string {
	return m.query
}

func (m Mode) String() string {
	if m.searching {
		return "searching"
	}
	return "listing"
}
