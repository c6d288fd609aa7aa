package types

// Reference is a lightweight pointer to one Item, as returned by a listing page
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListingPage is one page of the remote collection. Next and Previous are
// opaque cursor URLs; an empty string means there is no page in that direction.
type ListingPage struct {
	Count      int         `json:"count"`
	Next       string      `json:"next,omitempty"`
	Previous   string      `json:"previous,omitempty"`
	References []Reference `json:"results"`
}

// HasNext reports whether a next cursor is present
func (p *ListingPage) HasNext() bool {
	return p != nil && p.Next != ""
}

// HasPrevious reports whether a previous cursor is present
func (p *ListingPage) HasPrevious() bool {
	return p != nil && p.Previous != ""
}
