package catalog

import "dexview/pkg/types"

// Cursors tracks the next and previous cursors of the last successful listing
type Cursors struct {
	next     string
	previous string
}

// Update overwrites both cursors from page. Nothing is merged: a cursor
// absent from page clears the stored one.
func (c *Cursors) Update(page *types.ListingPage) {
	if page == nil {
		c.next, c.previous = "", ""
		return
	}
	c.next = page.Next
	c.previous = page.Previous
}

// CanForward reports whether a next cursor is present
func (c *Cursors) CanForward() bool {
	return c.next != ""
}

// CanBackward reports whether a previous cursor is present
func (c *Cursors) CanBackward() bool {
	return c.previous != ""
}

// Next returns the next cursor, empty when absent
func (c *Cursors) Next() string {
	return c.next
}

// Previous returns the previous cursor, empty when absent
func (c *Cursors) Previous() string {
	return c.previous
}
