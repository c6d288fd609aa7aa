// Package viewer holds the application controller shared by every front end.
// It owns the mode, the cursors and the visible screen state; front ends
// turn user input into controller calls and draw Screen snapshots.
package viewer

import (
	"context"
	"strings"
	"sync"

	"dexview/internal/catalog"
	"dexview/internal/log"
	"dexview/internal/render"
	"dexview/pkg/types"
)

// Catalog is the remote resource the controller reads from
type Catalog interface {
	DefaultListingURL() string
	FetchListing(ctx context.Context, cursorURL string) (*types.ListingPage, error)
	FetchItems(ctx context.Context, refs []types.Reference) []*types.Item
	FetchItemByQuery(ctx context.Context, nameOrID string) *types.Item
}

// Source is a Catalog that also serves sprite images to the front ends
type Source interface {
	Catalog
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

type requestKind int

const (
	listingRequest requestKind = iota
	searchRequest
)

// Request is one pending catalog read, created by a begin operation
type Request struct {
	seq    uint64
	kind   requestKind
	cursor string
	query  string
}

// Seq is the sequence number the request was issued with
func (r Request) Seq() uint64 { return r.seq }

// IsSearch reports whether this is a point lookup
func (r Request) IsSearch() bool { return r.kind == searchRequest }

// Cursor is the listing URL for listing requests
func (r Request) Cursor() string { return r.cursor }

// Query is the normalized query for search requests
func (r Request) Query() string { return r.query }

// Result is the outcome of running a Request
type Result struct {
	req   Request
	page  *types.ListingPage
	items []*types.Item
	item  *types.Item
	err   error
}

// Request returns the request this result answers
func (r Result) Request() Request { return r.req }

// Err is the listing failure, if any. Point lookups never carry an error.
func (r Result) Err() error { return r.err }

// Controller is the application controller
type Controller struct {
	mu      sync.Mutex
	catalog Catalog

	mode    types.Mode
	cursors catalog.Cursors
	active  string // cursor of the last listing that loaded
	seq     uint64

	status     Status
	cards      []render.Card
	pagination bool
	overlay    Overlay
	selected   int
}

// New creates a controller in Listing mode at the default cursor
func New(c Catalog) *Controller {
	return &Controller{
		catalog: c,
		mode:    types.Listing(c.DefaultListingURL()),
	}
}

// NormalizeQuery trims and case-folds a raw search input
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Start begins the initial listing fetch at the default cursor
func (c *Controller) Start() Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beginListing(c.catalog.DefaultListingURL())
}

// Forward begins fetching the next page. It reports false, and does
// nothing, unless pagination is shown and a next cursor exists.
func (c *Controller) Forward() (Request, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pagination || !c.cursors.CanForward() {
		return Request{}, false
	}
	return c.beginListing(c.cursors.Next()), true
}

// Backward begins fetching the previous page, under the same rules as Forward
func (c *Controller) Backward() (Request, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pagination || !c.cursors.CanBackward() {
		return Request{}, false
	}
	return c.beginListing(c.cursors.Previous()), true
}

// Browse begins a listing fetch at an explicit cursor; empty means the default
func (c *Controller) Browse(cursor string) Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cursor == "" {
		cursor = c.catalog.DefaultListingURL()
	}
	return c.beginListing(cursor)
}

// Reload begins a listing fetch at the active cursor
func (c *Controller) Reload() Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beginListing(c.activeCursor())
}

// Search interprets raw input. Empty input leaves Searching mode and
// reloads the listing at the last active cursor; anything else starts a
// point lookup for the normalized query.
func (c *Controller) Search(raw string) Request {
	query := NormalizeQuery(raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	if query == "" {
		return c.beginListing(c.activeCursor())
	}

	c.seq++
	c.mode = types.Searching(query)
	c.pagination = false
	c.cards = nil
	c.selected = 0
	c.status = Status{Kind: StatusSearching, Text: searchingText(query)}
	return Request{seq: c.seq, kind: searchRequest, query: query}
}

func (c *Controller) activeCursor() string {
	if c.active != "" {
		return c.active
	}
	return c.catalog.DefaultListingURL()
}

// beginListing must be called with mu held
func (c *Controller) beginListing(cursor string) Request {
	c.seq++
	c.mode = types.Listing(cursor)
	c.pagination = false
	c.cards = nil
	c.selected = 0
	c.status = Status{Kind: StatusLoading, Text: loadingText}
	return Request{seq: c.seq, kind: listingRequest, cursor: cursor}
}

// Run performs the network work for req without touching controller
// state. For listings every item of the page is fetched concurrently and
// Run returns only when all of them resolved.
func (c *Controller) Run(ctx context.Context, req Request) Result {
	res := Result{req: req}
	switch req.kind {
	case searchRequest:
		res.item = c.catalog.FetchItemByQuery(ctx, req.query)
	default:
		page, err := c.catalog.FetchListing(ctx, req.cursor)
		if err != nil {
			res.err = err
			return res
		}
		res.page = page
		res.items = c.catalog.FetchItems(ctx, page.References)
	}
	return res
}

// Apply commits a result to the screen. Results of superseded requests
// are dropped and Apply reports false.
func (c *Controller) Apply(res Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res.req.seq != c.seq {
		log.LogWithFields(log.F("seq", res.req.seq), log.F("current", c.seq)).Debug("Dropping stale result")
		return false
	}

	switch res.req.kind {
	case searchRequest:
		c.applySearch(res)
	default:
		c.applyListing(res)
	}
	return true
}

// Do runs req and applies its result
func (c *Controller) Do(ctx context.Context, req Request) bool {
	return c.Apply(c.Run(ctx, req))
}

func (c *Controller) applyListing(res Result) {
	if res.err != nil {
		log.LogError(res.err, "Listing fetch failed")
		c.cards = nil
		c.pagination = false
		c.status = Status{Kind: StatusError, Text: listingFailedText}
		return
	}

	c.cursors.Update(res.page)
	c.active = res.req.cursor
	c.cards = render.Cards(res.items)

	if len(c.cards) == 0 && c.mode.IsListing() {
		c.pagination = false
		c.status = Status{Kind: StatusEmpty, Text: emptyText}
		return
	}
	c.pagination = true
	c.status = Status{}
}

func (c *Controller) applySearch(res Result) {
	if res.item == nil {
		c.cards = nil
		c.status = Status{Kind: StatusNotFound, Text: notFoundText(res.req.query)}
		return
	}
	c.cards = []render.Card{render.NewCard(res.item)}
	c.status = Status{}
}

// OpenDetail opens the overlay for the card at index, replacing whatever
// the overlay showed before
func (c *Controller) OpenDetail(index int) (Overlay, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.cards) {
		return Overlay{}, false
	}
	c.selected = index
	c.overlay = Overlay{
		Open:       true,
		Detail:     render.NewDetail(c.cards[index].Item),
		Generation: c.overlay.Generation + 1,
	}
	return c.overlay, true
}

// OpenSelected opens the overlay for the highlighted card
func (c *Controller) OpenSelected() (Overlay, bool) {
	c.mu.Lock()
	index := c.selected
	c.mu.Unlock()
	return c.OpenDetail(index)
}

// CloseDetail hides the overlay and discards its content
func (c *Controller) CloseDetail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overlay = Overlay{Generation: c.overlay.Generation}
}

// DismissOverlay handles a click on the overlay layer. Only a click that
// landed on the scrim itself closes it; clicks on the content are ignored.
func (c *Controller) DismissOverlay(onScrim bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !onScrim || !c.overlay.Open {
		return false
	}
	c.overlay = Overlay{Generation: c.overlay.Generation}
	return true
}

// OverlayCurrent reports whether generation is the overlay still shown
func (c *Controller) OverlayCurrent(generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.overlay.Open && c.overlay.Generation == generation
}

// Select highlights the card at index, clamped to the visible cards
func (c *Controller) Select(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.cards) == 0 {
		c.selected = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(c.cards) {
		index = len(c.cards) - 1
	}
	c.selected = index
}

// MoveSelection shifts the highlight by delta cards
func (c *Controller) MoveSelection(delta int) {
	c.mu.Lock()
	index := c.selected + delta
	c.mu.Unlock()
	c.Select(index)
}

// Mode returns the current application mode
func (c *Controller) Mode() types.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// ActiveCursor is the listing cursor an empty search returns to
func (c *Controller) ActiveCursor() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeCursor()
}

// Cursors returns the cursors of the last successful listing
func (c *Controller) Cursors() (next, previous string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursors.Next(), c.cursors.Previous()
}

// Screen returns a snapshot of the visible state
func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()

	cards := make([]render.Card, len(c.cards))
	copy(cards, c.cards)

	return Screen{
		Mode:   c.mode,
		Status: c.status,
		Cards:  cards,
		Pagination: Pagination{
			Visible:     c.pagination,
			CanForward:  c.pagination && c.cursors.CanForward(),
			CanBackward: c.pagination && c.cursors.CanBackward(),
		},
		Overlay:  c.overlay,
		Selected: c.selected,
	}
}
