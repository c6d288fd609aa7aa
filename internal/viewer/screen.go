package viewer

import (
	"dexview/internal/render"
	"dexview/pkg/types"
)

// StatusKind identifies which message the status region shows. The kinds
// are mutually exclusive; setting one replaces the previous message.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusLoading
	StatusSearching
	StatusError
	StatusEmpty
	StatusNotFound
)

const (
	loadingText       = "Loading items..."
	listingFailedText = "Failed to load the catalog. Try again later."
	emptyText         = "No items found."
)

func searchingText(query string) string {
	return `Searching for "` + query + `"...`
}

func notFoundText(query string) string {
	return `No item found with name/ID: "` + query + `".`
}

// Status is the content of the status region
type Status struct {
	Kind StatusKind
	Text string
}

// Visible reports whether there is a message to show
func (s Status) Visible() bool {
	return s.Kind != StatusNone
}

// IsError reports whether the message should be error styled
func (s Status) IsError() bool {
	return s.Kind == StatusError
}

// Busy reports whether a request is in flight for the shown status
func (s Status) Busy() bool {
	return s.Kind == StatusLoading || s.Kind == StatusSearching
}

// Pagination describes the previous/next controls
type Pagination struct {
	Visible     bool
	CanForward  bool
	CanBackward bool
}

// Overlay is the detail overlay. Generation increases on every open so
// late decorations for an older overlay can be recognised and dropped.
type Overlay struct {
	Open       bool
	Detail     render.Detail
	Generation uint64
}

// Screen is an immutable snapshot of everything a front end draws
type Screen struct {
	Mode       types.Mode
	Status     Status
	Cards      []render.Card
	Pagination Pagination
	Overlay    Overlay
	Selected   int
}

// SelectedCard returns the highlighted card, if any
func (s Screen) SelectedCard() (render.Card, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Cards) {
		return render.Card{}, false
	}
	return s.Cards[s.Selected], true
}
