package catalog

import (
	"dexview/pkg/types"
)

// listingPayload mirrors the listing endpoint's response body
type listingPayload struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

// itemPayload mirrors the point-lookup endpoint's response body,
// keeping only the fields the viewer shows
type itemPayload struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

func (p *listingPayload) toPage() *types.ListingPage {
	page := &types.ListingPage{
		Count:      p.Count,
		Next:       deref(p.Next),
		Previous:   deref(p.Previous),
		References: make([]types.Reference, len(p.Results)),
	}
	for i, r := range p.Results {
		page.References[i] = types.Reference{Name: r.Name, URL: r.URL}
	}
	return page
}

func (p *itemPayload) toItem() *types.Item {
	item := &types.Item{
		ID:         p.ID,
		Name:       p.Name,
		Height:     p.Height,
		Weight:     p.Weight,
		Categories: make([]types.Category, len(p.Types)),
		Sprites: types.Sprites{
			Default: deref(p.Sprites.FrontDefault),
			Artwork: deref(p.Sprites.Other.OfficialArtwork.FrontDefault),
		},
	}
	for i, t := range p.Types {
		item.Categories[i] = types.Category{Name: t.Type.Name}
	}
	return item
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
