package render

import "dexview/pkg/types"

// Detail is the expanded view of one item shown in the overlay
type Detail struct {
	ID     int
	Name   string
	Label  string
	Image  string
	Badges []Badge
	Height string // metres, one decimal
	Weight string // kilograms, one decimal
}

// NewDetail builds a fresh detail view. It prefers the high-resolution
// artwork and falls back to the default sprite.
func NewDetail(item *types.Item) Detail {
	image := item.Sprites.Artwork
	if image == "" {
		image = item.Sprites.Default
	}
	return Detail{
		ID:     item.ID,
		Name:   item.Name,
		Label:  IDLabel(item.ID),
		Image:  image,
		Badges: Badges(item),
		Height: Tenths(item.Height),
		Weight: Tenths(item.Weight),
	}
}

// HeightText is the height with its unit
func (d Detail) HeightText() string {
	return d.Height + " m"
}

// WeightText is the weight with its unit
func (d Detail) WeightText() string {
	return d.Weight + " kg"
}
