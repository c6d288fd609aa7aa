// Package render turns item records into presentation-neutral view models.
// The terminal and desktop front ends draw these values; they never read
// item records directly.
package render

import "dexview/pkg/types"

// Badge is one colored category label
type Badge struct {
	Name  string
	Color string
}

// Card is the summary view of one item
type Card struct {
	Item   *types.Item
	Label  string
	Name   string
	Image  string
	Badges []Badge
}

// Badges builds one badge per category, in order
func Badges(item *types.Item) []Badge {
	badges := make([]Badge, len(item.Categories))
	for i, c := range item.Categories {
		badges[i] = Badge{Name: c.Name, Color: CategoryColor(c.Name)}
	}
	return badges
}

// NewCard builds the summary view of item
func NewCard(item *types.Item) Card {
	return Card{
		Item:   item,
		Label:  IDLabel(item.ID),
		Name:   item.Name,
		Image:  item.Sprites.Default,
		Badges: Badges(item),
	}
}

// Cards drops absent results and builds one card per remaining item,
// keeping the order the results arrived in.
func Cards(results []*types.Item) []Card {
	cards := make([]Card, 0, len(results))
	for _, item := range results {
		if item == nil {
			continue
		}
		cards = append(cards, NewCard(item))
	}
	return cards
}
