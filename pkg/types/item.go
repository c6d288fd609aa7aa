package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is one entry of an item's ordered category list
type Category struct {
	Name string `json:"name"`
}

// Sprites holds the image references of an item. Artwork is the optional
// high-resolution image and may be empty.
type Sprites struct {
	Default string `json:"default"`
	Artwork string `json:"artwork,omitempty"`
}

// Item is a single catalog record. Height and Weight are kept in the
// source's subunits (decimetres and hectograms).
type Item struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
	Sprites    Sprites    `json:"sprites"`
	Height     int        `json:"height"`
	Weight     int        `json:"weight"`
}

// CategoryNames returns the category names in order
func (i *Item) CategoryNames() []string {
	names := make([]string, len(i.Categories))
	for idx, c := range i.Categories {
		names[idx] = c.Name
	}
	return names
}

// ToJSON converts Item to JSON string
func (i *Item) ToJSON() string {
	jsonBytes, _ := json.Marshal(i)
	return string(jsonBytes)
}

// String returns a human-readable representation
func (i *Item) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Item: %s (%d)\n", i.Name, i.ID))
	if len(i.Categories) > 0 {
		sb.WriteString(fmt.Sprintf("Categories: %s\n", strings.Join(i.CategoryNames(), ", ")))
	}
	sb.WriteString(fmt.Sprintf("Height: %d\n", i.Height))
	sb.WriteString(fmt.Sprintf("Weight: %d\n", i.Weight))
	return sb.String()
}
