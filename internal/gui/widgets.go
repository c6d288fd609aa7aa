//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"
	"image/color"

	"dexview/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// tapArea makes any content tappable
type tapArea struct {
	widget.BaseWidget
	content fyne.CanvasObject
	onTap   func()
}

func newTapArea(content fyne.CanvasObject, onTap func()) *tapArea {
	t := &tapArea{content: content, onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

// Tapped implements fyne.Tappable
func (t *tapArea) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

// parseHexColor reads #rrggbb, falling back to grey
func parseHexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func newBadge(b render.Badge) fyne.CanvasObject {
	bg := canvas.NewRectangle(parseHexColor(b.Color))
	bg.CornerRadius = 6
	text := canvas.NewText(b.Name, color.White)
	text.TextStyle.Bold = true
	text.TextSize = 12
	return container.NewStack(bg, container.NewPadded(text))
}

func newBadgeRow(badges []render.Badge) *fyne.Container {
	row := container.NewHBox()
	for _, b := range badges {
		row.Add(newBadge(b))
	}
	return row
}
