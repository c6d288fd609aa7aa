package components

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"dexview/internal/errors"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
)

const opaque = 128

// SpriteArt decodes an image and draws it with half-block characters,
// two pixel rows per terminal line. Transparent margins are cropped first.
func SpriteArt(data []byte, width int) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "failed to decode sprite")
	}
	if width <= 0 {
		width = 32
	}

	img = imaging.Crop(img, visibleBounds(img))
	if img.Bounds().Dx() > width {
		img = imaging.Resize(img, width, 0, imaging.NearestNeighbor)
	}
	pix := imaging.Clone(img)

	b := pix.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := pix.NRGBAAt(x, y)
			bottom := color.NRGBA{}
			if y+1 < b.Max.Y {
				bottom = pix.NRGBAAt(x, y+1)
			}
			sb.WriteString(cell(top, bottom))
		}
	}
	return sb.String(), nil
}

func cell(top, bottom color.NRGBA) string {
	topOn, bottomOn := top.A >= opaque, bottom.A >= opaque
	switch {
	case topOn && bottomOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render("▀")
	case topOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Render("▀")
	case bottomOn:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render("▄")
	default:
		return " "
	}
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// visibleBounds is the smallest rectangle holding every opaque pixel
func visibleBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a>>8 < opaque {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x+1), max(maxY, y+1)
		}
	}
	if minX >= maxX || minY >= maxY {
		return b
	}
	return image.Rect(minX, minY, maxX, maxY)
}
