//go:build !nogui
// +build !nogui

package gui

import (
	"context"
	"net/http"
	"testing"

	"dexview/internal/catalog"
	"dexview/internal/config"
	"dexview/pkg/testutils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, count int) (*App, *testutils.FakeCatalog) {
	t.Helper()
	f := testutils.NewFakeCatalog(t, count)
	client := catalog.NewClient(catalog.WithBaseURL(f.BaseURL()))
	a := newApp(test.NewApp(), context.Background(), client, config.New(), false)
	t.Cleanup(a.window.Close)
	return a, f
}

func TestAppStartup(t *testing.T) {
	a, _ := newTestApp(t, 45)
	a.start()

	assert.Len(t, a.grid.Objects, 20)
	assert.False(t, a.status.Visible())
	assert.True(t, a.pager.Visible())
	assert.True(t, a.prev.Disabled())
	assert.False(t, a.next.Disabled())
	assert.False(t, a.overlay.Visible())
}

func TestAppPaging(t *testing.T) {
	a, _ := newTestApp(t, 45)
	a.start()

	test.Tap(a.next)
	s := a.ctrl.Screen()
	assert.Equal(t, "mon21", s.Cards[0].Name)
	assert.False(t, a.prev.Disabled())

	test.Tap(a.next)
	assert.Len(t, a.grid.Objects, 5)
	assert.True(t, a.next.Disabled())

	test.Tap(a.prev)
	assert.Equal(t, "mon21", a.ctrl.Screen().Cards[0].Name)
}

func TestAppSearch(t *testing.T) {
	a, _ := newTestApp(t, 45)
	a.start()
	test.Tap(a.next)

	test.Type(a.search, " MON7 ")
	test.Tap(a.searchBtn)

	require.Len(t, a.grid.Objects, 1)
	assert.Equal(t, "#007", a.ctrl.Screen().Cards[0].Label)
	assert.False(t, a.pager.Visible())
	assert.False(t, a.status.Visible())

	a.search.SetText("")
	a.search.OnSubmitted("")
	assert.Len(t, a.grid.Objects, 20)
	assert.Equal(t, "mon21", a.ctrl.Screen().Cards[0].Name)
	assert.True(t, a.pager.Visible())
}

func TestAppSearchNotFound(t *testing.T) {
	a, _ := newTestApp(t, 10)
	a.start()

	a.search.SetText("missingno")
	test.Tap(a.searchBtn)

	assert.Empty(t, a.grid.Objects)
	assert.True(t, a.status.Visible())
	assert.Equal(t, `No item found with name/ID: "missingno".`, a.status.Text)
	assert.Equal(t, widget.MediumImportance, a.status.Importance)
}

func TestAppListingFailure(t *testing.T) {
	a, f := newTestApp(t, 10)
	f.SetListingStatus(http.StatusInternalServerError)
	a.start()

	assert.True(t, a.status.Visible())
	assert.Equal(t, "Failed to load the catalog. Try again later.", a.status.Text)
	assert.Equal(t, widget.DangerImportance, a.status.Importance)
	assert.False(t, a.pager.Visible())
	assert.Empty(t, a.grid.Objects)
}

func TestAppEmptyListing(t *testing.T) {
	a, f := newTestApp(t, 3)
	f.SetMissing("1", "2", "3")
	a.start()

	assert.Equal(t, "No items found.", a.status.Text)
	assert.False(t, a.pager.Visible())
}

func TestAppOverlay(t *testing.T) {
	a, _ := newTestApp(t, 10)
	a.start()

	test.Tap(a.cards[1])
	require.True(t, a.overlay.Visible())
	assert.Equal(t, "#002  mon2", a.detailTitle.Text)
	assert.Equal(t, "Height: 1.4 m", a.detailHeight.Text)
	assert.Equal(t, "Weight: 13.0 kg", a.detailWeight.Text)
	assert.Len(t, a.detailBadges.Objects, 1)
	require.NotNil(t, a.detailImage.Resource)

	test.Tap(a.panel)
	assert.True(t, a.overlay.Visible(), "tap on the content keeps it open")

	test.Tap(a.scrim)
	assert.False(t, a.overlay.Visible(), "tap on the scrim closes it")

	test.Tap(a.cards[2])
	assert.Equal(t, "#003  mon3", a.detailTitle.Text)
	assert.Equal(t, "Height: 2.1 m", a.detailHeight.Text)
	assert.Len(t, a.detailBadges.Objects, 2, "fire and flying replace the previous badge")

	test.Tap(a.closeBtn)
	assert.False(t, a.overlay.Visible())

	test.Tap(a.cards[0])
	require.True(t, a.overlay.Visible())
	a.window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.False(t, a.overlay.Visible())
}

func TestAppSpritesDisabled(t *testing.T) {
	f := testutils.NewFakeCatalog(t, 5)
	cfg := config.New()
	cfg.UI.Sprites = false
	a := newApp(test.NewApp(), context.Background(), catalog.NewClient(catalog.WithBaseURL(f.BaseURL())), cfg, false)
	t.Cleanup(a.window.Close)
	a.start()

	test.Tap(a.cards[0])
	require.True(t, a.overlay.Visible())
	assert.Equal(t, "#001  mon1", a.detailTitle.Text)
	assert.Nil(t, a.detailImage.Resource)
}

func TestParseHexColor(t *testing.T) {
	r, g, b, _ := parseHexColor("#EE8130").RGBA()
	assert.Equal(t, uint32(0xee), r>>8)
	assert.Equal(t, uint32(0x81), g>>8)
	assert.Equal(t, uint32(0x30), b>>8)

	r, _, _, _ = parseHexColor("nope").RGBA()
	assert.Equal(t, uint32(0x66), r>>8)
}
