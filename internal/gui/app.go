//go:build !nogui
// +build !nogui

package gui

import (
	"context"
	"image/color"
	"path"

	"dexview/internal/config"
	"dexview/internal/log"
	"dexview/internal/render"
	"dexview/internal/viewer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	cardSize   = fyne.NewSize(170, 230)
	spriteSize = fyne.NewSize(96, 96)
	detailSize = fyne.NewSize(240, 240)
	scrimColor = color.NRGBA{A: 0xa0}
)

// App is the GUI application
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config

	ctx    context.Context
	source viewer.Source
	ctrl   *viewer.Controller

	// Run fetches in the background; tests turn this off
	async bool

	search    *widget.Entry
	searchBtn *widget.Button
	status    *widget.Label
	grid      *fyne.Container
	cards     []*tapArea
	prev      *widget.Button
	next      *widget.Button
	pager     *fyne.Container

	overlay      *fyne.Container
	shownGen     uint64
	scrim        *tapArea
	panel        *tapArea
	detailTitle  *widget.Label
	detailImage  *canvas.Image
	detailBadges *fyne.Container
	detailHeight *widget.Label
	detailWeight *widget.Label
	closeBtn     *widget.Button
}

// NewApp creates a new GUI application
func NewApp(ctx context.Context, source viewer.Source, cfg *config.Config) *App {
	return newApp(app.NewWithID("io.github.dexview"), ctx, source, cfg, true)
}

func newApp(fyneApp fyne.App, ctx context.Context, source viewer.Source, cfg *config.Config, async bool) *App {
	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		ctx:     ctx,
		source:  source,
		ctrl:    viewer.New(source),
		async:   async,
	}
	a.window = fyneApp.NewWindow("dexview")
	a.setupMainWindow()
	return a
}

// Run starts the desktop viewer and blocks until the window closes
func Run(ctx context.Context, source viewer.Source, cfg *config.Config) error {
	NewApp(ctx, source, cfg).Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}

// Run shows the window and blocks until it closes
func (a *App) Run() {
	a.start()
	a.window.ShowAndRun()
}

func (a *App) start() {
	a.perform(a.ctrl.Start())
}

// setupMainWindow builds the window content: search row, status, card
// grid and pager, with the detail overlay stacked above everything
func (a *App) setupMainWindow() {
	a.search = widget.NewEntry()
	a.search.SetPlaceHolder("Search by name or ID")
	a.search.OnSubmitted = func(string) { a.submitSearch() }
	a.searchBtn = widget.NewButtonWithIcon("Search", theme.SearchIcon(), a.submitSearch)

	a.status = widget.NewLabel("")
	a.status.Wrapping = fyne.TextWrapWord
	a.status.Hide()

	a.grid = container.NewGridWrap(cardSize)

	a.prev = widget.NewButtonWithIcon("Previous", theme.NavigateBackIcon(), func() {
		if req, ok := a.ctrl.Backward(); ok {
			a.perform(req)
		}
	})
	a.next = widget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), func() {
		if req, ok := a.ctrl.Forward(); ok {
			a.perform(req)
		}
	})
	a.pager = container.NewHBox(layout.NewSpacer(), a.prev, a.next, layout.NewSpacer())
	a.pager.Hide()

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, a.searchBtn, a.search),
		a.status,
	)
	content := container.NewBorder(top, a.pager, nil, nil, container.NewVScroll(a.grid))

	a.setupOverlay()

	a.window.SetContent(container.NewStack(content, a.overlay))
	a.window.Resize(fyne.NewSize(900, 700))
	a.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			a.closeDetail()
		}
	})
}

func (a *App) setupOverlay() {
	a.detailTitle = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	a.detailImage = canvas.NewImageFromResource(nil)
	a.detailImage.FillMode = canvas.ImageFillContain
	a.detailImage.ScaleMode = canvas.ImageScalePixels
	a.detailImage.SetMinSize(detailSize)
	a.detailBadges = container.NewHBox()
	a.detailHeight = widget.NewLabel("")
	a.detailWeight = widget.NewLabel("")
	a.closeBtn = widget.NewButtonWithIcon("", theme.CancelIcon(), a.closeDetail)

	body := container.NewVBox(
		container.NewBorder(nil, nil, nil, a.closeBtn, a.detailTitle),
		a.detailImage,
		a.detailBadges,
		a.detailHeight,
		a.detailWeight,
	)
	background := canvas.NewRectangle(theme.BackgroundColor())
	background.CornerRadius = 8

	// Taps on the panel are swallowed so they never reach the scrim
	a.panel = newTapArea(container.NewStack(background, container.NewPadded(body)), func() {
		a.ctrl.DismissOverlay(false)
	})
	a.scrim = newTapArea(canvas.NewRectangle(scrimColor), func() {
		if a.ctrl.DismissOverlay(true) {
			a.refreshOverlay()
		}
	})

	a.overlay = container.NewStack(a.scrim, container.NewCenter(a.panel))
	a.overlay.Hide()
}

func (a *App) submitSearch() {
	a.perform(a.ctrl.Search(a.search.Text))
}

// perform shows the pending state of req, then runs it and shows the result
func (a *App) perform(req viewer.Request) {
	a.refresh()
	work := func() {
		if a.ctrl.Do(a.ctx, req) {
			a.refresh()
		}
	}
	if a.async {
		go work()
		return
	}
	work()
}

func (a *App) refresh() {
	s := a.ctrl.Screen()
	a.refreshStatus(s.Status)
	a.refreshGrid(s.Cards)
	a.refreshPager(s.Pagination)
	a.refreshOverlay()
}

func (a *App) refreshStatus(st viewer.Status) {
	if !st.Visible() {
		a.status.Hide()
		return
	}
	a.status.Importance = widget.MediumImportance
	if st.IsError() {
		a.status.Importance = widget.DangerImportance
	}
	a.status.SetText(st.Text)
	a.status.Show()
}

func (a *App) refreshGrid(cards []render.Card) {
	a.cards = make([]*tapArea, len(cards))
	objects := make([]fyne.CanvasObject, len(cards))
	for i, card := range cards {
		a.cards[i] = a.newCard(i, card)
		objects[i] = a.cards[i]
	}
	a.grid.Objects = objects
	a.grid.Refresh()
}

func (a *App) refreshPager(p viewer.Pagination) {
	if !p.Visible {
		a.pager.Hide()
		return
	}
	setEnabled(a.prev, p.CanBackward)
	setEnabled(a.next, p.CanForward)
	a.pager.Show()
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
		return
	}
	b.Disable()
}

func (a *App) newCard(index int, card render.Card) *tapArea {
	img := canvas.NewImageFromResource(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(spriteSize)
	a.loadImage(card.Image, func(res fyne.Resource) {
		img.Resource = res
		img.Refresh()
	})

	label := widget.NewLabel(card.Label)
	name := widget.NewLabelWithStyle(card.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	background := canvas.NewRectangle(theme.InputBackgroundColor())
	background.CornerRadius = 8
	body := container.NewVBox(img, label, name, newBadgeRow(card.Badges))

	return newTapArea(container.NewStack(background, container.NewPadded(body)), func() {
		a.openDetail(index)
	})
}

func (a *App) openDetail(index int) {
	ov, ok := a.ctrl.OpenDetail(index)
	if !ok {
		return
	}
	a.refreshOverlay()

	generation := ov.Generation
	a.loadImage(ov.Detail.Image, func(res fyne.Resource) {
		if !a.ctrl.OverlayCurrent(generation) {
			return
		}
		a.detailImage.Resource = res
		a.detailImage.Refresh()
	})
}

func (a *App) closeDetail() {
	a.ctrl.CloseDetail()
	a.refreshOverlay()
}

// refreshOverlay rewrites every overlay field from the current detail so
// nothing of a previously opened item survives
func (a *App) refreshOverlay() {
	ov := a.ctrl.Screen().Overlay
	if !ov.Open {
		a.overlay.Hide()
		return
	}
	d := ov.Detail
	a.detailTitle.SetText(d.Label + "  " + d.Name)
	if ov.Generation != a.shownGen {
		a.shownGen = ov.Generation
		a.detailImage.Resource = nil
		a.detailImage.Refresh()
	}
	a.detailBadges.Objects = newBadgeRow(d.Badges).Objects
	a.detailBadges.Refresh()
	a.detailHeight.SetText("Height: " + d.HeightText())
	a.detailWeight.SetText("Weight: " + d.WeightText())
	a.overlay.Show()
}

// loadImage fetches url and hands the decoded resource to apply. Nothing
// is fetched when sprites are turned off in the config.
func (a *App) loadImage(url string, apply func(fyne.Resource)) {
	if url == "" || !a.cfg.UI.Sprites {
		return
	}
	work := func() {
		data, err := a.source.FetchImage(a.ctx, url)
		if err != nil {
			log.Debugf("Image unavailable %s: %v", url, err)
			return
		}
		apply(fyne.NewStaticResource(path.Base(url), data))
	}
	if a.async {
		go work()
		return
	}
	work()
}
