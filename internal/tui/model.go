package tui

import (
	"context"

	"dexview/internal/config"
	"dexview/internal/log"
	"dexview/internal/tui/components"
	"dexview/internal/tui/messages"
	"dexview/internal/tui/styles"
	"dexview/internal/tui/views"
	"dexview/internal/viewer"
	"dexview/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	spriteWidth   = 40
)

type Model struct {
	ctx    context.Context
	ctrl   *viewer.Controller
	source viewer.Source

	keys   types.KeyMap
	help   help.Model
	search textinput.Model
	status *components.StatusBar
	styles styles.Styles

	sprites bool
	width   int
	height  int

	// Sprite art of the overlay opened with artGen
	art    string
	artGen uint64
}

func New(ctx context.Context, source viewer.Source, cfg *config.Config) *Model {
	st := styles.FromConfig(cfg)

	search := textinput.New()
	search.Placeholder = "Search by name or ID"
	search.Prompt = "/ "
	search.CharLimit = 64

	return &Model{
		ctx:     ctx,
		ctrl:    viewer.New(source),
		source:  source,
		keys:    types.DefaultKeyMap(),
		help:    help.New(),
		search:  search,
		status:  components.NewStatusBar(st),
		styles:  st,
		sprites: cfg.UI.Sprites,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.begin(m.ctrl.Start())
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.search.Width = max(10, msg.Width-10)
		return m, nil
	case messages.ResultMsg:
		m.ctrl.Apply(msg.Result)
		m.syncStatus()
		return m, nil
	case messages.SpriteMsg:
		m.handleSprite(msg)
		return m, nil
	case messages.ConfigUpdateMsg:
		m.applyConfig(msg.Config)
		return m, nil
	case spinner.TickMsg:
		return m, m.status.Update(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// begin syncs the status bar for a request that was just issued and
// returns the command that runs it
func (m *Model) begin(req viewer.Request) tea.Cmd {
	m.syncStatus()
	ctrl, ctx := m.ctrl, m.ctx
	run := func() tea.Msg {
		return messages.ResultMsg{Result: ctrl.Run(ctx, req)}
	}
	return tea.Batch(run, m.status.Tick())
}

func (m *Model) syncStatus() {
	m.status.SetStatus(m.ctrl.Screen().Status)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.search.Focused():
		return m.handleSearchKeys(msg)
	case m.ctrl.Screen().Overlay.Open:
		return m.handleOverlayKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.search.Blur()
		return m, m.begin(m.ctrl.Search(m.search.Value()))
	case key.Matches(msg, m.keys.Cancel):
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleOverlayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.CloseDetail()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Left):
		m.ctrl.MoveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.ctrl.MoveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.ctrl.MoveSelection(-components.Columns(m.width))
	case key.Matches(msg, m.keys.Down):
		m.ctrl.MoveSelection(components.Columns(m.width))
	case key.Matches(msg, m.keys.NextPage):
		if req, ok := m.ctrl.Forward(); ok {
			return m, m.begin(req)
		}
	case key.Matches(msg, m.keys.PrevPage):
		if req, ok := m.ctrl.Backward(); ok {
			return m, m.begin(req)
		}
	case key.Matches(msg, m.keys.Open):
		if ov, ok := m.ctrl.OpenSelected(); ok {
			return m, m.loadSprite(ov)
		}
	}
	return m, nil
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.ctrl.Screen().Overlay.Open {
		if views.OnOverlayClose(m, msg.X, msg.Y) {
			m.ctrl.CloseDetail()
			return m, nil
		}
		m.ctrl.DismissOverlay(!views.InOverlay(m, msg.X, msg.Y))
		return m, nil
	}

	index, ok := views.CardAt(m, msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.search.Blur()
	m.ctrl.Select(index)
	if ov, ok := m.ctrl.OpenDetail(index); ok {
		return m, m.loadSprite(ov)
	}
	return m, nil
}

func (m *Model) loadSprite(ov viewer.Overlay) tea.Cmd {
	if !m.sprites || ov.Detail.Image == "" {
		return nil
	}
	source, ctx, url := m.source, m.ctx, ov.Detail.Image
	return func() tea.Msg {
		data, err := source.FetchImage(ctx, url)
		if err != nil {
			return messages.SpriteMsg{Generation: ov.Generation, Err: err}
		}
		art, err := components.SpriteArt(data, spriteWidth)
		return messages.SpriteMsg{Generation: ov.Generation, Art: art, Err: err}
	}
}

func (m *Model) handleSprite(msg messages.SpriteMsg) {
	if msg.Err != nil {
		log.Debugf("Sprite unavailable: %v", msg.Err)
		return
	}
	if !m.ctrl.OverlayCurrent(msg.Generation) {
		return
	}
	m.art, m.artGen = msg.Art, msg.Generation
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.styles = styles.FromConfig(cfg)
	m.status.SetStyles(m.styles)
	m.sprites = cfg.UI.Sprites
	log.Debugf("Applied theme %s", cfg.Theme.Name)
}

// Controller exposes the controller driving this model
func (m *Model) Controller() *viewer.Controller {
	return m.ctrl
}

// Screen implements common.ModelReader
func (m *Model) Screen() viewer.Screen {
	return m.ctrl.Screen()
}

// Styles implements common.ModelReader
func (m *Model) Styles() styles.Styles {
	return m.styles
}

// SearchView implements common.ModelReader
func (m *Model) SearchView() string {
	return m.search.View()
}

// StatusView implements common.ModelReader
func (m *Model) StatusView() string {
	return m.status.View()
}

// HelpView implements common.ModelReader
func (m *Model) HelpView() string {
	return m.help.View(m.keys)
}

// SpriteArt implements common.ModelReader
func (m *Model) SpriteArt(generation uint64) string {
	if generation == 0 || generation != m.artGen {
		return ""
	}
	return m.art
}

// Size implements common.ModelReader
func (m *Model) Size() (int, int) {
	return m.width, m.height
}
