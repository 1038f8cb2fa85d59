package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectfour/internal/variant"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenResults
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Theme          Theme
	Store          ResultStore // optional
	Logger         *log.Logger
	DefaultVariant string
	ScreenshotDir  string
	Width          int
	Height         int
}

// SessionModel manages the full session flow: menu -> game -> menu, with the
// results screen reachable from the menu. Used for the local menu command and
// for every SSH session.
type SessionModel struct {
	opts     SessionOptions
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	results  *ResultsModel
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.DefaultVariant == "" {
		opts.DefaultVariant = variant.Default
	}
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Theme, opts.DefaultVariant, opts.Width, opts.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenResults:
		return m.updateResults(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsResults() {
		results := NewResultsModel(m.opts.Store, m.opts.Theme, m.menu.Current().ID, m.opts.Width, m.opts.Height)
		m.results = &results
		m.screen = screenResults
		return m, m.results.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game := NewGameModel(GameOptions{
			Variant:       *selected,
			Theme:         m.opts.Theme,
			Store:         m.opts.Store,
			Logger:        m.opts.Logger,
			ScreenshotDir: m.opts.ScreenshotDir,
			Width:         m.opts.Width,
			Height:        m.opts.Height,
		})
		m.game = &game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.backToMenu(m.game.opts.Variant.ID)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateResults handles updates when showing results.
func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.results.Update(msg)
	if resultsModel, ok := newModel.(ResultsModel); ok {
		m.results = &resultsModel
	}

	if m.results.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.results.IsGoingBack() {
		m.backToMenu(m.results.Current().ID)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m *SessionModel) backToMenu(current string) {
	m.game = nil
	m.results = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Theme, current, m.opts.Width, m.opts.Height)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenResults:
		return m.results.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is being played.
func (m SessionModel) InGame() bool {
	return m.screen == screenGame
}

// RunSession runs the menu, game and results screens in the local terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
