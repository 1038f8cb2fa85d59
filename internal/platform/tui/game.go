package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectfour/internal/connectfour"
	"github.com/vovakirdan/connectfour/internal/core"
	"github.com/vovakirdan/connectfour/internal/storage"
	"github.com/vovakirdan/connectfour/internal/variant"
)

// ResultStore is the storage used by the terminal front end.
// *storage.Store implements it.
type ResultStore interface {
	storage.ResultSaver
	ResultsByVariant(variantID string, limit int) ([]storage.Result, error)
	Stats(variantID string) (*storage.Stats, error)
}

var _ ResultStore = (*storage.Store)(nil)

// GameOptions configures a GameModel.
type GameOptions struct {
	Variant variant.Variant
	Theme   Theme
	Store   ResultStore // optional; finished games are not recorded when nil
	Logger  *log.Logger // optional; defaults to log.Default()

	// ScreenshotDir receives ctrl+s captures. Screenshots are disabled when empty.
	ScreenshotDir string

	Width  int
	Height int
}

// boardFeed is shared between a GameModel and its board observer.
// The observer marks the frame stale; View re-renders only then.
type boardFeed struct {
	stale bool
	frame string
}

func (f *boardFeed) observe(connectfour.View) {
	f.stale = true
}

// GameModel is the Bubble Tea model for one hot-seat game.
type GameModel struct {
	opts      GameOptions
	board     *connectfour.Board
	recorder  *storage.Recorder
	feed      *boardFeed
	screen    *core.Screen
	keyMapper *KeyMapper
	help      help.Model
	cursor    int
	message   string
	quitting  bool
	back      bool

	standalone bool // no menu to return to: back quits
}

// NewGameModel creates a game model with a fresh board.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	m := GameModel{
		opts:      opts,
		feed:      &boardFeed{},
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	m.help.Width = opts.Width
	m.screen = core.NewScreen(opts.Width, m.boardHeight())
	m.newGame()
	return m
}

// newGame replaces the board with an empty one and subscribes the observers.
func (m *GameModel) newGame() {
	m.board = m.opts.Variant.NewBoard()
	m.cursor = m.board.Cols() / 2
	m.message = ""

	m.board.Subscribe(m.feed.observe)
	m.board.Subscribe(NewMoveLogger(m.opts.Logger, m.opts.Variant.ID).Observe)

	m.recorder = nil
	if m.opts.Store != nil {
		m.recorder = storage.NewRecorder(m.opts.Store, m.opts.Variant.ID,
			m.opts.Theme.PlayerOne.Name, m.opts.Theme.PlayerTwo.Name, m.opts.Logger)
		m.board.Subscribe(m.recorder.Observe)
	}

	m.feed.stale = true
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		m.opts.Height = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.boardHeight())
		m.feed.stale = true
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keyMapper.MapKey(msg)

	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.back = true
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case core.ActionLeft:
		m.cursor = core.Max(0, m.cursor-1)

	case core.ActionRight:
		m.cursor = core.Min(m.board.Cols()-1, m.cursor+1)

	case core.ActionDrop:
		m.drop(m.cursor)

	case core.ActionSelectColumn:
		m.drop(in.Column)

	case core.ActionNewGame:
		m.newGame()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.opts.Width, m.boardHeight())

	case core.ActionScreenshot:
		m.saveScreenshot()

	default:
		return m, nil
	}

	m.feed.stale = true
	return m, nil
}

// drop applies a move into column and reports rejections in the message line.
func (m *GameModel) drop(column int) {
	if err := m.board.ApplyMove(column); err != nil {
		m.message = moveErrorText(err, column, m.board.Cols())
		return
	}

	if column >= 0 && column < m.board.Cols() {
		m.cursor = column
	}
	m.message = ""

	if m.board.Status().IsOver() {
		m.message = "Press n for a new game or esc for the menu."
		if m.recorder != nil && m.recorder.Err() != nil {
			m.message = "Result not saved: " + m.recorder.Err().Error()
		}
	}
}

func moveErrorText(err error, column, cols int) string {
	switch {
	case errors.Is(err, connectfour.ErrInvalidColumn):
		return fmt.Sprintf("There is no column %d on this board (1-%d).", column+1, cols)
	case errors.Is(err, connectfour.ErrColumnFull):
		return fmt.Sprintf("Column %d is full.", column+1)
	case errors.Is(err, connectfour.ErrGameOver):
		return "The game is over. Press n for a new game."
	}
	return err.Error()
}

// boardHeight is the window height left for the board after the help lines.
func (m GameModel) boardHeight() int {
	helpLines := 1
	if m.help.ShowAll {
		helpLines = 4
	}
	return core.Max(1, m.opts.Height-helpLines)
}

// render draws the board and message into the screen buffer.
func (m GameModel) render() {
	m.screen.Clear()
	layout := DrawBoard(m.screen, m.board, m.cursor, m.opts.Theme)
	if m.message != "" {
		m.screen.DrawTextCenteredColored(layout.Message, m.message, m.opts.Theme.Message)
	}
}

// saveScreenshot writes the current board as plain text.
func (m *GameModel) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		m.message = "Screenshots are disabled."
		return
	}

	m.render()
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.message = "Screenshot failed: " + err.Error()
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("connectfour_%s_%s.txt", m.opts.Variant.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.message = "Screenshot failed: " + err.Error()
		return
	}
	m.message = "Screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.feed.stale {
		m.render()
		m.feed.frame = RenderScreen(m.screen) + "\n" +
			m.opts.Theme.HelpText.Render(m.help.View(m.keyMapper.Keys()))
		m.feed.stale = false
	}
	return m.feed.frame
}

// Board returns the board of the current game.
func (m GameModel) Board() *connectfour.Board {
	return m.board
}

// Cursor returns the column under the cursor.
func (m GameModel) Cursor() int {
	return m.cursor
}

// Message returns the current feedback line.
func (m GameModel) Message() string {
	return m.message
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// Run starts a single game in the terminal.
func Run(opts GameOptions) error {
	model := NewGameModel(opts)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
