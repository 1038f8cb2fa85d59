package tui

import (
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectfour/internal/config"
	"github.com/vovakirdan/connectfour/internal/connectfour"
	"github.com/vovakirdan/connectfour/internal/core"
)

// PlayerStyle is how one player's discs and name are shown.
type PlayerStyle struct {
	Name  string
	Glyph rune
	Color core.Color
}

// Theme contains all configurable visual styles.
type Theme struct {
	PlayerOne PlayerStyle
	PlayerTwo PlayerStyle

	// Board colors
	Frame     core.Color
	EmptyCell core.Color
	Labels    core.Color
	Status    core.Color
	Message   core.Color

	EmptyGlyph  rune
	CursorGlyph rune
	WinGlyph    rune // replaces the disc glyph on the winning line

	// Menu and results styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	HelpText        lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		PlayerOne: PlayerStyle{Name: "Player One", Glyph: '●', Color: core.ColorBrightRed},
		PlayerTwo: PlayerStyle{Name: "Player Two", Glyph: '●', Color: core.ColorBrightYellow},

		Frame:     core.ColorBlue,
		EmptyCell: core.ColorGray,
		Labels:    core.ColorGray,
		Status:    core.ColorBrightWhite,
		Message:   core.ColorOrange,

		EmptyGlyph:  '·',
		CursorGlyph: '▼',
		WinGlyph:    '◆',

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HelpText:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ThemeFromConfig applies the configured player names, glyphs and colors to
// the default theme. Invalid values keep the defaults; config.Validate reports them.
func ThemeFromConfig(players config.PlayersConfig) Theme {
	theme := DefaultTheme()
	applyPlayer(&theme.PlayerOne, players.One)
	applyPlayer(&theme.PlayerTwo, players.Two)
	return theme
}

func applyPlayer(dst *PlayerStyle, cfg config.PlayerConfig) {
	if cfg.Name != "" {
		dst.Name = cfg.Name
	}
	if utf8.RuneCountInString(cfg.Glyph) == 1 {
		r, _ := utf8.DecodeRuneInString(cfg.Glyph)
		dst.Glyph = r
	}
	if c, ok := core.ParseColor(cfg.Color); ok {
		dst.Color = c
	}
}

// Player returns the style of p.
func (t Theme) Player(p connectfour.PlayerID) PlayerStyle {
	if p == connectfour.PlayerTwo {
		return t.PlayerTwo
	}
	return t.PlayerOne
}

// StatusText describes s using the theme's player names.
func (t Theme) StatusText(s connectfour.Status) string {
	if w, ok := s.Winner(); ok {
		return "won by " + t.Player(w).Name
	}
	return s.Kind().String()
}
