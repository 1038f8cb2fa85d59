package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectfour/internal/connectfour"
	"github.com/vovakirdan/connectfour/internal/core"
)

var (
	colorStyles   = map[core.Color]lipgloss.Style{}
	colorStylesMu sync.Mutex
)

// styleFor returns the lipgloss style for a screen color.
func styleFor(c core.Color) lipgloss.Style {
	colorStylesMu.Lock()
	defer colorStylesMu.Unlock()

	style, ok := colorStyles[c]
	if !ok {
		style = lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		colorStyles[c] = style
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// BoardLayout is the screen geometry of a drawn board.
type BoardLayout struct {
	Frame   core.Rect // box around the grid
	Labels  int       // y of the column label row
	Cursor  int       // y of the cursor row
	Status  int       // y of the status line
	Message int       // y of the message line
}

// CellX returns the screen column of board column col.
func (l BoardLayout) CellX(col int) int {
	return l.Frame.X + 2 + col*2
}

// CellY returns the screen row of board row row.
func (l BoardLayout) CellY(row int) int {
	return l.Frame.Y + 1 + row
}

// LayoutBoard centers a rows x cols board inside area.
func LayoutBoard(area core.Rect, rows, cols int) BoardLayout {
	frameW := cols*2 + 3
	frameH := rows + 2
	// labels, cursor, frame, blank, status, message
	block := area.CenteredIn(frameW, frameH+5)

	return BoardLayout{
		Frame:   core.NewRect(block.X, block.Y+2, frameW, frameH),
		Labels:  block.Y,
		Cursor:  block.Y + 1,
		Status:  block.Y + 2 + frameH + 1,
		Message: block.Y + 2 + frameH + 2,
	}
}

// StatusLine summarizes the board for the line under the grid.
func StatusLine(v connectfour.View, theme Theme) string {
	return fmt.Sprintf("%d moves made | Current player: %s | Status: %s",
		v.MovesMade(), theme.Player(v.CurrentPlayer()).Name, theme.StatusText(v.Status()))
}

// DrawBoard draws the column labels, the cursor over column cursor, the grid
// with its discs and the status line into dst. The cursor is hidden once the
// game is over; the winning line is drawn with the theme's WinGlyph.
func DrawBoard(dst *core.Screen, v connectfour.View, cursor int, theme Theme) BoardLayout {
	rows, cols := v.Rows(), v.Cols()
	layout := LayoutBoard(core.NewRect(0, 0, dst.Width(), dst.Height()), rows, cols)

	for c := 0; c < cols; c++ {
		dst.SetColored(layout.CellX(c), layout.Labels, rune('0'+(c+1)%10), theme.Labels)
	}

	if !v.Status().IsOver() {
		cursor = core.Clamp(cursor, 0, cols-1)
		dst.SetColored(layout.CellX(cursor), layout.Cursor, theme.CursorGlyph, theme.Player(v.CurrentPlayer()).Color)
	}

	dst.DrawBox(layout.Frame, theme.Frame)

	winning := make(map[connectfour.Position]bool)
	for _, p := range v.WinningLine() {
		winning[p] = true
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y := layout.CellX(c), layout.CellY(r)
			owner, ok := v.ContentsAt(r, c).Player()
			if !ok {
				dst.SetColored(x, y, theme.EmptyGlyph, theme.EmptyCell)
				continue
			}
			style := theme.Player(owner)
			glyph := style.Glyph
			if winning[connectfour.Position{Row: r, Col: c}] {
				glyph = theme.WinGlyph
			}
			dst.SetColored(x, y, glyph, style.Color)
		}
	}

	dst.DrawTextCenteredColored(layout.Status, StatusLine(v, theme), theme.Status)
	return layout
}
