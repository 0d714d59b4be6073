package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-arcade/internal/core"
)

// Board layout. Each field cell is two terminal columns wide.
const (
	cellWidth  = 2
	boardW     = core.FieldWidth*cellWidth + 2
	boardH     = core.FieldHeight + 2
	panelGap   = 2
	panelW     = 20
	screenW    = boardW + panelGap + panelW
	screenH    = boardH
	filledCell = "[]"
	emptyCell  = " ."
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// cellColors picks the color of each cell kind.
var cellColors = map[core.Cell]core.Color{
	core.CellEmpty:  core.ColorGray,
	core.CellMoving: core.ColorCyan,
	core.CellStatic: core.ColorWhite,
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawGame draws the boxed field and the side panel for info onto s.
func DrawGame(s *core.Screen, title string, info core.GameInfo) {
	s.Clear()

	board := core.NewRect(0, 0, boardW, boardH)
	s.DrawBox(board, core.ColorGray)
	if info.Field != nil {
		drawField(s, board.Inset(1), info.Field)
	}

	panel := core.NewRect(boardW+panelGap, 0, panelW, boardH)
	drawPanel(s, panel, title, info)

	if banner := statusBanner(info.Status); banner != "" {
		mid := board.Y + board.H/2
		s.DrawTextCentered(board, mid, banner, core.ColorYellow)
		if hint := statusHint(info.Status); hint != "" {
			s.DrawTextCentered(board, mid+1, hint, core.ColorWhite)
		}
	}
}

func drawField(s *core.Screen, area core.Rect, f *core.Field) {
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			cell := f.Get(x, y)
			text := emptyCell
			if cell != core.CellEmpty {
				text = filledCell
			}
			s.DrawTextColor(area.X+x*cellWidth, area.Y+y, text, cellColors[cell])
		}
	}
}

func drawPanel(s *core.Screen, r core.Rect, title string, info core.GameInfo) {
	y := r.Y
	s.DrawTextColor(r.X, y, strings.ToUpper(title), core.ColorYellow)
	y += 2

	rows := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprintf("%d", info.Score)},
		{"High", fmt.Sprintf("%d", info.HighScore)},
		{"Level", fmt.Sprintf("%d", info.Level)},
		{"Speed", info.Speed.String()},
	}
	for _, row := range rows {
		s.DrawTextColor(r.X, y, fmt.Sprintf("%-6s", row.label), core.ColorGray)
		s.DrawTextColor(r.X+7, y, row.value, core.ColorWhite)
		y++
	}

	if !hasPreview(info.Preview) {
		return
	}
	y++
	s.DrawTextColor(r.X, y, "Next", core.ColorGray)
	y++
	for row := 0; row < core.PreviewSize; row++ {
		for col := 0; col < core.PreviewSize; col++ {
			if info.Preview[row][col] {
				s.DrawTextColor(r.X+col*cellWidth, y+row, filledCell, core.ColorCyan)
			}
		}
	}
}

func hasPreview(p core.Preview) bool {
	for _, row := range p {
		for _, on := range row {
			if on {
				return true
			}
		}
	}
	return false
}

func statusBanner(st core.Status) string {
	switch st {
	case core.StatusStart:
		return "READY"
	case core.StatusPaused:
		return "PAUSED"
	case core.StatusGameOver:
		return "GAME OVER"
	case core.StatusWin:
		return "YOU WIN"
	}
	return ""
}

func statusHint(st core.Status) string {
	switch st {
	case core.StatusStart:
		return "enter to start"
	case core.StatusPaused:
		return "p to resume"
	case core.StatusGameOver, core.StatusWin:
		return "enter to replay"
	}
	return ""
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
