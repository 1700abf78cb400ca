package match3

import (
	"fmt"

	"github.com/vovakirdan/match3/internal/core"
	m3 "github.com/vovakirdan/match3/internal/games/match3/core"
)

const (
	cellWidth = 3 // Glyph plus a marker on each side
	hudHeight = 3
	footer    = 2 // Message and controls lines
)

// tokenGlyphs and tokenColors give every ordinary token a distinct look.
// config.MaxTypes bounds how many are needed.
var (
	tokenGlyphs = []rune{'●', '▲', '■', '◆', '♥', '♣', '♠', '♦', '✚', '○', '△', '□'}
	tokenColors = []core.Color{
		core.ColorBrightRed,
		core.ColorBrightGreen,
		core.ColorBrightBlue,
		core.ColorBrightYellow,
		core.ColorBrightMagenta,
		core.ColorBrightCyan,
		core.ColorOrange,
		core.ColorWhite,
		core.ColorRed,
		core.ColorGreen,
		core.ColorBlue,
		core.ColorMagenta,
	}
)

const (
	wildGlyph = '✦'
	wildColor = core.ColorBrightWhite
)

// TokenLook returns the glyph and color used to draw a cell.
func TokenLook(c m3.Cell, wild m3.Token) (rune, core.Color) {
	switch {
	case !c.Filled:
		return ' ', core.ColorDefault
	case c.Type == wild:
		return wildGlyph, wildColor
	case c.Type >= 0 && int(c.Type) < len(tokenGlyphs):
		return tokenGlyphs[c.Type], tokenColors[c.Type]
	default:
		return '?', core.ColorGray
	}
}

// minScreenSize returns the smallest screen that fits the board and HUD.
func (g *Game) minScreenSize() (int, int) {
	boardW := g.board.Cols*cellWidth + 2
	boardH := g.board.Rows + 2
	return core.Max(boardW, len(g.Controls())), hudHeight + boardH + footer
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.board.Cols*cellWidth + 2
	boardH := g.board.Rows + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderHUD draws title, score, moves and combo.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	info := fmt.Sprintf("Score: %d", g.score)
	if g.movesLeft >= 0 {
		info += fmt.Sprintf("   Moves: %d", g.movesLeft)
	} else {
		info += fmt.Sprintf("   Moves: %d", g.movesMade)
	}
	if g.lastCombo > 1 {
		info += fmt.Sprintf("   Combo: x%d", g.lastCombo)
	}
	dst.DrawTextCentered(1, info)
}

// renderBoard draws the framed grid. The cursor is shown as [x], the picked
// cell as <x> and a hinted move as {x}.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	frame := core.ColorGray
	if g.selected != nil {
		frame = core.ColorWhite
	}
	dst.DrawBoxColored(core.NewRect(x0, y0, g.board.Cols*cellWidth+2, g.board.Rows+2), frame)

	wild := g.resolver.Rules.Wild
	for r := 0; r < g.board.Rows; r++ {
		for c := 0; c < g.board.Cols; c++ {
			p := m3.P(r, c)
			x := x0 + 1 + c*cellWidth
			y := y0 + 1 + r

			glyph, color := TokenLook(g.board.Get(p), wild)
			dst.SetColored(x+1, y, glyph, color)

			left, right, mark := g.markers(p)
			if left != ' ' {
				dst.SetColored(x, y, left, mark)
				dst.SetColored(x+2, y, right, mark)
			}
		}
	}
}

// markers returns the brackets drawn around a cell.
func (g *Game) markers(p m3.Pos) (rune, rune, core.Color) {
	switch {
	case g.selected != nil && *g.selected == p:
		return '<', '>', core.ColorBrightYellow
	case p == g.cursor:
		return '[', ']', core.ColorBrightWhite
	case g.hint != nil && (g.hint.A == p || g.hint.B == p):
		return '{', '}', core.ColorCyan
	default:
		return ' ', ' ', core.ColorDefault
	}
}

// renderFooter draws the last message and the control hints.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.message != "" {
		dst.DrawTextCentered(y, g.message)
	}
	dst.DrawTextCentered(y+1, g.Controls())
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	if g.paused {
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, board, "GAME OVER",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Best combo: x%d", g.bestCombo),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move  Space: Swap  H: Hint  P: Pause  Q: Quit"
}
