package t2048

import (
	"fmt"
	"math/bits"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	logPanelMinW = 24
	logPanelGap  = 2
)

// MinScreenSize returns the smallest screen that fits a board of the given size.
func MinScreenSize(size int) (w, h int) {
	return size*cellWidth + 1, hudHeight + size*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	size := g.board.Size()
	minW, minH := MinScreenSize(size)
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	// Centre the board, or push it left when the log panel fits beside it.
	boardX := (dst.Width() - boardW) / 2
	logW := dst.Width() - boardW - logPanelGap
	if logW >= logPanelMinW {
		boardX = 0
	}
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	if logW >= logPanelMinW {
		g.renderLog(dst, core.NewRect(boardW+logPanelGap, 0, logW, dst.Height()))
	}
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and max tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score.Value()))

	info := fmt.Sprintf("Max: %d", g.board.MaxTile())
	if g.history.Capacity() > 0 {
		info = fmt.Sprintf("Undo: %d  %s", g.history.Depth(), info)
	}
	infoX := core.Max(boardX+boardW-len(info), boardX)
	dst.DrawText(infoX, 1, info)
}

// renderBoard draws the grid lines and the coloured tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.board.Size()

	for y := 0; y < size+1; y++ {
		for x := 0; x < size+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, core.ColorGray)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', core.ColorGray)
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for _, c := range g.board.cells {
		cellX := boardX + c.Col*cellWidth + 1
		cellY := boardY + c.Row*cellHeight + 1

		if c.IsEmpty() {
			dst.SetCell(cellX+(cellWidth-1)/2, cellY, '·', BucketEmpty.Color())
			continue
		}

		label := c.String()
		if len(label) > cellWidth-1 {
			label = fmt.Sprintf("2^%d", bits.Len64(c.Value)-1)
		}
		padLeft := core.Max((cellWidth-1-len(label))/2, 0)
		dst.DrawTextColor(cellX+padLeft, cellY, label, c.Bucket.Color())
	}
}

// renderLog draws the most recent events in a box, newest at the bottom.
func (g *Game) renderLog(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r)
	dst.DrawText(r.X+2, r.Y, " Log ")

	innerW := r.W - 2
	for i, msg := range g.events.Tail(r.H - 2) {
		runes := []rune(msg)
		if len(runes) > innerW {
			runes = runes[:innerW]
		}
		dst.DrawTextColor(r.X+1, r.Y+1+i, string(runes), core.ColorGray)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch g.state {
	case StateInitialized:
		drawOverlay(dst, centerX, centerY, core.ColorDefault, "2048", "Start a new game")
	case StateWon:
		drawOverlay(dst, centerX, centerY, core.ColorBrightGreen, "YOU WON!", fmt.Sprintf("Score: %d", g.score.Value()))
	case StateGameOver:
		drawOverlay(dst, centerX, centerY, core.ColorBrightRed, "GAME OVER", fmt.Sprintf("Max tile: %d", g.board.MaxTile()))
	}
}

// drawOverlay draws a centred box with the first line in c.
func drawOverlay(dst *core.Screen, centerX, centerY int, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = c
		}
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}
