package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// hudHeight is the number of rows above the board.
const hudHeight = 1

// boardLayout places the grid on the screen.
type boardLayout struct {
	box   core.Rect // Border, interior starts at box.X+1, box.Y+1
	cellW int       // Screen columns per grid cell
}

// layoutBoard fits grid into a w×h screen. Cells are two columns wide when
// there is room, one otherwise.
func layoutBoard(w, h int, grid core.Grid) (boardLayout, bool) {
	boxH := grid.Height + 2
	if h < boxH+hudHeight {
		return boardLayout{}, false
	}
	cellW := 2
	if grid.Width*cellW+2 > w {
		cellW = 1
	}
	boxW := grid.Width*cellW + 2
	if boxW > w {
		return boardLayout{}, false
	}
	x := (w - boxW) / 2
	y := hudHeight + (h-hudHeight-boxH)/2
	return boardLayout{box: core.NewRect(x, y, boxW, boxH), cellW: cellW}, true
}

// shifted returns the layout moved by off grid cells.
func (l boardLayout) shifted(off core.Point) boardLayout {
	l.box.X += off.X * l.cellW
	l.box.Y += off.Y
	return l
}

// cellAt returns the screen position of grid cell p.
func (l boardLayout) cellAt(p core.Point) (int, int) {
	return l.box.X + 1 + p.X*l.cellW, l.box.Y + 1 + p.Y
}

// fill draws r across all columns of a grid cell.
func (l boardLayout) fill(dst *core.Screen, p core.Point, r rune, fg core.Color) {
	x, y := l.cellAt(p)
	for i := 0; i < l.cellW; i++ {
		dst.SetCell(x+i, y, r, fg)
	}
}

// MinScreenSize returns the smallest screen that can show grid.
func MinScreenSize(grid core.Grid) (int, int) {
	return grid.Width + 2, grid.Height + 2 + hudHeight
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	DrawFrame(dst, g.Frame(), g.cfg.Palette)
}

// DrawFrame draws f into dst using the palette. It reads the frame only;
// shake is applied by offsetting the layout, never the entities.
func DrawFrame(dst *core.Screen, f Frame, pal config.PaletteConfig) {
	dst.Clear()
	dst.Fill(core.ColorDefault)

	switch f.State {
	case StateMenu:
		drawMenu(dst, f, pal)
		return
	case StateModeSelect:
		drawModeSelect(dst, f, pal)
		return
	}

	base, ok := layoutBoard(dst.Width(), dst.Height(), f.Grid)
	if !ok {
		minW, minH := MinScreenSize(f.Grid)
		drawLines(dst, pal.Text, "Terminal too small", fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()))
		return
	}

	drawHUD(dst, f, pal)
	l := base.shifted(f.Shake)

	border := pal.Border
	if f.FlashStrength > 0 {
		border = border.Lerp(pal.Flash, f.FlashStrength)
		bg := core.ColorBlack.Lerp(f.Flash, 0.4*f.FlashStrength)
		for y := l.box.Y + 1; y < l.box.Bottom()-1; y++ {
			for x := l.box.X + 1; x < l.box.Right()-1; x++ {
				dst.SetBg(x, y, bg)
			}
		}
	}
	drawBorder(dst, l.box, border)

	for _, o := range f.Obstacles {
		l.fill(dst, o.Pos, '▓', pal.Obstacle.Scale(0.55+0.45*o.Pulse()))
	}

	if f.Food.Visible {
		glyph := '●'
		if f.Food.Bonus {
			glyph = '◆'
		}
		x, y := l.cellAt(f.Food.Pos)
		dst.SetCell(x, y, glyph, f.Food.Color)
	}

	drawSnake(dst, l, f, pal)
	drawParticles(dst, l, f)

	switch f.State {
	case StatePaused:
		drawOverlay(dst, pal, "Paused", "P to resume, Esc for menu")
	case StateGameOver:
		result := fmt.Sprintf("Score: %d  High: %d", f.Score, f.HighScore)
		if f.NewHighScore {
			result = fmt.Sprintf("New high score: %d", f.Score)
		}
		drawOverlay(dst, pal, "Game Over", f.DeathReason.Message(), result, "R to restart, Esc for menu")
	}
}

func drawHUD(dst *core.Screen, f Frame, pal config.PaletteConfig) {
	left := fmt.Sprintf(" %s: %s", f.Title, f.Mode.Title())
	right := fmt.Sprintf("Score: %d  High: %d ", f.Score, f.HighScore)
	if f.Food.Bonus && f.Food.Remaining > 0 {
		right = fmt.Sprintf("Bonus %.1fs  %s", f.Food.Remaining.Seconds(), right)
	}
	dst.DrawText(0, 0, left, pal.Accent)
	dst.DrawText(dst.Width()-len([]rune(right)), 0, right, pal.Text)
}

func drawBorder(dst *core.Screen, r core.Rect, fg core.Color) {
	dst.SetCell(r.X, r.Y, '┌', fg)
	dst.SetCell(r.Right()-1, r.Y, '┐', fg)
	dst.SetCell(r.X, r.Bottom()-1, '└', fg)
	dst.SetCell(r.Right()-1, r.Bottom()-1, '┘', fg)
	dst.DrawHLine(r.X+1, r.Y, r.W-2, '─', fg)
	dst.DrawHLine(r.X+1, r.Bottom()-1, r.W-2, '─', fg)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		dst.SetCell(r.X, y, '│', fg)
		dst.SetCell(r.Right()-1, y, '│', fg)
	}
}

func drawSnake(dst *core.Screen, l boardLayout, f Frame, pal config.PaletteConfig) {
	body, head := pal.Snake, pal.Head
	if !f.Alive {
		body = body.Lerp(pal.Dead, f.DeathProgress)
		head = head.Lerp(pal.Dead, f.DeathProgress)
	}
	// Tail first so the head stays on top
	for i := len(f.Snake) - 1; i >= 0; i-- {
		color := body
		if i == 0 {
			color = head
		}
		l.fill(dst, f.Snake[i], '█', color)
	}
}

func drawParticles(dst *core.Screen, l boardLayout, f Frame) {
	for _, p := range f.Particles {
		if p.X < 0 || p.Y < 0 || p.X >= float64(f.Grid.Width) || p.Y >= float64(f.Grid.Height) {
			continue
		}
		glyph := '·'
		switch {
		case p.Opacity > 0.66:
			glyph = '*'
		case p.Opacity > 0.33:
			glyph = '+'
		}
		x := l.box.X + 1 + int(math.Floor(p.X*float64(l.cellW)))
		y := l.box.Y + 1 + int(math.Floor(p.Y))
		dst.SetCell(x, y, glyph, p.Color.Scale(p.Opacity))
	}
}

func drawMenu(dst *core.Screen, f Frame, pal config.PaletteConfig) {
	lines := []string{f.Title, ""}
	if f.HighScore > 0 {
		lines = append(lines, fmt.Sprintf("High score: %d", f.HighScore), "")
	}
	lines = append(lines, "Enter to start", "Q to quit")
	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		color := pal.Text
		if i == 0 {
			color = pal.Accent
		}
		dst.DrawTextCentered(top+i, line, color)
	}
}

func drawModeSelect(dst *core.Screen, f Frame, pal config.PaletteConfig) {
	lines := []string{"Select mode", ""}
	for i, m := range f.Modes {
		marker := "  "
		if i == f.Cursor {
			marker = "> "
		}
		num := 0
		for j, am := range AllModes {
			if am == m {
				num = j + 1
			}
		}
		lines = append(lines, fmt.Sprintf("%s%d. %-10s", marker, num, m.Title()))
	}
	lines = append(lines, "", "Enter to play, Esc for menu")

	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		color := pal.Text
		if i == 0 || (i >= 2 && i-2 == f.Cursor) {
			color = pal.Accent
		}
		dst.DrawTextCentered(top+i, line, color)
	}
	if f.Err != nil {
		dst.DrawTextCentered(top+len(lines)+1, f.Err.Error(), pal.Dead)
	}
}

// drawOverlay draws a centered box with the given lines.
func drawOverlay(dst *core.Screen, pal config.PaletteConfig, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawBox(box, pal.Border)
	for i, line := range lines {
		color := pal.Text
		if i == 0 {
			color = pal.Accent
		}
		dst.DrawTextCentered(box.Y+1+i, line, color)
	}
}

func drawLines(dst *core.Screen, fg core.Color, lines ...string) {
	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		dst.DrawTextCentered(top+i, line, fg)
	}
}
