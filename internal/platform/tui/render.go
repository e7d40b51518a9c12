package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fluppy/internal/core"
	"github.com/vovakirdan/fluppy/internal/game"
)

// birdFrames are the wing poses cycled during flight.
var birdFrames = []rune{'v', '-', '^'}

// layerGlyphs picks a glyph per parallax layer name, with a fallback for
// custom layers from a user config.
var layerGlyphs = map[string]rune{
	"clouds":    '~',
	"trees":     '^',
	"buildings": '▒',
}

// Render projects a game snapshot from world coordinates onto the screen
// buffer. The world aspect is not preserved; each axis scales independently
// to fill whatever terminal is available.
func Render(s *core.Screen, snap game.Snapshot) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 || snap.WorldW == 0 || snap.WorldH == 0 {
		return
	}

	sx := float64(s.Width()) / snap.WorldW
	sy := float64(s.Height()) / snap.WorldH
	px := func(wx float64) int { return int(wx * sx) }
	py := func(wy float64) int { return int(wy * sy) }

	groundRow := py(snap.GroundY)
	if groundRow >= s.Height() {
		groundRow = s.Height() - 1
	}

	drawLayers(s, snap, sx, groundRow)
	drawGround(s, snap, sx, groundRow)

	for _, p := range snap.Pipes {
		drawPipe(s, p, px, py, groundRow)
	}

	// The menu snapshot carries a bobbing preview bird, so this draws in
	// every phase.
	drawBird(s, snap.Bird, px, py)

	switch snap.Phase {
	case game.PhaseMenu:
		drawMenu(s, snap)
	case game.PhasePlaying:
		drawHUD(s, snap)
	case game.PhaseGameOver:
		drawHUD(s, snap)
		drawGameOver(s, snap)
	}
}

// drawLayers renders the parallax backdrop. Each layer occupies its own
// horizontal band above the ground and repeats a sparse glyph pattern
// shifted by the layer's scroll offset.
func drawLayers(s *core.Screen, snap game.Snapshot, sx float64, groundRow int) {
	if len(snap.Layers) == 0 || groundRow < 2 {
		return
	}

	colors := []core.Color{core.ColorGray, core.ColorGreen, core.ColorCyan}
	for i, layer := range snap.Layers {
		// Slower layers sit higher on the screen
		row := 1 + (groundRow-2)*(i+1)/(len(snap.Layers)+1)
		glyph, ok := layerGlyphs[layer.Name]
		if !ok {
			glyph = '.'
		}
		c := colors[i%len(colors)]

		shift := int(layer.Offset * sx)
		for x := 0; x < s.Width(); x++ {
			// Sparse repeating pattern scrolled right-to-left
			if (x+shift)%7 == 0 {
				s.SetCell(x, row, glyph, c)
			}
		}
	}
}

// drawGround renders the scrolling ground strip.
func drawGround(s *core.Screen, snap game.Snapshot, sx float64, groundRow int) {
	shift := int(snap.GroundOffset * sx)
	for x := 0; x < s.Width(); x++ {
		r := '='
		if (x+shift)%4 == 0 {
			r = '≡'
		}
		s.SetCell(x, groundRow, r, core.ColorYellow)
	}
	for y := groundRow + 1; y < s.Height(); y++ {
		s.DrawHLine(0, y, s.Width(), '░', core.ColorYellow)
	}
}

// drawPipe renders one pipe pair as two solid columns with caps at the gap.
func drawPipe(s *core.Screen, p game.PipeSnapshot, px, py func(float64) int, groundRow int) {
	left := px(p.X - p.Width/2)
	right := px(p.X + p.Width/2)
	if right <= left {
		right = left + 1
	}
	gapTopRow := py(p.GapTop)
	gapBottomRow := py(p.GapBottom)

	w := right - left
	if gapTopRow > 0 {
		s.DrawRect(left, 0, w, gapTopRow, '█', core.ColorGreen)
		s.DrawHLine(left, gapTopRow-1, w, '▄', core.ColorBrightGreen)
	}
	if gapBottomRow < groundRow {
		s.DrawRect(left, gapBottomRow, w, groundRow-gapBottomRow, '█', core.ColorGreen)
		s.DrawHLine(left, gapBottomRow, w, '▀', core.ColorBrightGreen)
	}
}

// drawBird renders the bird with a wing pose from its animation frame.
func drawBird(s *core.Screen, b game.BirdSnapshot, px, py func(float64) int) {
	r := 'x' // death pose
	if b.Alive {
		r = birdFrames[b.FrameIndex%len(birdFrames)]
	}
	x, y := px(b.X), py(b.Y)
	s.SetCell(x, y, r, core.ColorBrightYellow)
	s.SetCell(x+1, y, '>', core.ColorOrange)
}

// drawHUD renders the score line during play.
func drawHUD(s *core.Screen, snap game.Snapshot) {
	s.DrawTextColored(1, 0, strings.ToUpper(snap.PresetName), core.ColorGray)
	s.DrawTextCentered(0, fmt.Sprintf("SCORE %d", snap.Score), core.ColorBrightWhite)

	best := fmt.Sprintf("BEST %d", snap.BestScore)
	s.DrawTextColored(s.Width()-len(best)-1, 0, best, core.ColorGray)
}

// drawMenu renders the title screen with the difficulty list.
func drawMenu(s *core.Screen, snap game.Snapshot) {
	boxW := 26
	boxH := len(snap.MenuOptions) + 6
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2
	if y < 1 {
		y = 1
	}

	s.DrawRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	s.DrawBox(x, y, boxW, boxH, core.ColorBrightYellow)
	s.DrawTextCentered(y+1, "F L U P P Y", core.ColorBrightYellow)

	for i, name := range snap.MenuOptions {
		row := y + 3 + i
		if i == snap.MenuCursor {
			s.DrawTextColored(x+3, row, "> "+name, core.ColorBrightWhite)
		} else {
			s.DrawTextColored(x+5, row, name, core.ColorGray)
		}
	}

	s.DrawTextCentered(y+boxH-2, "enter: play  q: quit", core.ColorGray)
}

// drawGameOver renders the results overlay on top of the frozen scene.
func drawGameOver(s *core.Screen, snap game.Snapshot) {
	boxW := 30
	boxH := 7
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2
	if y < 1 {
		y = 1
	}

	s.DrawRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	s.DrawBox(x, y, boxW, boxH, core.ColorRed)
	s.DrawTextCentered(y+1, "GAME OVER", core.ColorRed)
	s.DrawTextCentered(y+3, fmt.Sprintf("score %d   best %d", snap.Score, snap.BestScore), core.ColorBrightWhite)
	s.DrawTextCentered(y+5, "space: again  q: quit", core.ColorGray)
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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
