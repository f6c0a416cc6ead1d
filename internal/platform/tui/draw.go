package tui

import (
	"math"

	"github.com/vovakirdan/cleancity/internal/controller"
	"github.com/vovakirdan/cleancity/internal/core"
	"github.com/vovakirdan/cleancity/internal/model"
	"github.com/vovakirdan/cleancity/internal/session"
)

// palette is the look of one street background.
type palette struct {
	road      rune
	roadColor core.Color
	lane      core.Color
	curb      core.Color
	truck     core.Color
}

var palettes = map[string]palette{
	"Street":            {road: ' ', roadColor: core.ColorGray, lane: core.ColorWhite, curb: core.ColorGray, truck: core.ColorGreen},
	"StreetLDestN":      {road: '·', roadColor: core.ColorGray, lane: core.ColorYellow, curb: core.ColorWhite, truck: core.ColorGreen},
	"StreetRedUrban":    {road: '·', roadColor: core.ColorRed, lane: core.ColorBrightWhite, curb: core.ColorBrown, truck: core.ColorBrightGreen},
	"StreetMedianNight": {road: ' ', roadColor: core.ColorBlue, lane: core.ColorBrightYellow, curb: core.ColorBlue, truck: core.ColorCyan},
	"StreetBiscuit":     {road: '░', roadColor: core.ColorBrown, lane: core.ColorBrightWhite, curb: core.ColorOrange, truck: core.ColorGreen},
}

// defaultPalette stands in for unknown background keys.
var defaultPalette = palettes["Street"]

type glyph struct {
	r rune
	c core.Color
}

var trashGlyphs = map[string]glyph{
	"Trash_Pixel1": {'●', core.ColorBrightGreen},
	"Trash_Pixel2": {'■', core.ColorBrown},
	"Trash_Pixel3": {'▲', core.ColorCyan},
	"Trash_Pixel4": {'◆', core.ColorMagenta},
	"Trash_Pixel5": {'♦', core.ColorOrange},
	"Trash_Pixel6": {'✱', core.ColorBrightYellow},
}

var missingGlyph = glyph{'?', core.ColorBrightRed}

var facingGlyphs = map[model.Facing]rune{
	model.FacingFront: 'v',
	model.FacingBack:  '^',
	model.FacingLeft:  '<',
	model.FacingRight: '>',
}

// viewport maps world units (y up) onto screen cells (y down).
type viewport struct {
	cols, rows int
	sx, sy     float64
	worldH     float64
}

func newViewport(cols, rows int, worldW, worldH float64) viewport {
	v := viewport{cols: cols, rows: rows, worldH: worldH}
	if worldW > 0 {
		v.sx = float64(cols) / worldW
	}
	if worldH > 0 {
		v.sy = float64(rows) / worldH
	}
	return v
}

// cells returns the cell rectangle covering r. Anything visible covers at
// least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * v.sx))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y0 := int(math.Floor((v.worldH - r.Top()) * v.sy))
	y1 := int(math.Ceil((v.worldH - r.Y) * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1 - x0, y1 - y0
}

func (v viewport) fill(s *core.Screen, r core.Rect, ch rune, c core.Color) {
	x, y, w, h := v.cells(r)
	s.FillRect(x, y, w, h, ch, c)
}

// drawWorld paints the street, trash, truck and player.
func drawWorld(s *core.Screen, snap session.Snapshot) {
	pal, ok := palettes[snap.BackgroundKey]
	if !ok {
		pal = defaultPalette
	}
	v := newViewport(s.Width(), s.Height(), snap.WorldWidth, snap.WorldHeight)

	drawStreet(s, pal)

	for _, t := range snap.Trash {
		g, ok := trashGlyphs[t.Key]
		if !ok {
			g = missingGlyph
		}
		v.fill(s, t.Rect(), g.r, g.c)
	}

	truck := snap.Truck
	v.fill(s, truck.Rect(), '█', pal.truck)
	v.fill(s, controller.FrontStrip(controller.TruckCollisionBox(&truck)), '▐', core.ColorBrightRed)

	player := snap.Player
	body, face := core.ColorBrightBlue, facingGlyphs[player.Facing]
	if player.Defeated {
		body, face = core.ColorRed, 'x'
	}
	v.fill(s, player.Rect(), '▓', body)
	cx, cy := player.Rect().Center()
	px, py, _, _ := v.cells(core.NewRect(cx, cy, 0, 0))
	s.SetColored(px, py, face, core.ColorBrightWhite)
}

func drawStreet(s *core.Screen, pal palette) {
	s.Fill(pal.road, pal.roadColor)

	w, h := s.Width(), s.Height()
	if h == 0 {
		return
	}
	s.FillRect(0, 0, w, 1, '▀', pal.curb)
	s.FillRect(0, h-1, w, 1, '▄', pal.curb)

	for _, row := range []int{h / 4, h - 1 - h/4} {
		if row <= 0 || row >= h-1 {
			continue
		}
		for x := 0; x < w; x++ {
			if x%6 < 4 {
				s.SetColored(x, row, '─', pal.lane)
			}
		}
	}
}

// drawBanner draws a boxed message centered on the screen.
func drawBanner(s *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW, boxH := width+4, len(lines)+2
	x := (s.Width() - boxW) / 2
	y := (s.Height() - boxH) / 2

	s.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	s.DrawBox(x, y, boxW, boxH, c)
	for i, l := range lines {
		s.DrawTextCentered(y+1+i, l, c)
	}
}
