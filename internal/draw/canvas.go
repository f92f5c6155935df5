package draw

import (
	"math"

	"vectoroids/internal/geom"
)

// Canvas is a colored drawing buffer with 2x vertical resolution using
// half-block characters. Game coordinates are logical; the canvas scales
// them to the current terminal size.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int // termHeight * 2

	// cells holds one byte per sub-pixel: 0 empty, otherwise color+1.
	cells []uint8

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64
}

// NewCanvas creates a canvas that scales logical coordinates to the given
// terminal dimensions.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adjusts the canvas for new terminal dimensions, keeping the
// logical size fixed.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.cells = make([]uint8, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Clear resets all sub-pixels.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// LogicalWidth returns the logical coordinate width.
func (c *Canvas) LogicalWidth() float64 { return c.logicalWidth }

// LogicalHeight returns the logical coordinate height.
func (c *Canvas) LogicalHeight() float64 { return c.logicalHeight }

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position, for placing text overlays near canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// setPixel sets a sub-pixel at terminal pixel coordinates.
func (c *Canvas) setPixel(x, y int, color geom.Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.cells[y*c.termWidth+x] = uint8(color) + 1
	}
}

// SetPoint sets the sub-pixel nearest to a logical coordinate.
func (c *Canvas) SetPoint(p geom.Vec2, color geom.Color) {
	px := int(math.Round(p.X * c.scaleX))
	py := int(math.Round(p.Y * c.scaleY))
	c.setPixel(px, py, color)
}

// DrawLine draws a line between two logical points using Bresenham's
// algorithm in pixel space.
func (c *Canvas) DrawLine(p1, p2 geom.Vec2, color geom.Color) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, color)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolyline draws consecutive line segments through points, connecting
// the last point back to the first when closed is set.
func (c *Canvas) DrawPolyline(points []geom.Vec2, closed bool, color geom.Color) {
	if len(points) < 2 {
		return
	}
	for i := 0; i+1 < len(points); i++ {
		c.DrawLine(points[i], points[i+1], color)
	}
	if closed && len(points) > 2 {
		c.DrawLine(points[len(points)-1], points[0], color)
	}
}

// Render writes the canvas to the frame writer using half-block
// characters, emitting color changes only when the color switches.
func (c *Canvas) Render(cw *ChunkWriter) {
	current := -1

	for row := 0; row < c.termHeight; row++ {
		topOffset := (row * 2) * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.cells[topOffset+col]
			var bottom uint8
			if row*2+1 < c.subPixelHeight {
				bottom = c.cells[bottomOffset+col]
			}
			if top == 0 && bottom == 0 {
				continue
			}

			var ch rune
			var cell uint8
			switch {
			case top != 0 && bottom != 0:
				ch = '█'
				cell = top
			case top != 0:
				ch = '▀'
				cell = top
			default:
				ch = '▄'
				cell = bottom
			}

			if code := AnsiColor(geom.Color(cell - 1)); code != current {
				cw.SetColor(code)
				current = code
			}
			cw.MoveCursor(col+1, row+1)
			cw.WriteRune(ch)
		}
	}

	if current != -1 {
		cw.ResetColor()
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
