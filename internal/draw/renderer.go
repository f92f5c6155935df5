package draw

import (
	"fmt"
	"io"

	"vectoroids/internal/geom"
)

// textDraw is a queued text overlay, drawn after the canvas so it sits on
// top of game shapes.
type textDraw struct {
	col, row int
	text     string
	color    geom.Color
}

// Renderer draws game shapes and text to a terminal. It owns the canvas,
// the frame writer and the terminal size, and is the only thing the game
// core needs for output.
type Renderer struct {
	canvas   *Canvas
	out      *ChunkWriter
	sizeFunc TermSizeFunc
	texts    []textDraw
	ptsBuf   []geom.Vec2
}

// NewRenderer creates a renderer over w using sizeFunc for terminal
// dimensions. It fails when the terminal size cannot be determined; a
// game cannot be constructed without a render surface.
func NewRenderer(w io.Writer, sizeFunc TermSizeFunc, logicalWidth, logicalHeight float64) (*Renderer, error) {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	tw, th, err := sizeFunc()
	if err != nil {
		return nil, fmt.Errorf("render surface unavailable: %w", err)
	}
	return &Renderer{
		canvas:   NewCanvas(tw, th, logicalWidth, logicalHeight),
		out:      NewChunkWriter(w),
		sizeFunc: sizeFunc,
	}, nil
}

// ViewportSize returns the logical dimensions of the play area.
func (r *Renderer) ViewportSize() (width, height float64) {
	return r.canvas.LogicalWidth(), r.canvas.LogicalHeight()
}

// HandleResize re-reads the terminal size and rescales the canvas. Size
// query failures mid-session are ignored; the previous size stays in use.
func (r *Renderer) HandleResize() {
	tw, th, err := r.sizeFunc()
	if err != nil {
		return
	}
	r.canvas.Resize(tw, th)
}

// Clear starts a new frame.
func (r *Renderer) Clear() {
	r.canvas.Clear()
	r.texts = r.texts[:0]
}

// DrawShape draws a shape transformed to the given position, rotation and
// scale.
func (r *Renderer) DrawShape(s geom.Shape, pos geom.Vec2, rotation, scale float64) {
	r.ptsBuf = s.Transformed(r.ptsBuf[:0], pos, rotation, scale)
	if len(r.ptsBuf) == 2 && r.ptsBuf[0] == r.ptsBuf[1] {
		r.canvas.SetPoint(r.ptsBuf[0], s.Color)
		return
	}
	r.canvas.DrawPolyline(r.ptsBuf, s.Closed, s.Color)
}

// DrawText queues a text overlay anchored at a logical position.
func (r *Renderer) DrawText(pos geom.Vec2, text string, color geom.Color) {
	col, row := r.canvas.LogicalToTerminal(pos.X, pos.Y)
	r.texts = append(r.texts, textDraw{col: col, row: row, text: text, color: color})
}

// DrawTextCentered queues a text overlay centered horizontally on a
// logical position.
func (r *Renderer) DrawTextCentered(pos geom.Vec2, text string, color geom.Color) {
	col, row := r.canvas.LogicalToTerminal(pos.X, pos.Y)
	col -= len(text) / 2
	if col < 1 {
		col = 1
	}
	r.texts = append(r.texts, textDraw{col: col, row: row, text: text, color: color})
}

// Flush renders the frame: screen clear, canvas, then text overlays.
func (r *Renderer) Flush() error {
	ClearScreen(r.out)

	r.canvas.Render(r.out)

	for _, t := range r.texts {
		r.out.SetColor(AnsiColor(t.color))
		r.out.MoveCursor(t.col, t.row)
		r.out.WriteString(t.text)
	}
	if len(r.texts) > 0 {
		r.out.ResetColor()
	}

	return r.out.Flush()
}
