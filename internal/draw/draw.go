// Package draw renders the game to a terminal: a half-block pixel canvas
// scaled from logical coordinates, ANSI cursor and color helpers, and a
// chunked writer that keeps SSH output smooth.
package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"vectoroids/internal/geom"
)

// ansiColors maps shape colors to 256-color palette entries.
var ansiColors = map[geom.Color]int{
	geom.ColorWhite:  15,
	geom.ColorGray:   245,
	geom.ColorCyan:   51,
	geom.ColorYellow: 220,
	geom.ColorRed:    196,
	geom.ColorGreen:  46,
}

// AnsiColor returns the 256-color palette index for a shape color.
func AnsiColor(c geom.Color) int {
	if code, ok := ansiColors[c]; ok {
		return code
	}
	return 15
}

// TermSizeFunc reports the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns the size of the terminal behind stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor restores the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// maxChunkSize bounds single writes; 1400 bytes stays under a typical MTU
// so frames stream smoothly over SSH.
const maxChunkSize = 1400

// ChunkWriter accumulates ANSI output for one frame and flushes it to the
// underlying writer in MTU-sized chunks.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte // scratch for allocation-free integer formatting
}

// NewChunkWriter creates a ChunkWriter over w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{bufw: bufio.NewWriterSize(w, 8192)}
}

// MoveCursor appends a cursor position sequence. col and row are 1-based.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col), 10))
	cw.buf.WriteByte('H')
}

// SetColor appends a foreground color sequence for a 256-color index.
func (cw *ChunkWriter) SetColor(code int) {
	cw.buf.WriteString("\033[38;5;")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(code), 10))
	cw.buf.WriteByte('m')
}

// ResetColor appends an SGR reset.
func (cw *ChunkWriter) ResetColor() {
	cw.buf.WriteString("\033[0m")
}

// WriteString appends a string to the frame buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the frame buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated frame in chunks and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}
