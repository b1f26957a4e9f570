// Package window derives the host's presentation metrics from the terminal
// geometry: the DPI handed to the renderer bring-up and the pixel size of
// the browser viewport.
package window

import (
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

const (
	fallbackCols       = 80
	fallbackRows       = 24
	fallbackCellWidth  = 8
	fallbackCellHeight = 16
	minZoom            = 0.01
)

// Terminal is the raw geometry reported for the controlling terminal.
type Terminal struct {
	Cols        int
	Rows        int
	PixelWidth  int
	PixelHeight int
}

// Metrics describes how the browser viewport maps onto terminal cells.
type Metrics struct {
	// DPI is the device pixel ratio, rounded to 4 decimals.
	DPI float32
	// CellWidth and CellHeight are the size of one terminal cell in pixels.
	CellWidth  float32
	CellHeight float32
	// ScaleX and ScaleY are browser pixels per terminal cell.
	ScaleX float32
	ScaleY float32
	// Cols and Rows are the cells available to the browser; one row is kept
	// for the host UI.
	Cols int
	Rows int

	BrowserWidth   int
	BrowserHeight  int
	GraphicsWidth  int
	GraphicsHeight int

	TrueColor bool
}

// Read queries the terminal attached to stdout and computes its metrics.
func Read(zoom float32) Metrics {
	term := withFallback(query(int(os.Stdout.Fd())), os.Getenv)
	term = withPixelFallback(term, reportTTY)
	m := Compute(term, zoom)
	m.TrueColor = termenv.EnvColorProfile() == termenv.TrueColor
	return m
}

func withFallback(term Terminal, getenv func(string) string) Terminal {
	if term.Cols > 0 && term.Rows > 0 {
		return term
	}

	cols := envInt(getenv, "COLUMNS", fallbackCols)
	rows := envInt(getenv, "LINES", fallbackRows)
	log.Printf("window: empty terminal size (%dx%d), using %dx%d", term.Cols, term.Rows, cols, rows)

	term.Cols = cols
	term.Rows = rows
	return term
}

// reporter writes an xterm window-ops request to the terminal and returns
// the two numbers of the reply that begins with prefix.
type reporter func(request, prefix string) (height, width float32, ok bool)

const (
	windowPixelsRequest = "\x1b[14t"
	windowPixelsReply   = "\x1b[4;"
	cellSizeRequest     = "\x1b[16t"
	cellSizeReply       = "\x1b[6;"
)

// withPixelFallback asks the terminal for its pixel size when TIOCGWINSZ
// did not report one: first the text area in pixels, then the cell size.
func withPixelFallback(term Terminal, report reporter) Terminal {
	if term.PixelWidth > 0 && term.PixelHeight > 0 {
		return term
	}
	if height, width, ok := report(windowPixelsRequest, windowPixelsReply); ok {
		term.PixelWidth = int(math.Round(float64(width)))
		term.PixelHeight = int(math.Round(float64(height)))
		return term
	}
	if height, width, ok := report(cellSizeRequest, cellSizeReply); ok {
		term.PixelWidth = int(math.Round(float64(width) * float64(term.Cols)))
		term.PixelHeight = int(math.Round(float64(height) * float64(term.Rows)))
	}
	return term
}

// parseReport extracts "height;width" from the last reply starting with
// prefix and terminated by 't'.
func parseReport(response, prefix string) (height, width float32, ok bool) {
	start := strings.LastIndex(response, prefix)
	if start < 0 {
		return 0, 0, false
	}
	rest := response[start+len(prefix):]
	end := strings.IndexByte(rest, 't')
	if end < 0 {
		return 0, 0, false
	}
	parts := strings.Split(rest[:end], ";")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, err := strconv.ParseFloat(parts[0], 32)
	if err != nil {
		return 0, 0, false
	}
	w, err := strconv.ParseFloat(parts[1], 32)
	if err != nil || h <= 0 || w <= 0 {
		return 0, 0, false
	}
	return float32(h), float32(w), true
}

func envInt(getenv func(string) string, key string, fallback int) int {
	value, err := strconv.Atoi(getenv(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

// Compute derives metrics for a terminal at the given zoom factor.
func Compute(term Terminal, zoom float32) Metrics {
	zoom = max(zoom, minZoom)

	var cellW, cellH float32
	if term.Cols > 0 && term.Rows > 0 && term.PixelWidth > 0 && term.PixelHeight > 0 {
		cellW = float32(term.PixelWidth) / float32(term.Cols)
		cellH = float32(term.PixelHeight) / float32(term.Rows)
	}
	if cellW <= 0 || cellH <= 0 {
		cellW, cellH = fallbackCellWidth, fallbackCellHeight
	}

	// Normalise to a 1:2 cell aspect ratio.
	normalized := (cellW + cellH/2) / 2
	dpi := 2 / normalized * zoom
	dpi = float32(math.Round(float64(dpi)*10000) / 10000)

	// A virtual cell holds a 2x4 pixel quadrant.
	scaleX := 2 / dpi
	scaleY := 4 / dpi

	cols := max(term.Cols, 1)
	rows := max(term.Rows, 2) - 1

	return Metrics{
		DPI:            dpi,
		CellWidth:      cellW,
		CellHeight:     cellH,
		ScaleX:         scaleX,
		ScaleY:         scaleY,
		Cols:           cols,
		Rows:           rows,
		BrowserWidth:   int(math.Ceil(float64(float32(cols) * scaleX))),
		BrowserHeight:  int(math.Ceil(float64(float32(rows) * scaleY))),
		GraphicsWidth:  int(math.Round(float64(float32(cols) * cellW))),
		GraphicsHeight: int(math.Round(float64(float32(rows) * cellH))),
	}
}
