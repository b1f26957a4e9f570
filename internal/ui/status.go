package ui

import (
	"fmt"
	"strings"

	"github.com/kyaoi/termbridge/internal/zoom"
)

// statusDocument renders the bridge state as markdown.
func (m *Model) statusDocument() string {
	var b strings.Builder
	factor := m.coordinator.DefaultZoomFactor()

	b.WriteString("# termbridge\n\n")
	b.WriteString("| Parameter | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Bitmap mode | %s |\n", onOff(m.store.BitmapMode()))
	fmt.Fprintf(&b, "| Device scale factor | %.2f |\n", m.store.DeviceScaleFactor())
	fmt.Fprintf(&b, "| DPI | %.2f |\n", m.store.DPI())
	fmt.Fprintf(&b, "| Default zoom | %s (level %.4f) |\n", formatPercent(factor), zoom.Level(float64(factor)))
	fmt.Fprintf(&b, "| Page | %s |\n", m.pageSummary())

	b.WriteString("\n## Terminal\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Host DPI | %.4f |\n", m.metrics.DPI)
	fmt.Fprintf(&b, "| Cells | %dx%d |\n", m.metrics.Cols, m.metrics.Rows)
	fmt.Fprintf(&b, "| Cell size | %.1fx%.1f px |\n", m.metrics.CellWidth, m.metrics.CellHeight)
	fmt.Fprintf(&b, "| Browser viewport | %dx%d px |\n", m.metrics.BrowserWidth, m.metrics.BrowserHeight)
	fmt.Fprintf(&b, "| True colour | %s |\n", onOff(m.metrics.TrueColor))

	b.WriteString("\n## Frames\n\n")
	frames := m.page.Frames()
	if len(frames) == 0 {
		b.WriteString("_No primary main frame._\n")
		return b.String()
	}

	zoomMap := m.page.HostZoomMap()
	b.WriteString("| Frame | Id | Level | Zoom | Source |\n|---|---|---|---|---|\n")
	for _, frame := range frames {
		source := "default"
		if _, ok := zoomMap.Override(frame.ID); ok {
			source = "override"
		}
		level := zoomMap.Resolve(frame.ID)
		fmt.Fprintf(&b, "| %s | `%s` | %.4f | %s | %s |\n",
			frame.Name, shortID(frame.ID), level, formatPercent(float32(zoom.Factor(level))), source)
	}
	return b.String()
}

func (m *Model) pageSummary() string {
	if !m.coordinator.Bound() {
		return m.page.Title + " (detached)"
	}
	return m.page.Title + " (bound)"
}

func formatPercent(factor float32) string {
	return fmt.Sprintf("%.0f%%", float64(factor)*100)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func shortID(id zoom.FrameID) string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
