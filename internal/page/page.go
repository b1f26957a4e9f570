// Package page provides an in-memory page context with a frame tree and a
// host zoom map. It stands in for the engine's page when the bridge runs
// outside the browser process.
package page

import "github.com/kyaoi/termbridge/internal/zoom"

// Page is a single page context. The primary main frame may be absent, for
// example before the first navigation commits.
type Page struct {
	Title string

	main    *Frame
	zoomMap *ZoomMap
}

// New creates a page with a committed primary main frame.
func New(title string) *Page {
	p := &Page{
		Title:   title,
		zoomMap: NewZoomMap(),
	}
	p.LoadMainFrame()
	return p
}

// PrimaryMainFrame implements zoom.Page.
func (p *Page) PrimaryMainFrame() (zoom.FrameID, bool) {
	if p.main == nil {
		return "", false
	}
	return p.main.ID, true
}

// ZoomMap implements zoom.Page.
func (p *Page) ZoomMap() zoom.ZoomMap {
	if p.zoomMap == nil {
		return nil
	}
	return p.zoomMap
}

// HostZoomMap returns the concrete zoom map for inspection.
func (p *Page) HostZoomMap() *ZoomMap {
	return p.zoomMap
}

// MainFrame returns the primary main frame or nil.
func (p *Page) MainFrame() *Frame {
	return p.main
}

// LoadMainFrame replaces the primary main frame with a fresh one, as a
// cross-document navigation would.
func (p *Page) LoadMainFrame() *Frame {
	p.main = newFrame("main")
	return p.main
}

// DetachMainFrame drops the primary main frame.
func (p *Page) DetachMainFrame() {
	p.main = nil
}

// AddSubframe adds a named child frame under the main frame. It returns nil
// when there is no main frame.
func (p *Page) AddSubframe(name string) *Frame {
	if p.main == nil {
		return nil
	}
	if existing := p.main.ChildByName(name); existing != nil {
		return existing
	}
	child := newFrame(name)
	p.main.AddChild(child)
	return child
}

// Frames returns the frame tree in depth first order.
func (p *Page) Frames() []*Frame {
	if p.main == nil {
		return nil
	}
	var frames []*Frame
	p.main.Walk(func(frame *Frame, _ int) {
		frames = append(frames, frame)
	})
	return frames
}
