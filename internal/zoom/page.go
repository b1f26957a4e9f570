package zoom

// FrameID is the engine's stable identity token for a frame.
type FrameID string

// ZoomMap stores per-frame and default zoom levels for one page. It is owned
// by the engine; the coordinator only calls into it.
type ZoomMap interface {
	SetZoomLevel(frame FrameID, level float64)
	SetDefaultZoomLevel(level float64)
}

// Page is a non-owning view of an engine page context.
type Page interface {
	// PrimaryMainFrame returns the identity of the page's top-level frame,
	// if one currently exists.
	PrimaryMainFrame() (FrameID, bool)
	// ZoomMap returns nil when the page has no zoom map yet.
	ZoomMap() ZoomMap
}
