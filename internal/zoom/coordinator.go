// Package zoom keeps the browser engine's zoom state in line with the
// presentation parameters reported by the terminal host.
package zoom

import (
	"io"
	"log"

	"github.com/kyaoi/termbridge/internal/presentation"
)

// BindingState describes whether a page is currently attached.
type BindingState int

const (
	Unbound BindingState = iota
	Bound
)

func (s BindingState) String() string {
	switch s {
	case Bound:
		return "bound"
	default:
		return "unbound"
	}
}

// AttachHook runs after a page has been attached and the default zoom has
// been replayed onto it.
type AttachHook func(page Page)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used to trace applied zoom levels.
func WithLogger(logger *log.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAttachHook registers a hook that runs on every attach.
func WithAttachHook(hook AttachHook) Option {
	return func(c *Coordinator) {
		if hook != nil {
			c.hooks = append(c.hooks, hook)
		}
	}
}

// Coordinator translates host scale and zoom intents into zoom map calls.
//
// Like the presentation store it is not synchronised and must only be used
// from the engine's UI sequence. Its methods are re-entrant: an attach hook
// may call back into SetDefaultZoom or SetWebContents.
type Coordinator struct {
	store         *presentation.Store
	defaultFactor float32
	page          Page
	hooks         []AttachHook
	logger        *log.Logger
}

// NewCoordinator creates an unbound coordinator with a default zoom factor
// of 1.0.
func NewCoordinator(store *presentation.Store, opts ...Option) *Coordinator {
	if store == nil {
		store = presentation.NewStore()
	}
	c := &Coordinator{
		store:         store,
		defaultFactor: 1.0,
		logger:        log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the presentation store the coordinator writes to.
func (c *Coordinator) Store() *presentation.Store {
	return c.store
}

// DefaultZoomFactor returns the factor that is applied to attached pages.
func (c *Coordinator) DefaultZoomFactor() float32 {
	return c.defaultFactor
}

// State reports the page binding state.
func (c *Coordinator) State() BindingState {
	if c.page == nil {
		return Unbound
	}
	return Bound
}

// Bound reports whether a page is attached.
func (c *Coordinator) Bound() bool {
	return c.State() == Bound
}

// SetDeviceScaleFactor clamps the request into [1, 3] and stores it as both
// the device scale factor and the DPI.
func (c *Coordinator) SetDeviceScaleFactor(requested float32) {
	dsf := clampScaleFactor(requested)

	c.store.SetDeviceScaleFactor(dsf)
	// DPI mirrors the scale factor; the host never reports a physical DPI.
	c.store.SetDPI(dsf)
}

// SetDefaultZoom stores the factor (floored at 0.1) and, when a page is
// attached, applies the matching zoom level to its primary main frame and as
// its default zoom level. Without a page the factor is kept for the next
// attach.
func (c *Coordinator) SetDefaultZoom(requested float32) {
	c.defaultFactor = clampFactor(requested)

	if c.page == nil {
		return
	}
	c.apply(c.page)
}

// SetWebContents binds page as the active page. A nil page detaches. The
// coordinator never owns the page and drops its reference on detach.
func (c *Coordinator) SetWebContents(page Page) {
	c.page = page

	if page == nil {
		c.logger.Printf("zoom: page detached")
		return
	}
	c.onAttach(page)
}

// Configure is the renderer bring-up hook. It turns bitmap mode off and
// adopts the host DPI as the device scale factor.
func (c *Coordinator) Configure(dpi float32) {
	c.store.SetBitmapMode(false)
	c.SetDeviceScaleFactor(dpi)
}

func (c *Coordinator) onAttach(page Page) {
	c.logger.Printf("zoom: page attached, replaying factor %.3f", c.defaultFactor)
	c.SetDefaultZoom(c.defaultFactor)

	for _, hook := range c.hooks {
		// A hook may have rebound or detached the page.
		if c.page != page {
			return
		}
		hook(page)
	}
}

func (c *Coordinator) apply(page Page) {
	zoomMap := page.ZoomMap()
	if zoomMap == nil {
		return
	}

	level := Level(float64(c.defaultFactor))

	if frame, ok := page.PrimaryMainFrame(); ok {
		zoomMap.SetZoomLevel(frame, level)
	}
	zoomMap.SetDefaultZoomLevel(level)

	c.logger.Printf("zoom: applied level %.4f (factor %.3f)", level, c.defaultFactor)
}
