package app

import (
	"log"

	"github.com/kyaoi/termbridge/internal/config"
	"github.com/kyaoi/termbridge/internal/page"
	"github.com/kyaoi/termbridge/internal/presentation"
	"github.com/kyaoi/termbridge/internal/ui"
	"github.com/kyaoi/termbridge/internal/window"
	"github.com/kyaoi/termbridge/internal/zoom"
)

const startPage = "about:blank"

// Session is the explicitly constructed bridge state for one host process.
type Session struct {
	Store       *presentation.Store
	Coordinator *zoom.Coordinator
	Page        *page.Page
	Metrics     window.Metrics
	Config      config.Config
}

// BringUp runs the renderer bring-up sequence: Configure with the host DPI
// (or the configured scale factor), bitmap mode from the config, the
// default zoom (clamped like any other request), and finally the attach of
// the first page.
func BringUp(cfg config.Config, metrics window.Metrics, logger *log.Logger) *Session {
	store := presentation.NewStore()
	coordinator := zoom.NewCoordinator(store, zoom.WithLogger(logger))

	dpi := metrics.DPI
	if cfg.ScaleFactor > 0 {
		dpi = cfg.ScaleFactor
	}
	coordinator.Configure(dpi)

	// Configure always resets bitmap mode; the host opts back in afterwards.
	if cfg.Bitmap {
		store.SetBitmapMode(true)
	}

	coordinator.SetDefaultZoom(cfg.Zoom)

	pg := page.New(startPage)
	coordinator.SetWebContents(pg)

	logger.Printf("bring-up: dpi=%.4f dsf=%.2f zoom=%.2f bitmap=%t",
		metrics.DPI, store.DeviceScaleFactor(), coordinator.DefaultZoomFactor(), store.BitmapMode())

	return &Session{
		Store:       store,
		Coordinator: coordinator,
		Page:        pg,
		Metrics:     metrics,
		Config:      cfg,
	}
}

// UIState prepares the state used to bootstrap the host model.
func (s *Session) UIState() ui.State {
	return ui.State{
		Coordinator: s.Coordinator,
		Page:        s.Page,
		Metrics:     s.Metrics,
		ConfigFile:  s.Config.ConfigFile,
		Reload: func() (config.Config, error) {
			return config.Reload(s.Config)
		},
	}
}
