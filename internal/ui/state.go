package ui

import (
	"github.com/kyaoi/termbridge/internal/config"
	"github.com/kyaoi/termbridge/internal/page"
	"github.com/kyaoi/termbridge/internal/window"
	"github.com/kyaoi/termbridge/internal/zoom"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Coordinator *zoom.Coordinator
	Page        *page.Page
	Metrics     window.Metrics
	ConfigFile  string
	// Reload re-reads the configuration when ConfigFile changes.
	Reload func() (config.Config, error)
}
