package main

import (
	"github.com/kyaoi/termbridge/internal/presentation"
	"github.com/kyaoi/termbridge/internal/zoom"
)

var (
	store       = presentation.NewStore()
	coordinator = zoom.NewCoordinator(store)
)

func setDeviceScaleFactor(factor float32) {
	coordinator.SetDeviceScaleFactor(factor)
}

func setDefaultZoom(factor float32) {
	coordinator.SetDefaultZoom(factor)
}

func configureRenderer(dpi float32) {
	coordinator.Configure(dpi)
}

func bitmapMode() bool {
	return store.BitmapMode()
}
