package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyaoi/termbridge/internal/presentation"
	"github.com/kyaoi/termbridge/internal/zoom"
)

func reset(t *testing.T) {
	t.Helper()
	store = presentation.NewStore()
	coordinator = zoom.NewCoordinator(store)
}

func TestSetDeviceScaleFactorEntry(t *testing.T) {
	reset(t)

	setDeviceScaleFactor(5)

	assert.Equal(t, float32(3), store.DeviceScaleFactor())
	assert.Equal(t, float32(3), store.DPI())
}

func TestSetDefaultZoomEntryWithoutPage(t *testing.T) {
	reset(t)

	setDefaultZoom(0.05)

	assert.Equal(t, float32(0.1), coordinator.DefaultZoomFactor())
	assert.False(t, coordinator.Bound())
}

func TestConfigureEntry(t *testing.T) {
	reset(t)
	store.SetBitmapMode(true)

	configureRenderer(2)

	assert.False(t, store.BitmapMode())
	assert.Equal(t, float32(2), store.DPI())
}

func TestBitmapModeEntry(t *testing.T) {
	reset(t)
	assert.False(t, bitmapMode())

	store.SetBitmapMode(true)
	assert.True(t, bitmapMode())

	configureRenderer(1)
	assert.False(t, bitmapMode())
}
