// Command libtermbridge builds the bridge as a C shared library:
//
//	go build -buildmode=c-shared -o libtermbridge.so ./cmd/libtermbridge
//
// The exported functions operate on one process-wide store and coordinator
// and must be called from the engine's UI thread.
package main

/*
#include <stdbool.h>
*/
import "C"

//export set_device_scale_factor
func set_device_scale_factor(factor C.float) {
	setDeviceScaleFactor(float32(factor))
}

//export set_default_zoom
func set_default_zoom(factor C.float) {
	setDefaultZoom(float32(factor))
}

//export configure
func configure(dpi C.float) {
	configureRenderer(float32(dpi))
}

//export get_dpi
func get_dpi() C.float {
	return C.float(store.DPI())
}

//export get_device_scale_factor
func get_device_scale_factor() C.float {
	return C.float(store.DeviceScaleFactor())
}

//export bitmap_mode
func bitmap_mode() C.bool {
	return C.bool(bitmapMode())
}

func main() {}
