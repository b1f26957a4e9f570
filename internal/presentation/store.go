// Package presentation holds the process-wide presentation parameters shared
// between the terminal host and the browser engine.
package presentation

// State is a copy of the presentation parameters at one point in time.
type State struct {
	BitmapMode        bool
	DeviceScaleFactor float32
	DPI               float32
}

// Store is the single source of truth for bitmap mode, device scale factor
// and DPI. Values are stored verbatim; range checks belong to the caller.
//
// A Store is not synchronised. All calls must come from the sequence that
// owns the engine's page objects.
type Store struct {
	bitmapMode        bool
	deviceScaleFactor float32
	dpi               float32
}

// NewStore returns a store in its process start state.
func NewStore() *Store {
	return &Store{
		bitmapMode:        false,
		deviceScaleFactor: 1.0,
		dpi:               0.0,
	}
}

// DPI returns the current dots-per-inch value.
func (s *Store) DPI() float32 {
	return s.dpi
}

// DeviceScaleFactor returns the current logical to physical pixel ratio.
func (s *Store) DeviceScaleFactor() float32 {
	return s.deviceScaleFactor
}

// BitmapMode reports whether rendering falls back to pixel bitmaps.
func (s *Store) BitmapMode() bool {
	return s.bitmapMode
}

// SetDeviceScaleFactor stores the scale factor as given.
func (s *Store) SetDeviceScaleFactor(value float32) {
	s.deviceScaleFactor = value
}

// SetDPI stores the DPI as given.
func (s *Store) SetDPI(value float32) {
	s.dpi = value
}

// SetBitmapMode switches pixel bitmap rendering on or off.
func (s *Store) SetBitmapMode(value bool) {
	s.bitmapMode = value
}

// Snapshot returns the current values.
func (s *Store) Snapshot() State {
	return State{
		BitmapMode:        s.bitmapMode,
		DeviceScaleFactor: s.deviceScaleFactor,
		DPI:               s.dpi,
	}
}
