package page

import (
	"maps"

	"github.com/kyaoi/termbridge/internal/zoom"
)

// ZoomMap is an in-memory host zoom map: explicit per-frame overrides plus a
// default level for every other frame.
type ZoomMap struct {
	defaultLevel float64
	levels       map[zoom.FrameID]float64
}

// Snapshot is a comparable copy of a ZoomMap's contents.
type Snapshot struct {
	DefaultLevel float64
	Levels       map[zoom.FrameID]float64
}

// NewZoomMap returns an empty zoom map at level 0.
func NewZoomMap() *ZoomMap {
	return &ZoomMap{levels: make(map[zoom.FrameID]float64)}
}

// SetZoomLevel implements zoom.ZoomMap.
func (m *ZoomMap) SetZoomLevel(frame zoom.FrameID, level float64) {
	m.levels[frame] = level
}

// SetDefaultZoomLevel implements zoom.ZoomMap.
func (m *ZoomMap) SetDefaultZoomLevel(level float64) {
	m.defaultLevel = level
}

func (m *ZoomMap) DefaultLevel() float64 {
	return m.defaultLevel
}

// Override returns the explicit level stored for frame, if any.
func (m *ZoomMap) Override(frame zoom.FrameID) (float64, bool) {
	level, ok := m.levels[frame]
	return level, ok
}

// Resolve returns the level a frame renders at.
func (m *ZoomMap) Resolve(frame zoom.FrameID) float64 {
	if level, ok := m.levels[frame]; ok {
		return level
	}
	return m.defaultLevel
}

func (m *ZoomMap) Snapshot() Snapshot {
	return Snapshot{
		DefaultLevel: m.defaultLevel,
		Levels:       maps.Clone(m.levels),
	}
}
