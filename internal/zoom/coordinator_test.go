package zoom_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/termbridge/internal/page"
	"github.com/kyaoi/termbridge/internal/presentation"
	"github.com/kyaoi/termbridge/internal/zoom"
)

type call struct {
	method string
	frame  zoom.FrameID
	level  float64
}

type recordingMap struct {
	calls []call
}

func (m *recordingMap) SetZoomLevel(frame zoom.FrameID, level float64) {
	m.calls = append(m.calls, call{method: "SetZoomLevel", frame: frame, level: level})
}

func (m *recordingMap) SetDefaultZoomLevel(level float64) {
	m.calls = append(m.calls, call{method: "SetDefaultZoomLevel", level: level})
}

type fakePage struct {
	frame    zoom.FrameID
	hasFrame bool
	zoomMap  *recordingMap
}

func (p *fakePage) PrimaryMainFrame() (zoom.FrameID, bool) {
	return p.frame, p.hasFrame
}

func (p *fakePage) ZoomMap() zoom.ZoomMap {
	if p.zoomMap == nil {
		return nil
	}
	return p.zoomMap
}

func levelOf(factor float32) float64 {
	return zoom.Level(float64(factor))
}

func TestSetDeviceScaleFactorClampsAndMirrorsDPI(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{in: 5, want: 3},
		{in: 0.5, want: 1},
		{in: 2.25, want: 2.25},
	}
	for _, tt := range tests {
		store := presentation.NewStore()
		c := zoom.NewCoordinator(store)

		c.SetDeviceScaleFactor(tt.in)

		assert.Equal(t, tt.want, store.DeviceScaleFactor(), "in=%v", tt.in)
		assert.Equal(t, tt.want, store.DPI(), "in=%v", tt.in)
	}
}

func TestSetDefaultZoomFloor(t *testing.T) {
	c := zoom.NewCoordinator(presentation.NewStore())
	assert.Equal(t, float32(1), c.DefaultZoomFactor())

	c.SetDefaultZoom(0.05)
	assert.Equal(t, float32(0.1), c.DefaultZoomFactor())

	c.SetDefaultZoom(7)
	assert.Equal(t, float32(7), c.DefaultZoomFactor())
}

func TestSetDefaultZoomUnboundIsQueued(t *testing.T) {
	c := zoom.NewCoordinator(presentation.NewStore())
	require.Equal(t, zoom.Unbound, c.State())

	require.NotPanics(t, func() { c.SetDefaultZoom(2.4) })
	assert.Equal(t, float32(2.4), c.DefaultZoomFactor())
	assert.False(t, c.Bound())
}

func TestAttachReplaysDefaultZoom(t *testing.T) {
	c := zoom.NewCoordinator(presentation.NewStore())
	c.SetDefaultZoom(2.4)

	zm := &recordingMap{}
	c.SetWebContents(&fakePage{frame: "frame-1", hasFrame: true, zoomMap: zm})

	want := levelOf(2.4)
	assert.Equal(t, zoom.Bound, c.State())
	assert.Equal(t, []call{
		{method: "SetZoomLevel", frame: "frame-1", level: want},
		{method: "SetDefaultZoomLevel", level: want},
	}, zm.calls)
}

func TestAttachWithoutMainFrameSetsDefaultOnly(t *testing.T) {
	c := zoom.NewCoordinator(presentation.NewStore())
	c.SetDefaultZoom(1.44)

	zm := &recordingMap{}
	c.SetWebContents(&fakePage{zoomMap: zm})

	assert.Equal(t, []call{{method: "SetDefaultZoomLevel", level: levelOf(1.44)}}, zm.calls)
}

func TestMissingZoomMapIsNoop(t *testing.T) {
	c := zoom.NewCoordinator(presentation.NewStore())

	require.NotPanics(t, func() {
		c.SetWebContents(&fakePage{frame: "f", hasFrame: true})
		c.SetDefaultZoom(2)
	})
	assert.True(t, c.Bound())
	assert.Equal(t, float32(2), c.DefaultZoomFactor())
}

func TestDetachStopsPropagation(t *testing.T) {
	c := zoom.NewCoordinator(presentation.NewStore())
	zm := &recordingMap{}
	c.SetWebContents(&fakePage{zoomMap: zm})
	applied := len(zm.calls)

	c.SetWebContents(nil)
	c.SetDefaultZoom(3)

	assert.Equal(t, zoom.Unbound, c.State())
	assert.Len(t, zm.calls, applied)
	assert.Equal(t, float32(3), c.DefaultZoomFactor())
}

func TestRebindReplaysOnNewPage(t *testing.T) {
	c := zoom.NewCoordinator(presentation.NewStore())
	c.SetDefaultZoom(1.2)

	first := page.New("first")
	c.SetWebContents(first)
	second := page.New("second")
	c.SetWebContents(second)

	mainID, ok := second.PrimaryMainFrame()
	require.True(t, ok)
	level, ok := second.HostZoomMap().Override(mainID)
	require.True(t, ok)
	assert.InDelta(t, 1.0, level, 1e-6)
	assert.InDelta(t, 1.0, second.HostZoomMap().DefaultLevel(), 1e-6)
}

func TestSetDefaultZoomIdempotent(t *testing.T) {
	once := page.New("once")
	twice := page.New("twice")

	c1 := zoom.NewCoordinator(presentation.NewStore())
	c1.SetWebContents(once)
	c1.SetDefaultZoom(1.75)

	c2 := zoom.NewCoordinator(presentation.NewStore())
	c2.SetWebContents(twice)
	c2.SetDefaultZoom(1.75)
	c2.SetDefaultZoom(1.75)

	s1 := once.HostZoomMap().Snapshot()
	s2 := twice.HostZoomMap().Snapshot()
	assert.Equal(t, s1.DefaultLevel, s2.DefaultLevel)
	require.Len(t, s2.Levels, 1)
	mainID, _ := twice.PrimaryMainFrame()
	assert.Equal(t, s1.DefaultLevel, s2.Levels[mainID])
}

func TestSubframesFollowDefaultLevel(t *testing.T) {
	p := page.New("frames")
	sub := p.AddSubframe("ad")
	c := zoom.NewCoordinator(presentation.NewStore())
	c.SetDefaultZoom(0.5)
	c.SetWebContents(p)

	assert.InDelta(t, levelOf(0.5), p.HostZoomMap().Resolve(sub.ID), 1e-12)
}

func TestAttachHookMayReenter(t *testing.T) {
	var seen []zoom.Page
	var c *zoom.Coordinator
	c = zoom.NewCoordinator(presentation.NewStore(), zoom.WithAttachHook(func(p zoom.Page) {
		seen = append(seen, p)
		c.SetDefaultZoom(1.2)
	}))
	c.SetDefaultZoom(3)

	p := page.New("hooked")
	c.SetWebContents(p)

	require.Len(t, seen, 1)
	assert.Equal(t, float32(1.2), c.DefaultZoomFactor())
	assert.InDelta(t, 1.0, p.HostZoomMap().DefaultLevel(), 1e-6)
}

func TestAttachHookStopsWhenRebound(t *testing.T) {
	var calls int
	var c *zoom.Coordinator
	c = zoom.NewCoordinator(presentation.NewStore(),
		zoom.WithAttachHook(func(zoom.Page) {
			calls++
			c.SetWebContents(nil)
		}),
		zoom.WithAttachHook(func(zoom.Page) { calls++ }),
	)

	c.SetWebContents(page.New("short-lived"))

	assert.Equal(t, 1, calls)
	assert.False(t, c.Bound())
}

func TestConfigureForcesBitmapOffAndClamps(t *testing.T) {
	store := presentation.NewStore()
	store.SetBitmapMode(true)
	c := zoom.NewCoordinator(store)

	c.Configure(0.25)

	assert.False(t, store.BitmapMode())
	assert.Equal(t, float32(1), store.DeviceScaleFactor())
	assert.Equal(t, float32(1), store.DPI())
	assert.Same(t, store, c.Store())
}

func TestLoggerReceivesAppliedLevels(t *testing.T) {
	var buf bytes.Buffer
	c := zoom.NewCoordinator(presentation.NewStore(), zoom.WithLogger(log.New(&buf, "", 0)))

	c.SetWebContents(page.New("logged"))
	c.SetWebContents(nil)

	assert.Contains(t, buf.String(), "zoom: page attached")
	assert.Contains(t, buf.String(), "zoom: applied level 0.0000")
	assert.Contains(t, buf.String(), "zoom: page detached")
}
