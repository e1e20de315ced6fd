package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CanvasCreator/internal/state"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(200, 150, 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func rgb(t *testing.T, img image.Image, x, y int) [3]uint8 {
	t.Helper()
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return [3]uint8{c.R, c.G, c.B}
}

func assertNear(t *testing.T, want, got [3]uint8) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(got[i]), 3, "channel %d: want %v got %v", i, want, got)
	}
}

func TestNewRejectsBadSizes(t *testing.T) {
	_, err := New(0, 100, 20)
	assert.Error(t, err)
	_, err = New(100, 100, 0)
	assert.Error(t, err)
}

func TestRenderBackgroundFollowsTheme(t *testing.T) {
	r := newRenderer(t)
	s := state.New(state.Options{})

	img, err := r.Render(s)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 150), img.Bounds())
	assertNear(t, [3]uint8{0xFF, 0xFF, 0xFF}, rgb(t, img, 10, 10))

	s.Theme = state.ThemeDark
	img, err = r.Render(s)
	require.NoError(t, err)
	assertNear(t, [3]uint8{0x2B, 0x30, 0x35}, rgb(t, img, 10, 10))
}

func TestRenderDrawsGrid(t *testing.T) {
	r := newRenderer(t)
	img, err := r.Render(state.New(state.Options{}))
	require.NoError(t, err)

	bg := rgb(t, img, 10, 10)
	left, right := rgb(t, img, 19, 10), rgb(t, img, 20, 10)
	assert.True(t, left != bg || right != bg, "grid line at x=20 differs from the background")
}

func TestRenderDrawsCircles(t *testing.T) {
	r := newRenderer(t)
	s := state.New(state.Options{})
	s, _ = state.Reduce(s, state.PointerDown(100, 75))
	s, _ = state.Reduce(s, state.PointerUp(100, 115))
	require.Equal(t, 1, s.Scene.Len())

	img, err := r.Render(s)
	require.NoError(t, err)
	assertNear(t, [3]uint8{0xFF, 0x6B, 0x6B}, rgb(t, img, 105, 105))
	assertNear(t, [3]uint8{0xFF, 0xFF, 0xFF}, rgb(t, img, 170, 10))
}

func TestRenderLaterCircleOnTop(t *testing.T) {
	r := newRenderer(t)
	s := state.New(state.Options{})
	for _, ev := range []state.Event{
		state.PointerDown(60, 60), state.PointerUp(60, 100),
		state.SelectColor("#118AB2"),
		state.PointerDown(130, 60), state.PointerUp(130, 100),
	} {
		s, _ = state.Reduce(s, ev)
	}
	require.Equal(t, 2, s.Scene.Len())

	img, err := r.Render(s)
	require.NoError(t, err)
	// (95, 70) lies in both circles.
	assertNear(t, [3]uint8{0x11, 0x8A, 0xB2}, rgb(t, img, 95, 70))
}

func TestRenderPreviewIsEphemeral(t *testing.T) {
	r := newRenderer(t)
	s := state.New(state.Options{})
	s, _ = state.Reduce(s, state.PointerDown(100, 75))
	s, _ = state.Reduce(s, state.PointerMove(100, 115))

	img, err := r.Render(s)
	require.NoError(t, err)
	assertNear(t, [3]uint8{0xFF, 0x6B, 0x6B}, rgb(t, img, 105, 95))
	assert.Equal(t, 0, s.Scene.Len())

	s, _ = state.Reduce(s, state.Event{Type: state.EventPointerLeave})
	img, err = r.Render(s)
	require.NoError(t, err)
	assertNear(t, [3]uint8{0xFF, 0xFF, 0xFF}, rgb(t, img, 105, 95))
}

func TestEncodePNG(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf, state.New(state.Options{})))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

// darkPixels counts pixels in [x0,x1)x[y0,y1) whose channels are all below
// 100. Label ink is dark; fills, outlines and grid lines are not.
func darkPixels(t *testing.T, img image.Image, x0, y0, x1, y1 int) int {
	t.Helper()
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := rgb(t, img, x, y)
			if c[0] < 100 && c[1] < 100 && c[2] < 100 {
				n++
			}
		}
	}
	return n
}

func TestRenderRadiusLabelOnlyOnLargeCircles(t *testing.T) {
	r := newRenderer(t)
	s := state.New(state.Options{})
	for _, ev := range []state.Event{
		state.PointerDown(50, 75), state.PointerUp(50, 115), // r 40, labelled
		state.PointerDown(150, 75), state.PointerUp(150, 100), // r 25, bare
	} {
		s, _ = state.Reduce(s, ev)
	}
	require.Equal(t, 2, s.Scene.Len())

	img, err := r.Render(s)
	require.NoError(t, err)
	assert.Positive(t, darkPixels(t, img, 38, 68, 63, 83), "label ink at the centre of the large circle")
	assert.Zero(t, darkPixels(t, img, 140, 67, 161, 84), "no label on the small circle")
	assertNear(t, [3]uint8{0xFF, 0x6B, 0x6B}, rgb(t, img, 150, 75))
}

func TestRenderPreviewRadiusLabel(t *testing.T) {
	r := newRenderer(t)
	s := state.New(state.Options{})
	s, _ = state.Reduce(s, state.PointerDown(50, 75))
	s, _ = state.Reduce(s, state.PointerMove(50, 95))

	img, err := r.Render(s)
	require.NoError(t, err)
	assert.Positive(t, darkPixels(t, img, 60, 70, 160, 90), "\"Radius: 20px\" beside the cursor")

	s, _ = state.Reduce(s, state.PointerUp(50, 95))
	img, err = r.Render(s)
	require.NoError(t, err)
	assert.Zero(t, darkPixels(t, img, 60, 70, 160, 90), "label gone once the drag ends")
}
