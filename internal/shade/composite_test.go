package shade_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/shade"
)

func TestCompositeCutoutRule(t *testing.T) {
	// Opaque panel texels become holes, transparent ones show the
	// tinted background with its alpha preserved.
	bg := color.NRGBA{R: 51, G: 102, B: 153, A: 204}

	cases := []struct {
		name       string
		panelAlpha uint8
		discarded  bool
	}{
		{"alpha 0.90 discarded", 230, true},
		{"alpha 0.30 kept", 76, false},
		{"alpha 0.50 discarded", 128, true},
		{"alpha 0.49 kept", 125, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			frag := shade.Composite(color.NRGBA{A: tc.panelAlpha}, bg, 0)
			assert.Equal(t, tc.discarded, frag.Discarded)
			if tc.discarded {
				return
			}
			assert.InDelta(t, 0.2, frag.R, 1e-9)     // 51/255 + 0 bias
			assert.InDelta(t, 0.4+0.1, frag.G, 1e-9) // green bias
			assert.InDelta(t, 1.0, frag.B, 1e-9)     // 0.6 + 0.6 bias, clamped
			assert.InDelta(t, 0.8, frag.A, 1e-9, "background alpha preserved")
		})
	}
}

func TestCompositeTintDarkens(t *testing.T) {
	bg := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	near := shade.Composite(color.NRGBA{A: 0}, bg, 0)
	far := shade.Composite(color.NRGBA{A: 0}, bg, -5)

	require.False(t, near.Discarded)
	require.False(t, far.Discarded)
	assert.InDelta(t, near.R-0.5, far.R, 1e-9)
	assert.InDelta(t, near.G-0.5, far.G, 1e-9)
	assert.InDelta(t, near.B-0.5, far.B, 1e-9)
	assert.Equal(t, near.A, far.A, "tint never touches alpha")
}

func TestCompositeClampsChannels(t *testing.T) {
	frag := shade.Composite(color.NRGBA{A: 0}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, -20)
	assert.GreaterOrEqual(t, frag.R, 0.0)
	assert.LessOrEqual(t, frag.B, 1.0)

	dark := shade.Composite(color.NRGBA{A: 0}, color.NRGBA{A: 255}, -20)
	assert.Equal(t, 0.0, dark.R)
	assert.Equal(t, 0.0, dark.G)
	assert.Equal(t, 0.0, dark.B)
}

func TestCompositeImageWrapsBackground(t *testing.T) {
	// 1x1 panel, fully transparent, over a 2x1 background: scrolling by
	// any odd offset must sample the second texel.
	panel := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	bg := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	bg.SetNRGBA(0, 0, color.NRGBA{R: 10, A: 255})
	bg.SetNRGBA(1, 0, color.NRGBA{R: 200, A: 255})

	for _, scroll := range []int{1, 3, -1, 101} {
		out := shade.CompositeImage(panel, bg, scroll, 0, 0)
		assert.Equal(t, uint8(200), out.NRGBAAt(0, 0).R, "scroll %d", scroll)
	}

	out := shade.CompositeImage(panel, bg, 2, 0, 0)
	assert.Equal(t, uint8(10), out.NRGBAAt(0, 0).R)
}

func TestCompositeImageOutputBytes(t *testing.T) {
	panel := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	panel.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255}) // hole
	panel.SetNRGBA(1, 0, color.NRGBA{})                               // window

	bg := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	bgPixel := color.NRGBA{R: 51, G: 102, B: 153, A: 204}
	bg.SetNRGBA(0, 0, bgPixel)
	bg.SetNRGBA(1, 0, bgPixel)

	out := shade.CompositeImage(panel, bg, 0, 0, 0)

	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(0, 0), "discarded texel writes nothing")
	assert.Equal(t, color.NRGBA{R: 51, G: 128, B: 255, A: 204}, out.NRGBAAt(1, 0))
}
