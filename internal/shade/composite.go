package shade

import (
	"image"
	"image/color"
	"math"
)

// Fragment is the result of the compositing rule for one texel.
// Discarded fragments write nothing to the framebuffer.
type Fragment struct {
	R, G, B, A float64
	Discarded  bool
}

// Composite applies the panel shading rule to a single texel: panel is
// the sample from the panel image, bg the sample from the background
// image at the scrolled coordinate, tint the layer's tint level. All
// channels are normalized to [0, 1]; output channels are clamped.
//
// This mirrors FragmentSource texel for texel and is the source of
// truth the GLSL is checked against.
func Composite(panel, bg color.NRGBA, tint float64) Fragment {
	pa := float64(panel.A) / 255
	if pa >= CutoutThreshold {
		return Fragment{Discarded: true}
	}
	gray := TintScale * tint
	return Fragment{
		R: clamp01(float64(bg.R)/255 + BiasR + gray),
		G: clamp01(float64(bg.G)/255 + BiasG + gray),
		B: clamp01(float64(bg.B)/255 + BiasB + gray),
		A: float64(bg.A) / 255,
	}
}

// CompositeImage runs the rule over a whole panel image against a
// wrapped background, returning the flattened result. scrollX/scrollY
// are in background texels; sampling repeats in both axes the way the
// GPU texture does. Discarded texels come out fully transparent black.
func CompositeImage(panel *image.NRGBA, bg *image.NRGBA, scrollX, scrollY int, tint float64) *image.NRGBA {
	pb := panel.Bounds()
	bb := bg.Bounds()
	out := image.NewNRGBA(pb)
	for y := pb.Min.Y; y < pb.Max.Y; y++ {
		for x := pb.Min.X; x < pb.Max.X; x++ {
			ps := panel.NRGBAAt(x, y)
			bs := bg.NRGBAAt(
				bb.Min.X+wrap(x-pb.Min.X+scrollX, bb.Dx()),
				bb.Min.Y+wrap(y-pb.Min.Y+scrollY, bb.Dy()),
			)
			frag := Composite(ps, bs, tint)
			if frag.Discarded {
				continue
			}
			out.SetNRGBA(x, y, color.NRGBA{
				R: uint8(math.Round(frag.R * 255)),
				G: uint8(math.Round(frag.G * 255)),
				B: uint8(math.Round(frag.B * 255)),
				A: uint8(math.Round(frag.A * 255)),
			})
		}
	}
	return out
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
