package scene

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/field"
)

// Layer is a depth-grouped collection of panels sharing a tint and
// grid layout. The layer's depth is applied once at draw time, so the
// panels themselves stay layer-relative.
type Layer struct {
	Spec   field.LayerSpec
	Panels []*Panel
}

// BuildOptions carries the shared resources layer construction needs.
type BuildOptions struct {
	Shader   *PanelShader
	Pool     []rl.Texture2D // panel image pool, cycled by index
	BaseSize float64
	SpacingX float64
	SpacingY float64
	Rand     *rand.Rand
}

// BuildLayer instantiates one panel per grid cell of spec. Specs with
// a non-positive panel or column count fail with field.ErrInvalidLayout.
func BuildLayer(spec field.LayerSpec, opts BuildOptions) (*Layer, error) {
	placements, err := field.Placements(spec, opts.SpacingX, opts.SpacingY)
	if err != nil {
		return nil, err
	}

	layer := &Layer{
		Spec:   spec,
		Panels: make([]*Panel, 0, len(placements)),
	}
	for i, pl := range placements {
		tex := opts.Pool[(field.ImageIndex(i)-1)%len(opts.Pool)]
		layer.Panels = append(layer.Panels,
			NewPanel(opts.Shader, tex, opts.BaseSize, spec.TintLevel, pl.X, pl.Y, opts.Rand))
	}
	return layer, nil
}

// OnFrame forwards the raw frame delta to every panel. Panels share no
// state, so order does not matter.
func (l *Layer) OnFrame(dt float64) {
	for _, p := range l.Panels {
		p.OnFrame(dt)
	}
}

// Draw renders the layer's panels at its depth.
func (l *Layer) Draw(shader *PanelShader) {
	for _, p := range l.Panels {
		p.Draw(shader, l.Spec.Depth)
	}
}

func (l *Layer) Unload() {
	for _, p := range l.Panels {
		p.Unload()
	}
}
