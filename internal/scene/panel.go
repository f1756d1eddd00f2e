package scene

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/field"
)

// Panel is one billboard of the field: a textured quad whose animation
// state lives in field.PanelState and whose GPU side is a raylib model
// bound to the shared compositing shader.
type Panel struct {
	State *field.PanelState

	X    float64 // grid position, fixed at creation
	Tint float64

	width  float64
	height float64
	model  rl.Model
}

// NewPanel builds a panel showing tex at grid position (x, y), sized
// baseSize tall with the texture's aspect ratio. A texture with no
// usable dimensions falls back to a square quad rather than failing.
func NewPanel(shader *PanelShader, tex rl.Texture2D, baseSize, tint, x, y float64, rng *rand.Rand) *Panel {
	aspect := 1.0
	if tex.Width > 0 && tex.Height > 0 {
		aspect = float64(tex.Width) / float64(tex.Height)
	}

	mesh := rl.GenMeshPlane(1, 1, 1, 1)
	model := rl.LoadModelFromMesh(mesh)
	model.Materials.Shader = shader.Shader
	model.Materials.Maps.Texture = tex

	return &Panel{
		State:  field.NewPanelState(y, rng),
		X:      x,
		Tint:   tint,
		width:  aspect * baseSize,
		height: baseSize,
		model:  model,
	}
}

// OnFrame feeds raw frame time into the panel's fixed-step animation.
func (p *Panel) OnFrame(dt float64) {
	p.State.Advance(dt)
}

// Draw uploads the panel's uniform block and renders it at the layer
// depth. The unit plane mesh lies in XZ, so it is rotated upright and
// scaled to the panel's world size here.
func (p *Panel) Draw(shader *PanelShader, depth float64) {
	shader.Apply(p.State.ScrollX, p.State.ScrollY, p.Tint)
	rl.DrawModelEx(p.model,
		rl.NewVector3(float32(p.X), float32(p.State.Y), float32(depth)),
		rl.NewVector3(1, 0, 0), -90,
		rl.NewVector3(float32(p.width), 1, float32(p.height)),
		rl.White)
}

// Unload frees the panel's mesh. The texture and shader are owned by
// the shared pool, so their handles are detached first to keep
// UnloadModel from releasing them.
func (p *Panel) Unload() {
	p.model.Materials.Maps.Texture = rl.Texture2D{}
	p.model.Materials.Shader = rl.Shader{}
	rl.UnloadModel(p.model)
}
