package scene

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/shade"
	"github.com/DeveloperRalsei/the-third-sanctuary/internal/utils"
)

// PanelShader is the compiled compositing program shared by every
// panel, with its uniform locations resolved once. Each panel owns its
// uniform values and uploads them right before its draw call.
type PanelShader struct {
	Shader rl.Shader

	locBackground int32
	locScroll     int32
	locTint       int32
}

// LoadPanelShader compiles the panel compositing program.
func LoadPanelShader() (*PanelShader, error) {
	sh := rl.LoadShaderFromMemory(shade.VertexSource, shade.FragmentSource)
	if sh.ID == 0 {
		return nil, errors.New("panel shader failed to compile")
	}

	ps := &PanelShader{
		Shader:        sh,
		locBackground: rl.GetShaderLocation(sh, shade.UniformBackground),
		locScroll:     rl.GetShaderLocation(sh, shade.UniformScroll),
		locTint:       rl.GetShaderLocation(sh, shade.UniformTint),
	}
	utils.Debug("Shader: panel program loaded (ID: %d)", sh.ID)
	return ps, nil
}

// BindBackground points the sampler at the shared background texture.
// Called once per frame; the texture is the same for all panels.
func (s *PanelShader) BindBackground(tex rl.Texture2D) {
	if s.locBackground != -1 {
		rl.SetShaderValueTexture(s.Shader, s.locBackground, tex)
	}
}

// Apply uploads one panel's uniform block.
func (s *PanelShader) Apply(scrollX, scrollY, tint float64) {
	if s.locScroll != -1 {
		rl.SetShaderValue(s.Shader, s.locScroll,
			[]float32{float32(scrollX), float32(scrollY)}, rl.ShaderUniformVec2)
	}
	if s.locTint != -1 {
		rl.SetShaderValue(s.Shader, s.locTint,
			[]float32{float32(tint)}, rl.ShaderUniformFloat)
	}
}

func (s *PanelShader) Unload() {
	rl.UnloadShader(s.Shader)
}
