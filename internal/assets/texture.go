package assets

import (
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/utils"
)

// LoadTexture uploads an image file to the GPU. PNGs go through raylib
// directly; .tex containers are decoded on the CPU first.
func LoadTexture(path string) (rl.Texture2D, error) {
	if strings.HasSuffix(path, ".tex") {
		data, err := os.ReadFile(path)
		if err != nil {
			return rl.Texture2D{}, err
		}
		img, err := DecodeContainer(data)
		if err != nil {
			return rl.Texture2D{}, fmt.Errorf("%s: %w", path, err)
		}
		rlImg := rl.NewImageFromImage(img)
		tex := rl.LoadTextureFromImage(rlImg)
		rl.UnloadImage(rlImg)
		if tex.ID == 0 {
			return rl.Texture2D{}, fmt.Errorf("%s: GPU upload failed", path)
		}
		utils.Debug("Texture: decoded container %s (%dx%d)", path, tex.Width, tex.Height)
		return tex, nil
	}

	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("%s: texture load failed", path)
	}
	return tex, nil
}

// LoadBackground loads the shared background texture with repeat
// wrapping in both axes. The scroll offset is unbounded, so sampling
// must tile forever.
func LoadBackground(path string) (rl.Texture2D, error) {
	tex, err := LoadTexture(path)
	if err != nil {
		return rl.Texture2D{}, err
	}
	rl.SetTextureWrap(tex, rl.TextureWrapRepeat)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex, nil
}
