package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/field"
)

// Config describes the whole scene: the layer table plus the knobs the
// reference configuration fixes. Loaded from scene.json when present.
type Config struct {
	Layers         []field.LayerSpec `json:"layers"`
	BaseSize       float64           `json:"baseSize"`
	SpacingX       float64           `json:"spacingX"`
	SpacingY       float64           `json:"spacingY"`
	StarCount      int               `json:"starCount"`
	StarRadius     float64           `json:"starRadius"`
	CameraDistance float64           `json:"cameraDistance"`
	AssetDir       string            `json:"assetDir"`
}

// DefaultConfig is the reference scene: four layers over a starfield.
func DefaultConfig() Config {
	return Config{
		Layers:         field.DefaultLayers(),
		BaseSize:       1.2,
		SpacingX:       field.DefaultSpacingX,
		SpacingY:       field.DefaultSpacingY,
		StarCount:      800,
		StarRadius:     60,
		CameraDistance: 14,
		AssetDir:       "assets",
	}
}

// LoadConfig reads a scene.json, filling unset knobs from the default
// configuration. The layer table is validated up front so a malformed
// config fails at startup, not mid-build.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scene config %s: %w", path, err)
	}

	if cfg.BaseSize <= 0 {
		cfg.BaseSize = DefaultConfig().BaseSize
	}
	if cfg.SpacingX <= 0 {
		cfg.SpacingX = field.DefaultSpacingX
	}
	if cfg.SpacingY <= 0 {
		cfg.SpacingY = field.DefaultSpacingY
	}
	for _, spec := range cfg.Layers {
		if err := spec.Validate(); err != nil {
			return Config{}, fmt.Errorf("scene config %s: %w", path, err)
		}
	}
	return cfg, nil
}
