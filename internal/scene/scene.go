// Package scene builds and drives the prophecy panel field: layered
// billboards over a starfield, composited by the panel shader and
// animated at a fixed cadence decoupled from the render frame rate.
package scene

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/assets"
	"github.com/DeveloperRalsei/the-third-sanctuary/internal/field"
	"github.com/DeveloperRalsei/the-third-sanctuary/internal/utils"
)

type Scene struct {
	Layers []*Layer
	Stars  *Starfield
	Camera rl.Camera3D

	shader     *PanelShader
	background rl.Texture2D
	pool       []rl.Texture2D

	orbit         *OrbitControl
	lastFrameTime time.Time
}

// New loads every shared resource and builds all layers. Resource load
// failures propagate; the scene either comes up whole or not at all.
func New(cfg Config) (*Scene, error) {
	shader, err := LoadPanelShader()
	if err != nil {
		return nil, err
	}

	bgPath, err := assets.ResolveBackground(cfg.AssetDir)
	if err != nil {
		return nil, err
	}
	background, err := assets.LoadBackground(bgPath)
	if err != nil {
		return nil, err
	}

	pool := make([]rl.Texture2D, 0, field.PoolSize)
	for i := 1; i <= field.PoolSize; i++ {
		path, err := assets.ResolvePanel(cfg.AssetDir, i)
		if err != nil {
			return nil, err
		}
		tex, err := assets.LoadTexture(path)
		if err != nil {
			return nil, fmt.Errorf("panel image %d: %w", i, err)
		}
		pool = append(pool, tex)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	s := &Scene{
		shader:        shader,
		background:    background,
		pool:          pool,
		Stars:         NewStarfield(cfg.StarCount, cfg.StarRadius, rng),
		lastFrameTime: time.Now(),
	}

	opts := BuildOptions{
		Shader:   shader,
		Pool:     pool,
		BaseSize: cfg.BaseSize,
		SpacingX: cfg.SpacingX,
		SpacingY: cfg.SpacingY,
		Rand:     rng,
	}
	for _, spec := range cfg.Layers {
		layer, err := BuildLayer(spec, opts)
		if err != nil {
			s.Unload()
			return nil, err
		}
		utils.Debug("Scene: layer depth=%g panels=%d", spec.Depth, len(layer.Panels))
		s.Layers = append(s.Layers, layer)
	}

	s.Camera = rl.Camera3D{
		Position:   rl.NewVector3(0, 0, float32(cfg.CameraDistance)),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	if utils.DebugMode {
		s.orbit = NewOrbitControl(cfg.CameraDistance)
	}

	utils.Info("Scene: %d layers, %d panel images, %d stars",
		len(s.Layers), len(pool), cfg.StarCount)
	return s, nil
}

// Update measures the raw frame delta and feeds it to every panel and
// the starfield. Panels throttle themselves to the fixed step; the
// delta here is wall-clock and may be arbitrarily large after a stall.
func (s *Scene) Update() {
	now := time.Now()
	dt := now.Sub(s.lastFrameTime).Seconds()
	s.lastFrameTime = now

	for _, layer := range s.Layers {
		layer.OnFrame(dt)
	}
	s.Stars.Update(dt)

	if s.orbit != nil {
		s.orbit.Update()
		s.orbit.Apply(&s.Camera)
	}
}

// Draw renders the starfield and every layer back to front.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	s.Stars.Draw()

	s.shader.BindBackground(s.background)
	for i := len(s.Layers) - 1; i >= 0; i-- {
		s.Layers[i].Draw(s.shader)
	}
	rl.EndMode3D()
}

func (s *Scene) Unload() {
	for _, layer := range s.Layers {
		layer.Unload()
	}
	for _, tex := range s.pool {
		rl.UnloadTexture(tex)
	}
	rl.UnloadTexture(s.background)
	s.shader.Unload()
}
