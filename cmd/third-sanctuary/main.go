package main

import (
	"flag"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/assets"
	"github.com/DeveloperRalsei/the-third-sanctuary/internal/scene"
	"github.com/DeveloperRalsei/the-third-sanctuary/internal/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to a scene.json (built-in default scene when empty)")
	assetDir := flag.String("assets", "", "Override the asset directory")
	pakPath := flag.String("pak", "", "Extract this .pak asset bundle into the asset directory before starting")
	fps := flag.Int("fps", 60, "Target frames per second")
	debugFlag := flag.Bool("debug", false, "Enable the orbit camera and verbose logging")
	flag.Parse()

	utils.DebugMode = *debugFlag
	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
	}

	cfg := scene.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = scene.LoadConfig(*configPath)
		if err != nil {
			utils.Error("Failed to load config: %v", err)
			os.Exit(1)
		}
	}
	if *assetDir != "" {
		cfg.AssetDir = *assetDir
	}

	if *pakPath != "" {
		utils.Info("Extracting asset bundle %s", *pakPath)
		if err := assets.ExtractPack(*pakPath, cfg.AssetDir); err != nil {
			utils.Error("Failed to extract bundle: %v", err)
			os.Exit(1)
		}
	}

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(1280, 720, "The Third Sanctuary")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(*fps))

	s, err := scene.New(cfg)
	if err != nil {
		utils.Error("Failed to build scene: %v", err)
		rl.CloseWindow()
		os.Exit(1)
	}
	defer s.Unload()

	utils.Info("Starting render loop")
	for !rl.WindowShouldClose() {
		s.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		s.Draw()
		if utils.DebugMode {
			rl.DrawFPS(10, 10)
		}
		rl.EndDrawing()
	}
}
