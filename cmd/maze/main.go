package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/yanfrimmel/maze/internal/audio"
	"github.com/yanfrimmel/maze/internal/border"
	"github.com/yanfrimmel/maze/internal/config"
	"github.com/yanfrimmel/maze/internal/game"
	ebitenrender "github.com/yanfrimmel/maze/internal/render/ebiten"
)

func main() {
	shaderPath := flag.String("shader", "", "path to a Kage border shader overriding the built-in one")
	flag.Parse()

	cfg := config.Load()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Rand seed: %d", seed)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// The border shader ships embedded; -shader swaps in an external file.
	shaderSrc := border.ShaderSource
	if *shaderPath != "" {
		src, err := os.ReadFile(*shaderPath)
		if err != nil {
			log.Printf("Warning: Failed to load shader %s (%v), using built-in", *shaderPath, err)
		} else {
			shaderSrc = src
		}
	}

	sounds := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sounds.Initialize(); err != nil {
		log.Printf("Warning: Failed to initialize audio: %v", err)
	}
	defer sounds.Cleanup()

	gameManager, err := game.NewManager(cfg, seed, renderer, inputMgr, sounds, shaderSrc)
	if err != nil {
		log.Fatalf("Failed to set up game: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	engine.SetWindowTitle("Maze")
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
