package main

import (
	"flag"
	"image"
	"log"
	"strings"

	"chosenoffset.com/tileindicators/internal/config"
	"chosenoffset.com/tileindicators/internal/game"
	"chosenoffset.com/tileindicators/internal/logging"
	ebitenrender "chosenoffset.com/tileindicators/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file to import on startup")
	profiles := flag.String("profiles", config.DefaultProfile+",alt", "comma-separated settings profiles, cycled with P")
	logFile := flag.String("log", "tileindicators.log", "log file path")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	screenWidth := 1280
	screenHeight := 800

	logger := logging.New(logging.Options{File: *logFile, Console: true, Debug: *debug})
	defer logging.Sync(logger)

	settings, err := game.NewManager(strings.Split(*profiles, ","), game.StoreFactory("tileindicators", logger), logger)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *configPath != "" {
		cfg, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", *configPath, err)
		}
		if err := settings.Config.Import(cfg, config.OriginFile); err != nil {
			log.Fatalf("Failed to import %s: %v", *configPath, err)
		}
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	proj := game.IsoProjector{TileWidth: 64, TileHeight: 32, Origin: image.Pt(screenWidth/2, 120)}
	world := game.NewWorld(16, 16, proj, config.GameTickLength)
	g := game.NewGame(world, settings, renderer, inputMgr, logger)

	// Set up the window
	engine.SetWindowSize(screenWidth, screenHeight)
	engine.SetWindowTitle("Tile Indicators")
	engine.SetWindowResizable(true)

	logger.Infow("Starting", "profile", settings.Profile())
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
