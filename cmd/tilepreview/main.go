// Command tilepreview runs the tile overlay demo in a terminal, one tile per
// pair of character cells.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/tileindicators/internal/config"
	"chosenoffset.com/tileindicators/internal/game"
	"chosenoffset.com/tileindicators/internal/logging"
	"chosenoffset.com/tileindicators/internal/render/terminal"
)

func main() {
	profiles := flag.String("profiles", config.DefaultProfile+",alt", "comma-separated settings profiles, cycled with p")
	logFile := flag.String("log", "tilepreview.log", "log file path")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(strings.Split(*profiles, ","), *logFile, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(profiles []string, logFile string, debug bool) error {
	// stderr shares the terminal with the screen, so only log to the file
	logger := logging.New(logging.Options{File: logFile, Debug: debug})
	defer logging.Sync(logger)

	settings, err := game.NewManager(profiles, game.StoreFactory("tileindicators", logger), logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	input := terminal.NewInputManager()
	engine := terminal.NewEngine(screen, input)

	// The HUD sits above the grid
	proj := game.GridProjector{CellWidth: 4, CellHeight: 2, Origin: image.Pt(0, 5)}
	world := game.NewWorld(20, 12, proj, config.GameTickLength)
	g := game.NewGame(world, settings, terminal.NewRenderer(), input, logger)
	g.LineHeight = 1
	g.TextMargin = 0

	logger.Infow("Starting", "profile", settings.Profile())
	return engine.RunGame(g)
}
