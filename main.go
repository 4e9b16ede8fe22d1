package main

import (
	"flag"
	"log"

	"github.com/decker502/lotofcars/pkg/app"
	"github.com/decker502/lotofcars/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	debug := flag.Bool("debug", false, "显示车辆曲线调试层")
	seed := flag.Int64("seed", 1, "车辆生成随机种子")
	configPath := flag.String("config", "", "外部 YAML 配置文件（默认使用内置配置）")
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Debug:      *debug,
		Seed:       *seed,
		ConfigPath: *configPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	window := game.GameConfig().Window
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
