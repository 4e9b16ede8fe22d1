// lotofcars-term 在终端中运行停车场模拟
//
// 用法:
//
//	lotofcars-term [-config path] [-seed n] [-verbose]
//
// 键位: wasd/hjkl 移动，f 立即生成车辆，q/Esc 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/lotofcars/pkg/config"
	"github.com/decker502/lotofcars/pkg/termview"
	"github.com/decker502/lotofcars/pkg/world"
	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	configPath := flag.String("config", "", "外部 YAML 配置文件（默认使用内置默认值）")
	seed := flag.Int64("seed", 1, "车辆生成随机种子")
	verbose := flag.Bool("verbose", false, "把日志写入 lotofcars-term.log")
	flag.Parse()

	if *verbose {
		f, err := os.OpenFile("lotofcars-term.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		// 终端被 tcell 接管，日志不能写到 stderr
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := run(cfg, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.GameConfig, seed int64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	tiers := make([]string, 0, len(cfg.Spawn.Tiers))
	for _, tier := range cfg.Spawn.Tiers {
		tiers = append(tiers, tier.Name)
	}
	renderer := termview.NewRenderer(screen, tiers)

	w := world.New(cfg, rand.New(rand.NewSource(seed)))
	intent := termview.NewHeldIntent(termview.DefaultHold)
	w.SetIntentSource(intent)
	w.Resize(renderer.ViewportSize())

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ev.Key() != tcell.KeyRune {
					continue
				}
				switch r := ev.Rune(); r {
				case 'q':
					return nil
				case 'f':
					if id, ok := w.TriggerSpawn(); ok {
						log.Printf("[Term] Debug spawn: car %d", id)
					}
				default:
					if dir, ok := termview.KeyDirection(r); ok {
						intent.Press(dir)
					}
				}
			case *tcell.EventResize:
				screen.Sync()
				w.Resize(renderer.ViewportSize())
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			intent.Tick(dt)
			w.Update(dt)
			renderer.Draw(w)
		}
	}
}
