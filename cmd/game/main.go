package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/soradsauce/ironvein/internal/config"
	"github.com/soradsauce/ironvein/internal/game"
)

func main() {
	var configPath string
	var seed int64
	flag.StringVar(&configPath, "config", "", "world config YAML (default: built-in)")
	flag.Int64Var(&seed, "seed", 0, "world seed (0 = from clock)")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.NewWithConfig(cfg, seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Ironvein")
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
