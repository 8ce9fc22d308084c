// Package mobile is the ebitenmobile bind target for Android and iOS:
//
//	ebitenmobile bind -target android -javapkg com.feathernestz.match3 -o match3.aar ./mobile
package mobile

import (
	"log"
	"runtime"

	"match3/internal/app"
	"match3/internal/config"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	cfg, err := config.Load("")
	if err != nil {
		log.Printf("SHELL: config: %v; using defaults", err)
		cfg = config.Default()
	}
	a, err := app.Start(runtime.GOOS, cfg, nil)
	if err != nil {
		log.Fatalf("SHELL: %v", err)
	}
	mobile.SetGame(a.Game())
}

// Dummy forces gomobile to compile this package.
func Dummy() {}
