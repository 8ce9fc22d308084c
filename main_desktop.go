//go:build !android && !ios

package main

import (
	"log"
	"runtime"

	"match3/internal/app"
	"match3/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(runShell).Execute(); err != nil {
		log.Fatal(err)
	}
}

func runShell(cfg config.Config) error {
	log.Println("Desktop main() starting...")
	a, err := app.Start(runtime.GOOS, cfg, nil)
	if err != nil {
		return err
	}
	defer a.Close()
	return ebiten.RunGame(a.Game())
}

// newRootCmd resolves the config (profile file first, flags on top) and
// hands it to run.
func newRootCmd(run func(config.Config) error) *cobra.Command {
	var (
		engineDirs []string
		diagURL    string
		profile    string
	)
	cmd := &cobra.Command{
		Use:          "match3",
		Short:        "Match-3 game shell",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(profile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("engine-dir") {
				cfg.EngineDirs = engineDirs
			}
			if diagURL != "" {
				cfg.DiagURL = diagURL
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringArrayVar(&engineDirs, "engine-dir", nil, "directory to search for the engine library (repeatable)")
	cmd.Flags().StringVar(&diagURL, "diag-url", "", "websocket URL of a developer diagnostics console")
	cmd.Flags().StringVar(&profile, "profile", "", "config profile name")
	return cmd
}
