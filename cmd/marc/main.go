package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lungarella-raffaele/marc/internal/cli"
	"github.com/lungarella-raffaele/marc/internal/config"
	"github.com/lungarella-raffaele/marc/internal/store/jsonstore"
	"github.com/lungarella-raffaele/marc/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

func main() {
	// Root flags (apply to every subcommand)
	storePath := flag.String("store", "", "path to the store file (overrides config)")
	theme := flag.String("theme", "", "ui theme: classic, neon, mono")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if *storePath != "" {
		cfg.Store = *storePath
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *noColor {
		cfg.NoColor = true
	}

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, cfg.NoColor)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Store:   jsonstore.New(cfg.Store),
		Version: Version,
	})
	os.Exit(code)
}
