// Command chapter9 runs the metaprogramming chapter.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/marcodamonte/chapters/chapter"
	"github.com/marcodamonte/chapters/codegen"
	"github.com/marcodamonte/chapters/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chapter9", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	color := fs.String("color", "", "banner styling: auto, always or never")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := log.New(stderr, "", 0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("[main] %v", err)
		return 2
	}
	if *color != "" {
		mode, err := chapter.ParseColorMode(*color)
		if err != nil {
			logger.Printf("[main] %v", err)
			return 2
		}
		cfg.Color = mode
	}

	if err := codegen.Run(chapter.NewPrinter(stdout, cfg.Color)); err != nil {
		logger.Printf("[main] %v", err)
		return 1
	}
	return 0
}
