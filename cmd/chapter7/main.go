// Command chapter7 runs the error-handling chapter. It always ends with a
// *CLIError, so its exit status is 1 on a normal run.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/marcodamonte/chapters/chapter"
	"github.com/marcodamonte/chapters/config"
	errorhandling "github.com/marcodamonte/chapters/error-handling"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chapter7", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := log.New(stderr, "", 0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("[main] %v", err)
		return 2
	}

	files := errorhandling.Files{Data: cfg.Files.Data, Username: cfg.Files.Username}
	err = errorhandling.Run(chapter.NewPrinter(stdout, cfg.Color), files)
	if err == nil {
		return 0
	}
	var cliErr *errorhandling.CLIError
	if errors.As(err, &cliErr) {
		logger.Printf("Error: %v", cliErr)
	} else {
		logger.Printf("[main] %v", err)
	}
	return 1
}
