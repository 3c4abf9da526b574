// Command chapters runs one chapter demo, chosen by typing its number.
//
// Run:
//
//	go run .
//	echo 6 | go run . -color=never
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/marcodamonte/chapters/basics"
	"github.com/marcodamonte/chapters/chapter"
	"github.com/marcodamonte/chapters/collections"
	"github.com/marcodamonte/chapters/config"
	"github.com/marcodamonte/chapters/interfaces"
	"github.com/marcodamonte/chapters/ownership"
	revisited "github.com/marcodamonte/chapters/ownership-revisited"
)

const prompt = "Enter the chapter number to run the code"

// chapters is the selectable set. 4 is intentionally absent; 7 and 9 are
// standalone commands under cmd/.
var chapters = chapter.NewRegistry(
	chapter.Chapter{Number: 1, Title: "Basics", Run: basics.Run},
	chapter.Chapter{Number: 2, Title: "Ownership", Run: ownership.Run},
	chapter.Chapter{Number: 3, Title: "Collections", Run: collections.Run},
	chapter.Chapter{Number: 5, Title: "Ownership revisited", Run: revisited.Run},
	chapter.Chapter{Number: 6, Title: "Interfaces and generics", Run: interfaces.Run},
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main with its dependencies passed in. It returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chapters", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	color := fs.String("color", "", "banner styling: auto, always or never")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	errLog := log.New(stderr, "", 0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		errLog.Printf("[main] %v", err)
		return 2
	}
	if *color != "" {
		mode, err := chapter.ParseColorMode(*color)
		if err != nil {
			errLog.Printf("[main] %v", err)
			return 2
		}
		cfg.Color = mode
	}
	if *verbose {
		cfg.Verbose = true
	}

	logger := newLogger(stderr, cfg.Verbose)

	fmt.Fprintln(stdout, prompt)
	n, err := chapter.ReadSelection(stdin)
	if err != nil {
		errLog.Printf("[main] %v", err)
		return 1
	}

	logger.Printf("[main] selected chapter %d", n)
	if c, ok := chapters.Lookup(n); ok {
		logger.Printf("[main] running %q", c.Title)
	}
	if err := chapter.Dispatch(chapters, n, chapter.NewPrinter(stdout, cfg.Color)); err != nil {
		errLog.Printf("[main] %v", err)
		return 1
	}
	logger.Printf("[main] done")
	return 0
}

// newLogger returns a timestamped logger on w, or one that discards
// everything when verbose is off.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "", log.LstdFlags|log.Lmicroseconds)
}
