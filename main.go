package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"sokodat/converter"
)

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

// run executes the command line and returns the process exit status.
// A wrong argument count, bad flags included, prints usage and is not a failure.
func run(args []string, stdout io.Writer) int {
	name := args[0]
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	verboseFlag := fs.Bool("verbose", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprintf(stdout, "usage: %s 'sokoban.dat'\n", name)
		fs.PrintDefaults()
	}

	// Parse has already printed usage on error
	if err := fs.Parse(args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.WithError(err).Debug("bad command line")
		}
		return 0
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 0
	}

	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	conv := converter.NewConverter()
	opts := converter.ConvertOptions{
		InputFile:     fs.Arg(0),
		Output:        stdout,
		VerboseOutput: *verboseFlag,
	}

	if err := conv.Convert(opts); err != nil {
		log.Errorf("Error: %v", err)
		return 1
	}
	log.WithField("maps", conv.Maps()).Debug("conversion finished")

	return 0
}
