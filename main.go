package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v4"

	"github.com/tonetui/tone/internal/app"
	"github.com/tonetui/tone/internal/tui/top"
	"github.com/tonetui/tone/internal/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := app.Parse(os.Stderr, args)
	if errors.Is(err, ff.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Println("tone", version.Version)
		return nil
	}

	return top.Start(cfg)
}
