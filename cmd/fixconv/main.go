// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command fixconv prints the representation of numbers in the fixed-point types.
//
//	fixconv -type Sfixed8P8 24 -0.5 300
//	fixconv -mode raw -type Sfixed16P16 -- -2147483648
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/avdva/fixedpoint/internal/config"
	"github.com/avdva/fixedpoint/internal/tools/fixconv"
)

func main() {
	cfg, err := fixconv.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if err := fixconv.Run(cfg, os.Stdout, logger); err != nil {
		config.Exitf("convert: %v", err)
	}
}
