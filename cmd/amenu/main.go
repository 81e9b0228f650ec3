package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/amenu/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: amenu [-config path] [-debug] [entries-file]\n\n")
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/amenu/config.toml)")
	debug := flag.Bool("debug", false, "write debug diagnostics to the log file")
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		EntriesPath: flag.Arg(0),
		ConfigPath:  *configPath,
		Debug:       *debug,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "amenu: %v\n", err)
		return 1
	}
	return 0
}
