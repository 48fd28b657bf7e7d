package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AstroCB/UMD-Gym/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	feedURL := flag.String("feed", "", "override occupancy feed URL (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, FeedURL: *feedURL}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "umdgym: %v\n", err)
		return 1
	}
	return 0
}
