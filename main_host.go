//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"ember/app"
	"ember/hal"
)

func main() {
	var headless hal.HeadlessConfig
	cfg := app.DefaultConfig()
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&headless.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&cfg.Blink, "blink", cfg.Blink, "Run the LED blink task.")
	flag.BoolVar(&cfg.ProdCons, "prodcons", cfg.ProdCons, "Run the producer/consumer mailbox demo.")
	flag.BoolVar(&cfg.Monitor, "monitor", cfg.Monitor, "Run the CPU-load monitor task.")
	flag.Parse()

	newApp := func(h hal.HAL) func() error {
		sys, err := app.New(h, cfg)
		if err != nil {
			return func() error { return err }
		}
		return sys.Step
	}

	if headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, headless); err != nil {
			if err == context.Canceled {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow("Ember", newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
