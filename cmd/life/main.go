package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/geometry/internal/config"
	"github.com/zeusync/geometry/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML scenario file (built-in glider if empty)")
	render := flag.Bool("render", false, "print the final board of every scenario")
	flag.Parse()

	os.Exit(run(*configPath, *render))
}

func run(configPath string, render bool) int {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			fmt.Fprintln(os.Stderr, "Error loading config:", err)
			return 1
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner, cleanup, err := injector.InitializeRunner(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing runner:", err)
		return 1
	}
	defer cleanup()

	results, err := runner.RunAll(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running scenarios:", err)
		return 1
	}

	for _, res := range results {
		fmt.Printf("%s\tgenerations=%d\tpopulation=%d", res.Scenario, res.Generations, res.Population)
		if res.CycleStart >= 0 {
			fmt.Printf("\tcycle=%d@%d", res.CycleLength, res.CycleStart)
		}
		fmt.Println()
		if render {
			_ = res.Final.Render(os.Stdout)
		}
	}
	return 0
}
