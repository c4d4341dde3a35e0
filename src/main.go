package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/eriklarko/truth-tabler/src/config"
	"github.com/eriklarko/truth-tabler/src/environment"
	"github.com/eriklarko/truth-tabler/src/repl"
)

func main() {
	noSteps := flag.Bool("no-steps", false, "only print the final value of each expression, no per-sub-expression columns")
	configPath := flag.String("config", "truth-tabler.yaml", "path to the session config file")
	interactive := flag.Bool("interactive", false, "print the prompt even when stdin is not a terminal")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if os.IsNotExist(err) {
		cfg = config.Default()
	} else if err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	if *noSteps {
		cfg.ShowSteps = false
	}
	if *interactive {
		environment.ForceSetIsInteractive(true)
	}

	if err := repl.New(cfg).Run(); err != nil {
		slog.Error("session ended unexpectedly", "error", err)
		os.Exit(1)
	}
}
