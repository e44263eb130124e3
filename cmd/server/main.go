package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/docopt/docopt-go"

	"github.com/JaimeStill/expense-manager/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const usage = `Expense manager web server.

Usage:
  server [--config=<path>] [--env=<name>]
  server -h | --help
  server --version

Options:
  -h --help        Show this screen.
  --version        Show version.
  --config=<path>  Configuration file [default: config.toml].
  --env=<name>     Configuration overlay name, loads config.<name>.toml (default: $SERVICE_ENV).`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		log.Fatal("argument parse failed:", err)
	}

	configPath, _ := opts.String("--config")
	env, _ := opts.String("--env")

	cfg, err := config.Load(configPath, env)
	if err != nil {
		log.Fatal("config load failed:", err)
	}

	if err := cfg.Finalize(); err != nil {
		log.Fatal("config finalize failed:", err)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		log.Fatal("server init failed:", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatal("server start failed:", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		log.Fatal("shutdown failed:", err)
	}

	log.Println("server stopped gracefully")
}
