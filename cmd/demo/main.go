package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	dotenv "github.com/joho/godotenv"
	envconf "github.com/sethvargo/go-envconfig"

	"github.com/comalice/undofsm"
)

type AppConfig struct {
	MachineFile string `env:"FSM_MACHINE_FILE, required"`
	LogLevel    string `env:"FSM_LOG_LEVEL, default=info"`
	LogFormat   string `env:"FSM_LOG_FORMAT, default=text"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := dotenv.Load(); err != nil {
		log.Println("Warning! No .env file found")
	}

	var c AppConfig
	if err := envconf.Process(ctx, &c); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := configureLogger(c)

	config, err := undofsm.LoadConfigFile(c.MachineFile)
	if err != nil {
		logger.Error("failed to load machine", "file", c.MachineFile, "error", err)
		os.Exit(1)
	}

	m, err := undofsm.New(config, undofsm.WithLogger(logger.With("component", "fsm")))
	if err != nil {
		logger.Error("failed to create machine", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %q, current state: %s. Type 'help' for commands.\n", c.MachineFile, m.State())
	if err := runShell(ctx, m, os.Stdin, os.Stdout); err != nil {
		logger.Error("shell stopped", "error", err)
		os.Exit(1)
	}
}

func configureLogger(c AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		log.Printf("Warning! Unknown FSM_LOG_LEVEL %q, using info", c.LogLevel)
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
