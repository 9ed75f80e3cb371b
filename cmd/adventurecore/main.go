// AdventureCore is a turn-based rules engine for classic text adventures.
// Usage: adventurecore [--version] [--plain] [--script <file>] [--seed <n>] [<adventure_directory>]
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/adventurecore/cli"
	"github.com/nathoo/adventurecore/engine"
	"github.com/nathoo/adventurecore/engine/dice"
	"github.com/nathoo/adventurecore/engine/world"
	"github.com/nathoo/adventurecore/internal/config"
	"github.com/nathoo/adventurecore/internal/logger"
	"github.com/nathoo/adventurecore/internal/storage"
	"github.com/nathoo/adventurecore/loader"
	"github.com/nathoo/adventurecore/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)
	log = logger.WithSession(log, uuid.NewString())

	plain := false
	adventureDir := cfg.AdventureDir
	seed := cfg.Seed
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("adventurecore %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid seed %q\n", args[i])
				os.Exit(1)
			}
			seed = n
		default:
			adventureDir = args[i]
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Load the adventure bundle and build the world.
	bundle, scripts, err := loader.Load(adventureDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading adventure: %v\n", err)
		os.Exit(1)
	}
	w, err := world.Build(bundle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building world: %v\n", err)
		os.Exit(1)
	}

	g := engine.New(w, dice.NewRandom(seed), log)

	// Run the adventure's Lua scripts against the live game. The VM
	// stays open for the whole session: hooks call back into it.
	host := loader.NewScriptHost(g)
	defer host.Close()
	for _, s := range scripts {
		if err := host.RunFile(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error in adventure script: %v\n", err)
			os.Exit(1)
		}
	}

	saves, err := openSaveStore(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save store: %v\n", err)
		os.Exit(1)
	}
	defer saves.Close()

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(g, saves)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(g, saves)
		c.Run()
		return
	}

	if err := tui.Run(g, saves); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openSaveStore picks Redis when configured, else the filesystem.
func openSaveStore(cfg *config.Config, log *slog.Logger) (storage.SaveStore, error) {
	if cfg.RedisURL != "" {
		return storage.NewRedisStore(cfg.RedisURL, log), nil
	}
	return storage.NewFileStore(cfg.SaveDir)
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
