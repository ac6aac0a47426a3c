package main

import (
	"fmt"
	"os"

	"taskvault/internal/cli"
	"taskvault/internal/config"
	"taskvault/internal/store"
)

func main() {
	// Load configuration: defaults < config file < environment
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Open durable storage
	storage, err := config.CreateStorage(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	defer storage.Close()

	// Create the store and rehydrate it from the persisted state once,
	// before any command runs
	st := store.New(storage, cfg.Storage.Key)
	if err := st.Rehydrate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading saved state: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(st, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
