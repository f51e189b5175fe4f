package main

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/ego/internal/config"
	"gopkg.in/yaml.v3"
)

// cmdConfig prints the effective configuration.
func cmdConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	fmt.Printf("Data directory: %s\n\n", dataDir)

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	os.Stdout.Write(out)
	return nil
}
