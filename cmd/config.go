package main

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/tracks/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration to --path.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("created config file", "path", path)
	return r.writePlainln("✓ Config written to %s", path)
}

// ConfigShow prints the configuration in effect after loading --config.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	if r.configPath != "" {
		r.writePlainln("# loaded from %s", r.configPath)
	} else {
		r.writePlainln("# defaults")
	}

	if err := toml.NewEncoder(r.output).Encode(r.config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
