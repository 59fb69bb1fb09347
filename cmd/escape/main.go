package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/cbodonnell/greatescape/pkg/config"
	"github.com/cbodonnell/greatescape/pkg/log"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn("Failed to load .env file: %v", err)
	}

	cmd := &cli.Command{
		Name:  "escape",
		Usage: "escape room game engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "path to the YAML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (error, warn, info, debug, trace), overrides the config",
			},
		},
		Commands: []*cli.Command{
			playCommand(),
			validateCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

// loadConfig reads the config named by the --config flag and installs
// the default logger at the configured level.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if level := cmd.String("log-level"); level != "" {
		cfg.LogLevel = level
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	// stdout belongs to the game screen
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, cfg.Level())
	log.SetDefaultLogger(logger)
	log.Debug("Log level set to %s", cfg.Level())
	return cfg, nil
}
