// Command ljsonfmt is a smoke-test harness for the ljson parser: it reads
// a file, parses it, and prints either the parsed tree's debug rendering
// or the parse diagnostic. It is not part of the parser's public API.
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mcvoid/ljson"
)

type fileConfig struct {
	MaxDepth int `toml:"max_depth"`
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var configPath string

	root := &cobra.Command{
		Use:          "ljsonfmt <file.json>",
		Short:        "Parse a JSON file with ljson and print its tree or its diagnostic",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(logger, args[0], configPath)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "optional TOML config file (max_depth)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(logger *zap.Logger, path, configPath string) error {
	cfg := ljson.Config{}
	if configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err != nil {
			logger.Error("failed to read config", zap.String("path", configPath), zap.Error(err))
			return err
		}
		cfg.MaxDepth = fc.MaxDepth
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read input", zap.String("path", path), zap.Error(err))
		return err
	}

	p := ljson.NewParserWithConfig(cfg)
	defer p.Close()

	v, err := p.Parse(data)
	if err != nil {
		logger.Warn("parse failed", zap.String("path", path), zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	fmt.Println(v.String())
	return nil
}
