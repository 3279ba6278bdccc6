package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/cfgmap"
	"github.com/0xalexb/cfgmap/config"
	"github.com/0xalexb/cfgmap/config/fetcher/file"
	"github.com/0xalexb/cfgmap/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	errPathNotFound   = errors.New("path not found")
	errOptionNotFound = errors.New("option not found")
)

// cli holds the state shared by all commands.
type cli struct {
	fs         afero.Fs
	format     string
	defaultKey string
	logLevel   string
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	c := &cli{fs: fs}

	root := &cobra.Command{
		Use:   "cfgmap",
		Short: "Query typed hierarchical configuration files",
		Long: `cfgmap loads a YAML, JSON, TOML, HCL or dotenv file into a typed container
and answers path, option and type queries against it.

Paths use "/" between segments; list elements are addressed by index.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewLogger(logging.LoggerConfig{Level: c.logLevel, Format: logging.FormatText}, cmd.ErrOrStderr())
			slog.SetDefault(logger)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("cfgmap %s (%s)\n", Version, CompiledAt))

	flags := root.PersistentFlags()
	flags.StringVarP(&c.format, "format", "f", "", "input format: yaml|json|toml|hcl|env (default: from file extension)")
	flags.StringVarP(&c.defaultKey, "default-key", "d", "", "section used as the fallback for options")
	flags.StringVar(&c.logLevel, "log-level", "error", "log level (debug|info|warn|error)")

	root.AddCommand(
		c.newGetCmd(),
		c.newOptionCmd(),
		c.newCheckCmd(),
		c.newKeysCmd(),
	)

	return root
}

// load reads path with the parser selected by --format or the file extension.
func (c *cli) load(path string) (*cfgmap.Map, error) {
	fetcher, err := file.NewFetcherFs(c.fs, path)()
	if err != nil {
		return nil, err
	}

	format := c.format
	if format == "" {
		format = fetcher.Ext()
	}

	parser, err := parserFor(format, fetcher.Path())
	if err != nil {
		return nil, err
	}

	cfg, err := config.Provider(c.defaultKey)(parser, fetcher)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return cfg, nil
}
