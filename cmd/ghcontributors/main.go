package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cli holds state shared by all commands.
type cli struct {
	configPath string
	verbose    bool
	l          *logrus.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{
		l: logrus.New(),
	}
	c.l.Out = os.Stderr
	c.l.Level = logrus.InfoLevel

	root := &cobra.Command{
		Use:           "ghcontributors",
		Short:         "Sources github contributors of site pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.verbose {
				c.l.Level = logrus.DebugLevel
			}
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.yaml, .yml, .toml or .json)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.newSourceCmd())
	root.AddCommand(c.newServeCmd())
	root.AddCommand(c.newSchemaCmd())

	return root
}

func (c *cli) loadConfig() (Config, error) {
	conf, err := LoadConfig(c.configPath)
	if err != nil {
		return conf, err
	}
	if err := conf.Validate(); err != nil {
		return conf, err
	}
	c.l.Debugf("config loaded, repository %s/%s@%s", conf.Repo.Owner, conf.Repo.Name, conf.Repo.Branch)

	return conf, nil
}
