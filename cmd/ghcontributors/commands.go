package main

import (
	"fmt"
	netHttp "net/http"
	"path/filepath"

	"github.com/m-zajac/ghcontributors/internal/adapter/github"
	"github.com/m-zajac/ghcontributors/internal/adapter/limiter"
	"github.com/m-zajac/ghcontributors/internal/adapter/pages"
	"github.com/m-zajac/ghcontributors/internal/api/http"
	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/m-zajac/ghcontributors/internal/database"
	"github.com/m-zajac/ghcontributors/internal/publisher"
	"github.com/spf13/cobra"
)

func (c *cli) newSourceCmd() *cobra.Command {
	var workDir string

	cmd := &cobra.Command{
		Use:   "source",
		Short: "Publish contributor nodes of all pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := c.loadConfig()
			if err != nil {
				return err
			}
			if workDir, err = filepath.Abs(workDir); err != nil {
				return fmt.Errorf("resolving working directory: %w", err)
			}

			var pub app.NodePublisher = publisher.NewJSONPublisher(cmd.OutOrStdout())
			if conf.StorePath != "" {
				kvStore, err := database.NewBoltKVStore(conf.StorePath, conf.StoreBucketName)
				if err != nil {
					return fmt.Errorf("couldn't create bolt kv store: %w", err)
				}
				defer kvStore.Close()

				storePublisher := publisher.NewStorePublisher(kvStore)
				if err := storePublisher.Reset(); err != nil {
					return fmt.Errorf("couldn't reset node store: %w", err)
				}
				pub = publisher.Multi(pub, storePublisher)
			}

			service := app.NewService(conf.Repository(), c.newFetcher(conf))
			pipeline := app.NewPipeline(
				service,
				pages.NewEnumerator(),
				pub,
				c.l.WithField("component", "pipeline"),
			)

			report, err := pipeline.SourceNodes(cmd.Context(), app.Source{
				WorkDir:     workDir,
				Paths:       conf.Pages.Paths,
				Extensions:  conf.Pages.Extensions,
				Concurrency: conf.Concurrency,
			})
			if err != nil {
				return err
			}
			if report.Failed > 0 {
				c.l.Warnf("%d of %d pages published without contributors", report.Failed, len(report.Pages))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&workDir, "workdir", "w", "", "site working directory (defaults to current directory)")

	return cmd
}

func (c *cli) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve published nodes and live contributor lookups over http",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := c.loadConfig()
			if err != nil {
				return err
			}

			var reader http.NodeReader
			if conf.StorePath != "" {
				kvStore, err := database.NewBoltKVStore(conf.StorePath, conf.StoreBucketName)
				if err != nil {
					return fmt.Errorf("couldn't create bolt kv store: %w", err)
				}
				defer kvStore.Close()
				reader = publisher.NewStorePublisher(kvStore)
			}

			var fetcher app.ContributorFetcher
			if f := c.newFetcher(conf); f != nil {
				cachedClient, err := github.NewCachedClient(
					f,
					conf.GithubClientCacheSize,
					conf.GithubClientCacheTTL,
				)
				if err != nil {
					return fmt.Errorf("couldn't create github client cache: %w", err)
				}
				fetcher = cachedClient
			}

			service := app.NewService(conf.Repository(), fetcher)
			mux := http.NewMux(service, reader, conf.HTTPHandlerTimeout, c.l.WithField("component", "mux"))
			server := http.NewServer(
				conf.HTTPServerAddress,
				conf.HTTPProfileServerAddress,
				mux,
				c.l.WithField("component", "httpServer"),
			)

			return server.Run(cmd.Context())
		},
	}
}

func (c *cli) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print type definitions of published nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), app.Schema)
			return err
		},
	}
}

// newFetcher returns nil when there's no github token.
func (c *cli) newFetcher(conf Config) app.ContributorFetcher {
	if conf.Repo.Token == "" {
		return nil
	}

	httpClient := &netHttp.Client{
		Timeout: conf.GithubTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	return github.NewClient(
		limitedHTTPClient,
		conf.Repo.API,
		conf.Repo.Token,
		c.l.WithField("component", "githubClient"),
	)
}
