package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/ghcontributors/internal/app"
	"gopkg.in/yaml.v3"
)

const envPrefix = "GHCONTRIBUTORS"

// Config is the container for app configuration.
// Values are read from environment first, then overridden by the config file.
type Config struct {
	// Root - repository directory the pages live in. Overridden by Pages.Root when that's set
	Root string `default:"" yaml:"root" toml:"root" json:"root"`

	Pages PagesConfig `yaml:"pages" toml:"pages" json:"pages"`
	Repo  RepoConfig  `yaml:"repo" toml:"repo" json:"repo"`

	// Concurrency - max number of pages fetched at once
	Concurrency int `default:"1" yaml:"concurrency" toml:"concurrency" json:"concurrency" validate:"min=1"`

	// GithubAPIRateLimit - max frequency for github api calls. 0 means no limit
	GithubAPIRateLimit float64 `default:"0" yaml:"githubApiRateLimit" toml:"githubApiRateLimit" json:"githubApiRateLimit" validate:"gte=0"`

	// GithubTimeout - timeout for a single github api call
	GithubTimeout time.Duration `default:"30s" yaml:"githubTimeout" toml:"githubTimeout" json:"githubTimeout"`

	// StorePath - filepath for bolt db with published nodes. If empty, nodes are only written to stdout
	StorePath string `default:"" yaml:"storePath" toml:"storePath" json:"storePath"`

	// StoreBucketName - bolt db bucket name
	StoreBucketName string `default:"nodes" yaml:"storeBucketName" toml:"storeBucketName" json:"storeBucketName" validate:"required"`

	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080" yaml:"httpServerAddress" toml:"httpServerAddress" json:"httpServerAddress"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:"" yaml:"httpProfileServerAddress" toml:"httpProfileServerAddress" json:"httpProfileServerAddress"`

	// HTTPHandlerTimeout - timeout for http request handling. 0 disables it
	HTTPHandlerTimeout time.Duration `default:"60s" yaml:"httpHandlerTimeout" toml:"httpHandlerTimeout" json:"httpHandlerTimeout"`

	// GithubClientCacheSize - maximum number of elements in live lookup cache
	GithubClientCacheSize int `default:"10000" yaml:"githubClientCacheSize" toml:"githubClientCacheSize" json:"githubClientCacheSize" validate:"min=1"`

	// GithubClientCacheTTL - maximum lifetime for live lookup cache entries
	GithubClientCacheTTL time.Duration `default:"10m" yaml:"githubClientCacheTTL" toml:"githubClientCacheTTL" json:"githubClientCacheTTL"`
}

// PagesConfig describes where the pages are.
type PagesConfig struct {
	// Root - overrides top level Root
	Root string `default:"" yaml:"root" toml:"root" json:"root"`

	// Paths - globs, files or directories with pages
	Paths []string `default:"src/pages" yaml:"paths" toml:"paths" json:"paths"`

	// Extensions - page file extensions used when a path is a directory
	Extensions []string `default:"md,mdx" yaml:"extensions" toml:"extensions" json:"extensions"`
}

// RepoConfig describes the github repository.
type RepoConfig struct {
	// Token - github api token. Also read from GITHUB_TOKEN
	Token string `envconfig:"GITHUB_TOKEN" default:"" yaml:"token" toml:"token" json:"token"`

	Owner         string `default:"" yaml:"owner" toml:"owner" json:"owner" validate:"required"`
	Name          string `default:"" yaml:"name" toml:"name" json:"name" validate:"required"`
	Branch        string `default:"main" yaml:"branch" toml:"branch" json:"branch" validate:"required"`
	DefaultBranch string `default:"main" yaml:"defaultBranch" toml:"defaultBranch" json:"defaultBranch"`

	// API - github graphql endpoint
	API string `default:"https://api.github.com/graphql" yaml:"api" toml:"api" json:"api" validate:"required,url"`
}

// LoadConfig reads config from environment and optional config file.
func LoadConfig(path string) (Config, error) {
	var conf Config
	if err := envconfig.Process(envPrefix, &conf); err != nil {
		return conf, app.ConfigurationError(fmt.Sprintf("parsing environment: %v", err))
	}
	if path == "" {
		return conf, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("reading config file: %w", err)
	}
	if err := decodeConfig(path, data, &conf); err != nil {
		return conf, app.ConfigurationError(fmt.Sprintf("parsing config file %s: %v", path, err))
	}

	return conf, nil
}

func decodeConfig(path string, data []byte, conf *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, conf)
	case ".toml":
		return toml.Unmarshal(data, conf)
	case ".json":
		return json.Unmarshal(data, conf)
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
}

var configValidate = validator.New()

// Validate checks config values.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", e.Namespace(), e.Tag()))
	}

	return app.ConfigurationError("invalid config: " + strings.Join(msgs, ", "))
}

// RepositoryRoot returns repository directory of the pages.
func (c Config) RepositoryRoot() string {
	if c.Pages.Root != "" {
		return c.Pages.Root
	}
	return c.Root
}

// Repository returns descriptor of the configured repository.
func (c Config) Repository() app.RepositoryDescriptor {
	return app.RepositoryDescriptor{
		Owner:         c.Repo.Owner,
		Name:          c.Repo.Name,
		Branch:        c.Repo.Branch,
		DefaultBranch: c.Repo.DefaultBranch,
		Root:          c.RepositoryRoot(),
	}
}
