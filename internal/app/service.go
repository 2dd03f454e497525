package app

import (
	"context"
	"fmt"
)

// ContributorFetcher returns contributors of a single file in a github repository.
// Result is deduplicated by login, ordered from the latest contribution.
type ContributorFetcher interface {
	ContributorsForPage(ctx context.Context, owner, name, branch, pagePath string) ([]Contributor, error)
}

// PageEnumerator expands page patterns into absolute file paths.
type PageEnumerator interface {
	Expand(ctx context.Context, workDir string, patterns []string, extensions []string) ([]string, error)
}

// NodePublisher publishes nodes for the site generation pipeline.
type NodePublisher interface {
	Publish(ctx context.Context, node Node) error
}

//go:generate mockgen -destination mock/app.go -package mock github.com/m-zajac/ghcontributors/internal/app ContributorFetcher,PageEnumerator,NodePublisher

// Service returns contributors of pages in a single configured repository.
type Service struct {
	repo    RepositoryDescriptor
	fetcher ContributorFetcher
}

// NewService creates new Service instance.
// fetcher may be nil when no github token is configured: in that case contributors can't be resolved.
func NewService(repo RepositoryDescriptor, fetcher ContributorFetcher) *Service {
	return &Service{
		repo:    repo,
		fetcher: fetcher,
	}
}

// Repository returns repository served by this service.
func (s *Service) Repository() RepositoryDescriptor {
	return s.repo
}

// CanFetch tells if service is able to query github.
func (s *Service) CanFetch() bool {
	return s.fetcher != nil
}

// PageContributors returns contributors for page at repository relative pagePath.
func (s *Service) PageContributors(ctx context.Context, pagePath string) ([]Contributor, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if !s.CanFetch() {
		return nil, ConfigurationError("github token is required to fetch contributors")
	}
	if pagePath == "" {
		return nil, InvalidRequestError("page path cannot be empty")
	}

	contributors, err := s.fetcher.ContributorsForPage(ctx, s.repo.Owner, s.repo.Name, s.repo.Branch, pagePath)
	if err != nil {
		return nil, fmt.Errorf("fetching contributors for %s: %w", pagePath, err)
	}
	if contributors == nil {
		contributors = []Contributor{}
	}

	return contributors, nil
}

func (s *Service) validate() error {
	if s.repo.Owner == "" {
		return ConfigurationError("repository owner is not configured")
	}
	if s.repo.Name == "" {
		return ConfigurationError("repository name is not configured")
	}

	return nil
}
