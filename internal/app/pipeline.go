package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Pipeline sources contributor nodes for all configured pages.
type Pipeline struct {
	service    *Service
	enumerator PageEnumerator
	publisher  NodePublisher
	l          logrus.FieldLogger
}

// NewPipeline creates new Pipeline instance.
func NewPipeline(service *Service, enumerator PageEnumerator, publisher NodePublisher, l logrus.FieldLogger) *Pipeline {
	return &Pipeline{
		service:    service,
		enumerator: enumerator,
		publisher:  publisher,
		l:          l,
	}
}

// SourceNodes publishes repository node, then one contributors node per page found.
//
// Failure to fetch contributors of a page never stops the run: the page is published with no contributors.
// Run fails on invalid repository configuration, page enumeration errors and publishing errors.
// Missing github token is not an error, all pages are published with no contributors.
func (p *Pipeline) SourceNodes(ctx context.Context, src Source) (*Report, error) {
	start := time.Now()
	repo := p.service.Repository()
	if err := p.service.validate(); err != nil {
		return nil, err
	}
	if src.WorkDir != "" {
		workDir, err := filepath.Abs(src.WorkDir)
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		src.WorkDir = workDir
	}
	if !p.service.CanFetch() {
		p.l.Warn("To get Github contributors, a Github token is required (GITHUB_TOKEN environment variable)")
	}

	if err := p.publisher.Publish(ctx, NewGithubNode(repo)); err != nil {
		return nil, fmt.Errorf("publishing github node: %w", err)
	}

	paths, err := p.enumerator.Expand(ctx, src.WorkDir, src.Paths, src.Extensions)
	if err != nil {
		return nil, fmt.Errorf("expanding page paths: %w", err)
	}
	p.l.Infof("found %d pages", len(paths))

	concurrency := src.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]PageResult, len(paths))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = p.resolvePage(ctx, src, path)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := Report{Pages: results}
	for _, r := range results {
		if r.Err != nil {
			report.Failed++
		}
		node := NewContributorsNode(repo, r.Path, r.RepositoryPath, r.Contributors)
		if err := p.publisher.Publish(ctx, node); err != nil {
			return nil, fmt.Errorf("publishing contributors node for %s: %w", r.Path, err)
		}
	}

	p.l.Infof("published %d pages (%d failed) in %s", len(results), report.Failed, time.Since(start).Round(time.Millisecond))

	return &report, nil
}

func (p *Pipeline) resolvePage(ctx context.Context, src Source, path string) PageResult {
	repoPath := ResolvePagePath(src.WorkDir, p.service.Repository().Root, path)
	result := PageResult{
		Path:           path,
		RepositoryPath: repoPath,
		Contributors:   []Contributor{},
	}
	if !p.service.CanFetch() {
		return result
	}

	contributors, err := p.service.PageContributors(ctx, repoPath)
	if err != nil {
		p.l.WithFields(logrus.Fields{
			"path":           path,
			"repositoryPath": repoPath,
		}).Errorf("couldn't get contributors: %v", err)
		result.Err = err
		return result
	}
	p.l.Debugf("page %s: %d contributors", repoPath, len(contributors))
	result.Contributors = contributors

	return result
}
