package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/sirupsen/logrus"
)

// Service can return contributors of a page.
//go:generate mockgen -destination mock/http.go -package mock github.com/m-zajac/ghcontributors/internal/api/http Service,NodeReader
type Service interface {
	PageContributors(ctx context.Context, pagePath string) ([]app.Contributor, error)
}

// NodeReader returns published nodes.
type NodeReader interface {
	Nodes(ctx context.Context, nodeType string) ([]json.RawMessage, error)
	Node(ctx context.Context, nodeType string, id string) (json.RawMessage, error)
}

// NewMux creates router for app's http server.
// reader is optional, without it published nodes aren't served.
func NewMux(service Service, reader NodeReader, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	contributorsPath := "/contributors/"
	contributorsHandler := NewContributorsHandler(
		func(r *http.Request) string {
			return strings.TrimPrefix(r.URL.Path, contributorsPath)
		},
		service,
		l,
	)
	contributorsHandler = timeoutMiddleware(contributorsHandler)

	m := http.NewServeMux()
	m.HandleFunc(contributorsPath, contributorsHandler)
	m.HandleFunc("/schema", NewSchemaHandler())

	if reader != nil {
		nodesPath := "/nodes/"
		nodesHandler := NewNodesHandler(
			func(r *http.Request) string {
				return strings.TrimPrefix(r.URL.Path, nodesPath)
			},
			reader,
			l,
		)
		m.HandleFunc(nodesPath, timeoutMiddleware(nodesHandler))
	}

	return m
}
