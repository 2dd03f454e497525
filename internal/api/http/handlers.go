package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/sirupsen/logrus"
)

type contributorsResponse struct {
	Path         string            `json:"path"`
	Contributors []app.Contributor `json:"contributors"`
}

// NewContributorsHandler creates handlerfunc returning contributors of a page.
func NewContributorsHandler(
	getPath func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := getPath(r)

		contributors, err := service.PageContributors(r.Context(), path)
		if err != nil {
			switch {
			case app.IsInvalidRequestError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case app.IsConfigurationError(err):
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
			case app.IsTooManyRequestsError(err), isRateLimited(err):
				http.Error(w, "", http.StatusTooManyRequests)
			case app.IsFetchError(err):
				l.Warnf("contributors handler: github api error: %v", err)
				http.Error(w, "", http.StatusBadGateway)
			default:
				l.Errorf("contributors handler: service error: %v", err)
				http.Error(w, "", http.StatusInternalServerError)
			}
			return
		}
		if contributors == nil {
			contributors = []app.Contributor{}
		}

		writeJSON(w, contributorsResponse{
			Path:         path,
			Contributors: contributors,
		}, l)
	}
}

// NewNodesHandler creates handlerfunc returning published nodes.
// getPath returns "<type>" for all nodes of a type or "<type>/<id>" for a single node.
func NewNodesHandler(
	getPath func(*http.Request) string,
	reader NodeReader,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		nodeType, id := getPath(r), ""
		if i := strings.Index(nodeType, "/"); i >= 0 {
			nodeType, id = nodeType[:i], nodeType[i+1:]
		}
		if nodeType != app.GithubNodeType && nodeType != app.ContributorsNodeType {
			http.NotFound(w, r)
			return
		}

		if id != "" {
			node, err := reader.Node(r.Context(), nodeType, id)
			if err != nil {
				writeReaderError(w, err, l)
				return
			}
			if node == nil {
				http.NotFound(w, r)
				return
			}
			writeJSON(w, node, l)
			return
		}

		nodes, err := reader.Nodes(r.Context(), nodeType)
		if err != nil {
			writeReaderError(w, err, l)
			return
		}
		if nodes == nil {
			nodes = []json.RawMessage{}
		}

		writeJSON(w, nodes, l)
	}
}

// NewSchemaHandler creates handlerfunc returning type definitions of published nodes.
func NewSchemaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(app.Schema))
	}
}

func isRateLimited(err error) bool {
	var fe *app.FetchError
	return errors.As(err, &fe) && fe.RateLimited
}

func writeReaderError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		http.Error(w, "", http.StatusServiceUnavailable)
		return
	}
	l.Errorf("nodes handler: reading nodes: %v", err)
	http.Error(w, "", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v interface{}, l logrus.FieldLogger) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	if err := jsoniter.ConfigFastest.NewEncoder(w).Encode(v); err != nil {
		l.Errorf("encoding response: %v", err)
	}
}
