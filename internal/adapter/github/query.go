package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/m-zajac/ghcontributors/internal/app"
)

// historyLength is the number of commits requested for a single page.
const historyLength = 100

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

var historyQueryTemplate = template.Must(template.New("history").
	Funcs(template.FuncMap{"quote": graphQLString}).
	Parse(`query {
  repository(owner: {{ quote .Owner }}, name: {{ quote .Name }}) {
    object(expression: {{ quote .Branch }}) {
      ... on Commit {
        history(first: {{ .First }}, path: {{ quote .Path }}) {
          nodes {
            author {
              avatarUrl
              user {
                name
                login
              }
              date
            }
          }
        }
      }
    }
  }
}
`))

type historyQueryParams struct {
	Owner  string
	Name   string
	Branch string
	Path   string
	First  int
}

func (p historyQueryParams) validate() error {
	if !identifierPattern.MatchString(p.Owner) {
		return app.InvalidRequestError(fmt.Sprintf("invalid repository owner %q", p.Owner))
	}
	if !identifierPattern.MatchString(p.Name) {
		return app.InvalidRequestError(fmt.Sprintf("invalid repository name %q", p.Name))
	}
	if p.Branch == "" || strings.IndexFunc(p.Branch, unicode.IsControl) >= 0 {
		return app.InvalidRequestError(fmt.Sprintf("invalid branch %q", p.Branch))
	}
	if p.Path == "" || strings.IndexFunc(p.Path, unicode.IsControl) >= 0 {
		return app.InvalidRequestError(fmt.Sprintf("invalid page path %q", p.Path))
	}

	return nil
}

func renderHistoryQuery(p historyQueryParams) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := historyQueryTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("rendering history query: %w", err)
	}

	return buf.String(), nil
}

// graphQLString returns s as a quoted GraphQL string literal.
// JSON string escaping is a subset of GraphQL's, so json encoding is used directly.
func graphQLString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
