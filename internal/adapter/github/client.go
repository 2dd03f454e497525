package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/sirupsen/logrus"
)

// DefaultAPIAddress is the github graphql endpoint.
const DefaultAPIAddress = "https://api.github.com/graphql"

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns contributors of files in github repositories, using github graphql api.
// This struct is an adapter for app.ContributorFetcher.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	l         logrus.FieldLogger

	responseMaxSize int
}

var _ app.ContributorFetcher = &Client{}

// NewClient creates new github client.
// Empty address means DefaultAPIAddress.
func NewClient(doer HTTPDoer, address string, authToken string, l logrus.FieldLogger) *Client {
	if address == "" {
		address = DefaultAPIAddress
	}

	return &Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		l:         l,

		responseMaxSize: 1024 * 1024 * 10,
	}
}

// ContributorsForPage returns contributors of a file at pagePath, from the latest one.
//
// When github responds with unexpected data (an errors only payload, for example), warning is logged
// and empty result is returned. Failed http calls return *app.FetchError.
func (c *Client) ContributorsForPage(ctx context.Context, owner, name, branch, pagePath string) ([]app.Contributor, error) {
	query, err := renderHistoryQuery(historyQueryParams{
		Owner:  owner,
		Name:   name,
		Branch: branch,
		Path:   pagePath,
		First:  historyLength,
	})
	if err != nil {
		return nil, err
	}

	body, err := c.makeRequest(ctx, query)
	if err != nil {
		return nil, err
	}

	var resp historyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.warnUnexpected(pagePath, body, fmt.Sprintf("unmarshalling response: %v", err))
		return []app.Contributor{}, nil
	}
	if _, ok := resp.nodes(); !ok {
		c.warnUnexpected(pagePath, body, resp.errorMessages())
		return []app.Contributor{}, nil
	}

	return app.UniqueContributors(resp.ToContributors()), nil
}

func (c *Client) warnUnexpected(pagePath string, body []byte, reason string) {
	c.l.WithFields(logrus.Fields{
		"repositoryPath": pagePath,
		"reason":         reason,
	}).Warnf("The Github API didn't return the expected data, returning an empty contributor array. res: %s", body)
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func (c *Client) makeRequest(ctx context.Context, query string) ([]byte, error) {
	reqBody, err := json.Marshal(graphQLRequest{
		Query:     query,
		Variables: map[string]interface{}{},
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.authToken)

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, &app.FetchError{Err: err}
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		return nil, &app.FetchError{
			StatusCode:  resp.StatusCode,
			RateLimited: c.checkRateLimitExceeded(resp),
		}
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)+1))
	if err != nil {
		return nil, &app.FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("reading http response body: %w", err),
		}
	}
	if len(b) > c.responseMaxSize {
		return nil, &app.FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response body exceeds %d bytes", c.responseMaxSize),
		}
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	if s := resp.Header.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}

	return false
}
