package github

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/m-zajac/ghcontributors/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedClientContributorsForPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cacheSize     int
		paths         []string
		callsInterval time.Duration
		ttl           time.Duration
		wantErr       bool
		wantCalls     int
	}{
		{
			name:      "invalid cache size",
			cacheSize: 0,
			wantErr:   true,
		},
		{
			name:          "calls with same parameters",
			cacheSize:     1,
			paths:         []string{"foo.md", "foo.md", "foo.md", "foo.md"},
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantErr:       false,
			wantCalls:     1,
		},
		{
			name:          "calls with various paths",
			cacheSize:     10,
			paths:         []string{"foo.md", "bar.md", "foo.md", "bar.md", "baz.md"},
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantErr:       false,
			wantCalls:     3,
		},
		{
			name:          "calls with evicted entries",
			cacheSize:     1,
			paths:         []string{"foo.md", "bar.md", "foo.md"},
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantErr:       false,
			wantCalls:     3,
		},
		{
			name:          "calls with expiring ttl",
			cacheSize:     1,
			paths:         []string{"foo.md", "foo.md", "foo.md", "foo.md"},
			callsInterval: 5 * time.Millisecond,
			ttl:           time.Millisecond,
			wantErr:       false,
			wantCalls:     4,
		},
	}

	contributorsResponse := []app.Contributor{
		{Login: "person1", Name: "Person 1", Date: "2023-01-02T00:00:00Z"},
		{Login: "person2", Name: "Person 2", Date: "2023-01-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var clientCalls int

			client := mock.NewMockContributorFetcher(ctrl)
			client.EXPECT().
				ContributorsForPage(gomock.Any(), "owner", "repo", "main", gomock.Any()).
				DoAndReturn(func(ctx context.Context, owner, name, branch, pagePath string) ([]app.Contributor, error) {
					clientCalls++
					return contributorsResponse, nil
				}).
				AnyTimes()

			cachedClient, err := NewCachedClient(client, tt.cacheSize, tt.ttl)
			assert.Equal(t, tt.wantErr, err != nil)
			if err != nil {
				return
			}

			for _, path := range tt.paths {
				contributors, err := cachedClient.ContributorsForPage(context.Background(), "owner", "repo", "main", path)
				require.NoError(t, err)
				require.Equal(t, contributorsResponse, contributors)
				time.Sleep(tt.callsInterval)
			}

			assert.Equal(t, tt.wantCalls, clientCalls)
		})
	}
}

func TestCachedClientDoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockContributorFetcher(ctrl)
	gomock.InOrder(
		client.EXPECT().
			ContributorsForPage(gomock.Any(), "owner", "repo", "main", "foo.md").
			Return(nil, &app.FetchError{Err: errors.New("connection reset")}),
		client.EXPECT().
			ContributorsForPage(gomock.Any(), "owner", "repo", "main", "foo.md").
			Return([]app.Contributor{{Login: "person1"}}, nil),
	)

	cachedClient, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	_, err = cachedClient.ContributorsForPage(context.Background(), "owner", "repo", "main", "foo.md")
	assert.True(t, app.IsFetchError(err))

	contributors, err := cachedClient.ContributorsForPage(context.Background(), "owner", "repo", "main", "foo.md")
	require.NoError(t, err)
	assert.Equal(t, []app.Contributor{{Login: "person1"}}, contributors)

	contributors, err = cachedClient.ContributorsForPage(context.Background(), "owner", "repo", "main", "foo.md")
	require.NoError(t, err)
	assert.Equal(t, []app.Contributor{{Login: "person1"}}, contributors)
}

func TestCachedClientReturnsCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockContributorFetcher(ctrl)
	client.EXPECT().
		ContributorsForPage(gomock.Any(), "owner", "repo", "main", "foo.md").
		Return([]app.Contributor{{Login: "person1"}, {Login: "person2"}}, nil).
		Times(1)

	cachedClient, err := NewCachedClient(client, 10, time.Minute)
	require.NoError(t, err)

	first, err := cachedClient.ContributorsForPage(context.Background(), "owner", "repo", "main", "foo.md")
	require.NoError(t, err)
	first[0].Login = "changed"

	second, err := cachedClient.ContributorsForPage(context.Background(), "owner", "repo", "main", "foo.md")
	require.NoError(t, err)
	second[1].Login = "changed too"

	third, err := cachedClient.ContributorsForPage(context.Background(), "owner", "repo", "main", "foo.md")
	require.NoError(t, err)
	assert.Equal(t, []app.Contributor{{Login: "person1"}, {Login: "person2"}}, third)
}
