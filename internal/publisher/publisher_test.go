package publisher

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/ghcontributors/internal/app"
	appmock "github.com/m-zajac/ghcontributors/internal/app/mock"
	"github.com/m-zajac/ghcontributors/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRepo = app.RepositoryDescriptor{
	Owner:         "my-owner",
	Name:          "my-repo",
	Branch:        "main",
	DefaultBranch: "main",
}

func testNodes() []app.Node {
	return []app.Node{
		app.NewGithubNode(testRepo),
		app.NewContributorsNode(testRepo, "/work/foo.md", "foo.md", []app.Contributor{
			{Login: "johndoe2020", Name: "John Doe", Date: "2023-01-01T00:00:00Z"},
		}),
		app.NewContributorsNode(testRepo, "/work/bar.md", "bar.md", nil),
	}
}

func TestJSONPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewJSONPublisher(&buf)

	for _, n := range testNodes() {
		require.NoError(t, p.Publish(context.Background(), n))
	}

	var types []string
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var doc struct {
			ID       string           `json:"id"`
			Internal app.NodeInternal `json:"internal"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &doc))
		assert.NotEmpty(t, doc.ID)
		types = append(types, doc.Internal.Type)
	}
	assert.Equal(t, []string{app.GithubNodeType, app.ContributorsNodeType, app.ContributorsNodeType}, types)
}

func TestStorePublisher(t *testing.T) {
	store := mock.NewKVStore(nil)
	p := NewStorePublisher(store)
	ctx := context.Background()

	nodes := testNodes()
	for _, n := range nodes {
		require.NoError(t, p.Publish(ctx, n))
	}
	assert.Equal(t, 3, store.Updates())

	githubNodes, err := p.Nodes(ctx, app.GithubNodeType)
	require.NoError(t, err)
	require.Len(t, githubNodes, 1)

	var gn app.GithubNode
	require.NoError(t, json.Unmarshal(githubNodes[0], &gn))
	assert.Equal(t, *nodes[0].(*app.GithubNode), gn)

	contributorNodes, err := p.Nodes(ctx, app.ContributorsNodeType)
	require.NoError(t, err)
	assert.Len(t, contributorNodes, 2)

	foo := nodes[1].(*app.ContributorsNode)
	raw, err := p.Node(ctx, app.ContributorsNodeType, foo.Meta().ID)
	require.NoError(t, err)
	var got app.ContributorsNode
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, *foo, got)

	missing, err := p.Node(ctx, app.ContributorsNodeType, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.UpdateKey([]byte("other/key"), []byte("x")))
	require.NoError(t, p.Reset())
	assert.Equal(t, []string{"other/key"}, store.Keys())

	empty, err := p.Nodes(ctx, app.ContributorsNodeType)
	require.NoError(t, err)
	assert.Equal(t, []json.RawMessage{}, empty)
}

func TestStorePublisherError(t *testing.T) {
	store := mock.NewKVStore(nil)
	store.UpdateErr = errors.New("disk full")
	p := NewStorePublisher(store)

	err := p.Publish(context.Background(), app.NewGithubNode(testRepo))
	assert.ErrorIs(t, err, store.UpdateErr)
}

func TestMulti(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	node := app.NewGithubNode(testRepo)
	first := appmock.NewMockNodePublisher(ctrl)
	second := appmock.NewMockNodePublisher(ctrl)
	third := appmock.NewMockNodePublisher(ctrl)
	gomock.InOrder(
		first.EXPECT().Publish(gomock.Any(), node).Return(nil),
		second.EXPECT().Publish(gomock.Any(), node).Return(nil),
		third.EXPECT().Publish(gomock.Any(), node).Return(nil),
	)
	require.NoError(t, Multi(first, second, third).Publish(context.Background(), node))

	failing := appmock.NewMockNodePublisher(ctrl)
	failing.EXPECT().Publish(gomock.Any(), node).Return(errors.New("broken pipe"))
	notCalled := appmock.NewMockNodePublisher(ctrl)
	assert.Error(t, Multi(failing, notCalled).Publish(context.Background(), node))
}
