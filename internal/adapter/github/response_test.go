package github

import (
	"encoding/json"
	"testing"

	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_historyResponse_ToContributors(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantOK   bool
		want     []app.Contributor
	}{
		{
			name:     "empty",
			response: `{}`,
			wantOK:   false,
			want:     []app.Contributor{},
		},
		{
			name:     "errors only",
			response: `{"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a Repository"}]}`,
			wantOK:   false,
			want:     []app.Contributor{},
		},
		{
			name:     "null object",
			response: `{"data":{"repository":{"object":null}}}`,
			wantOK:   false,
			want:     []app.Contributor{},
		},
		{
			name:     "null nodes",
			response: `{"data":{"repository":{"object":{"history":{"nodes":null}}}}}`,
			wantOK:   false,
			want:     []app.Contributor{},
		},
		{
			name:     "empty nodes",
			response: `{"data":{"repository":{"object":{"history":{"nodes":[]}}}}}`,
			wantOK:   true,
			want:     []app.Contributor{},
		},
		{
			name: "nodes with and without user",
			response: `{"data":{"repository":{"object":{"history":{"nodes":[
				{"author":{"avatarUrl":"https://avatars/a","date":"2023-01-03T00:00:00Z","user":{"name":"A","login":"a"}}},
				{"author":{"avatarUrl":"https://avatars/bot","date":"2023-01-02T00:00:00Z","user":null}},
				{"author":null},
				{"author":{"date":"2023-01-01T00:00:00Z","user":{"name":"","login":"b"}}},
				{"author":{"date":"2022-12-31T00:00:00Z","user":{"name":"No Login","login":""}}}
			]}}}}}`,
			wantOK: true,
			want: []app.Contributor{
				{Login: "a", Name: "A", Date: "2023-01-03T00:00:00Z", AvatarURL: "https://avatars/a"},
				{Login: "b", Name: "", Date: "2023-01-01T00:00:00Z"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp historyResponse
			require.NoError(t, json.Unmarshal([]byte(tt.response), &resp))

			_, ok := resp.nodes()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, resp.ToContributors())
		})
	}
}

func Test_historyResponse_errorMessages(t *testing.T) {
	var resp historyResponse
	require.NoError(t, json.Unmarshal([]byte(`{"errors":[{"message":"first"},{"message":"second"}]}`), &resp))
	assert.Equal(t, "first; second", resp.errorMessages())
}
