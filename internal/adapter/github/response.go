package github

import (
	"strings"

	"github.com/m-zajac/ghcontributors/internal/app"
)

type historyResponse struct {
	Data   *historyResponseData   `json:"data"`
	Errors []historyResponseError `json:"errors"`
}

type historyResponseData struct {
	Repository *struct {
		Object *struct {
			History *struct {
				Nodes *[]historyResponseNode `json:"nodes"`
			} `json:"history"`
		} `json:"object"`
	} `json:"repository"`
}

type historyResponseError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type historyResponseNode struct {
	Author *struct {
		AvatarURL string `json:"avatarUrl"`
		Date      string `json:"date"`
		User      *struct {
			Name  string `json:"name"`
			Login string `json:"login"`
		} `json:"user"`
	} `json:"author"`
}

// nodes returns history nodes, or false when response doesn't have expected shape.
func (r historyResponse) nodes() ([]historyResponseNode, bool) {
	if r.Data == nil ||
		r.Data.Repository == nil ||
		r.Data.Repository.Object == nil ||
		r.Data.Repository.Object.History == nil ||
		r.Data.Repository.Object.History.Nodes == nil {
		return nil, false
	}

	return *r.Data.Repository.Object.History.Nodes, true
}

func (r historyResponse) errorMessages() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}

	return strings.Join(msgs, "; ")
}

// ToContributors flattens history nodes. Nodes without linked github user are skipped.
// Order is preserved.
func (r historyResponse) ToContributors() []app.Contributor {
	nodes, _ := r.nodes()
	cs := make([]app.Contributor, 0, len(nodes))
	for _, n := range nodes {
		if n.Author == nil || n.Author.User == nil || n.Author.User.Login == "" {
			continue
		}
		cs = append(cs, app.Contributor{
			Login:     n.Author.User.Login,
			Name:      n.Author.User.Name,
			Date:      n.Author.Date,
			AvatarURL: n.Author.AvatarURL,
		})
	}

	return cs
}
