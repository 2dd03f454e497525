package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

// Node types.
const (
	GithubNodeType       = "Github"
	ContributorsNodeType = "GithubContributors"
)

// nodeNamespace is the uuid namespace for all node ids.
var nodeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/m-zajac/ghcontributors"))

// Node is a published record consumed by the site generation pipeline.
type Node interface {
	Meta() NodeMeta
}

// NodeInternal is the framework descriptor of a node.
type NodeInternal struct {
	Type          string `json:"type"`
	ContentDigest string `json:"contentDigest"`
}

// NodeMeta holds node identity. It's embedded in every node.
type NodeMeta struct {
	ID       string       `json:"id"`
	Internal NodeInternal `json:"internal"`
}

// Meta implements Node.
func (m NodeMeta) Meta() NodeMeta {
	return m
}

// GithubNode carries the repository descriptor. One is published per run.
type GithubNode struct {
	RepositoryDescriptor
	Repository string `json:"repository"`
	NodeMeta
}

// ContributorsNode carries contributors of a single page.
type ContributorsNode struct {
	Path           string        `json:"path"`
	RepositoryPath string        `json:"repositoryPath"`
	Href           string        `json:"href"`
	Contributors   []Contributor `json:"contributors"`
	NodeMeta
}

// NodeID returns stable id for a node of given type identified by key.
func NodeID(nodeType string, key string) string {
	return uuid.NewSHA1(nodeNamespace, []byte(nodeType+"/"+key)).String()
}

// ContentDigest returns hex encoded sha256 of v's json representation.
func ContentDigest(v interface{}) string {
	data, _ := json.Marshal(v)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// NewGithubNode creates repository node.
func NewGithubNode(repo RepositoryDescriptor) *GithubNode {
	n := GithubNode{
		RepositoryDescriptor: repo,
		Repository:           repo.FullName(),
	}
	n.NodeMeta = NodeMeta{
		ID: NodeID(GithubNodeType, n.Repository),
		Internal: NodeInternal{
			Type:          GithubNodeType,
			ContentDigest: ContentDigest(n),
		},
	}

	return &n
}

// NewContributorsNode creates contributors node for a page at localPath.
func NewContributorsNode(repo RepositoryDescriptor, localPath string, repoPath string, contributors []Contributor) *ContributorsNode {
	if contributors == nil {
		contributors = []Contributor{}
	}
	n := ContributorsNode{
		Path:           localPath,
		RepositoryPath: repoPath,
		Href:           repo.URL(),
		Contributors:   contributors,
	}
	n.NodeMeta = NodeMeta{
		ID: NodeID(ContributorsNodeType, localPath),
		Internal: NodeInternal{
			Type:          ContributorsNodeType,
			ContentDigest: ContentDigest(n),
		},
	}

	return &n
}
