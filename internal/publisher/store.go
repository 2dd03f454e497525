package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-zajac/ghcontributors/internal/app"
)

// KVStore provides simple kv data storage.
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	ForEachKey(prefix []byte, fn func(key []byte, data []byte) error) error
	DeletePrefix(prefix []byte) error
}

// StorePublisher saves nodes in a kv store, so they can be served after the run.
type StorePublisher struct {
	store KVStore
}

var _ app.NodePublisher = &StorePublisher{}

// NewStorePublisher creates new StorePublisher instance.
func NewStorePublisher(store KVStore) *StorePublisher {
	return &StorePublisher{
		store: store,
	}
}

// Publish saves node under "<type>/<id>" key.
func (p *StorePublisher) Publish(ctx context.Context, node app.Node) error {
	data, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("marshalling node %s: %w", node.Meta().ID, err)
	}

	return p.store.UpdateKey(nodeKey(node.Meta()), data)
}

// Reset removes all saved nodes of known types. Should be called before a new run.
func (p *StorePublisher) Reset() error {
	for _, t := range []string{app.GithubNodeType, app.ContributorsNodeType} {
		if err := p.store.DeletePrefix(typePrefix(t)); err != nil {
			return fmt.Errorf("deleting %s nodes: %w", t, err)
		}
	}

	return nil
}

// Nodes returns json documents of all saved nodes of given type.
func (p *StorePublisher) Nodes(ctx context.Context, nodeType string) ([]json.RawMessage, error) {
	nodes := []json.RawMessage{}
	err := p.store.ForEachKey(typePrefix(nodeType), func(key []byte, data []byte) error {
		nodes = append(nodes, append(json.RawMessage(nil), data...))
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	return nodes, nil
}

// Node returns json document of a single node. Returns nil if there's no such node.
func (p *StorePublisher) Node(ctx context.Context, nodeType string, id string) (json.RawMessage, error) {
	data, err := p.store.ReadKey(append(typePrefix(nodeType), id...))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	return json.RawMessage(data), nil
}

func typePrefix(nodeType string) []byte {
	return []byte(nodeType + "/")
}

func nodeKey(m app.NodeMeta) []byte {
	return append(typePrefix(m.Internal.Type), m.ID...)
}
