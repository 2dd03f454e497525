// Package publisher delivers nodes to the site generation pipeline.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/m-zajac/ghcontributors/internal/app"
)

// JSONPublisher writes every node as a single json line.
type JSONPublisher struct {
	enc *json.Encoder
	m   sync.Mutex
}

var _ app.NodePublisher = &JSONPublisher{}

// NewJSONPublisher creates new JSONPublisher instance writing to w.
func NewJSONPublisher(w io.Writer) *JSONPublisher {
	return &JSONPublisher{
		enc: json.NewEncoder(w),
	}
}

// Publish writes node.
func (p *JSONPublisher) Publish(ctx context.Context, node app.Node) error {
	p.m.Lock()
	defer p.m.Unlock()

	if err := p.enc.Encode(node); err != nil {
		return fmt.Errorf("encoding node %s: %w", node.Meta().ID, err)
	}

	return nil
}
