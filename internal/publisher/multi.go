package publisher

import (
	"context"

	"github.com/m-zajac/ghcontributors/internal/app"
)

type multiPublisher []app.NodePublisher

// Multi returns publisher passing every node to all given publishers, in order.
// Publishing stops at the first error.
func Multi(publishers ...app.NodePublisher) app.NodePublisher {
	return multiPublisher(publishers)
}

func (m multiPublisher) Publish(ctx context.Context, node app.Node) error {
	for _, p := range m {
		if err := p.Publish(ctx, node); err != nil {
			return err
		}
	}

	return nil
}
