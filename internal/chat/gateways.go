package chat

import (
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/rpcpool"
)

// PoolGateways resolves push clients over the shared memoized channel
// pool: one long-lived channel per peer gateway address.
type PoolGateways struct {
	pool *rpcpool.Pool
}

// NewPoolGateways wraps a channel pool as GatewayClients.
func NewPoolGateways(pool *rpcpool.Pool) *PoolGateways {
	return &PoolGateways{pool: pool}
}

// Gateway returns a push client for the peer at addr.
func (g *PoolGateways) Gateway(addr string) (im.GatewayServiceClient, error) {
	cc, err := g.pool.Get(addr)
	if err != nil {
		return nil, err
	}
	return im.NewGatewayServiceClient(cc), nil
}
