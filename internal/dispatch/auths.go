package dispatch

import (
	"context"

	"github.com/ashureev/tinyim/internal/directory"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/rpcpool"
)

// DirectoryAuths resolves the auth service through the directory and the
// shared channel pool.
type DirectoryAuths struct {
	dir  *directory.Directory
	pool *rpcpool.Pool
}

// NewDirectoryAuths wires auth-service resolution and observes the name.
func NewDirectoryAuths(dir *directory.Directory, pool *rpcpool.Pool) *DirectoryAuths {
	dir.Observe(directory.ServiceAuth)
	return &DirectoryAuths{dir: dir, pool: pool}
}

// Auth resolves a live auth-service client.
func (a *DirectoryAuths) Auth(ctx context.Context) (im.AuthServiceClient, error) {
	addr, err := a.dir.Discover(ctx, directory.ServiceAuth)
	if err != nil {
		return nil, err
	}
	cc, err := a.pool.Get(addr)
	if err != nil {
		return nil, err
	}
	return im.NewAuthServiceClient(cc), nil
}
