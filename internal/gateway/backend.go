package gateway

import (
	"context"

	"github.com/ashureev/tinyim/internal/directory"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/rpcpool"
	"google.golang.org/grpc"
)

// DirectoryBackends resolves back-end clients through the service
// directory and the shared channel pool. Channels are memoized per
// address; discovery round-robins across live instances per call.
type DirectoryBackends struct {
	dir  *directory.Directory
	pool *rpcpool.Pool
}

// NewDirectoryBackends wires discovery-based back-end resolution and marks
// the needed service names observed.
func NewDirectoryBackends(dir *directory.Directory, pool *rpcpool.Pool) *DirectoryBackends {
	dir.Observe(directory.ServiceAuth)
	dir.Observe(directory.ServiceChat)
	dir.Observe(directory.ServiceRelation)
	return &DirectoryBackends{dir: dir, pool: pool}
}

func (b *DirectoryBackends) conn(ctx context.Context, service string) (grpc.ClientConnInterface, error) {
	addr, err := b.dir.Discover(ctx, service)
	if err != nil {
		return nil, err
	}
	return b.pool.Get(addr)
}

// Auth resolves a live auth-service client.
func (b *DirectoryBackends) Auth(ctx context.Context) (im.AuthServiceClient, error) {
	cc, err := b.conn(ctx, directory.ServiceAuth)
	if err != nil {
		return nil, err
	}
	return im.NewAuthServiceClient(cc), nil
}

// Chat resolves a live chat-service client.
func (b *DirectoryBackends) Chat(ctx context.Context) (im.ChatServiceClient, error) {
	cc, err := b.conn(ctx, directory.ServiceChat)
	if err != nil {
		return nil, err
	}
	return im.NewChatServiceClient(cc), nil
}

// Relation resolves a live relation-service client.
func (b *DirectoryBackends) Relation(ctx context.Context) (im.RelationServiceClient, error) {
	cc, err := b.conn(ctx, directory.ServiceRelation)
	if err != nil {
		return nil, err
	}
	return im.NewRelationServiceClient(cc), nil
}
