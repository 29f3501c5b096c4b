package relation

import (
	"context"

	"github.com/ashureev/tinyim/internal/directory"
	"github.com/ashureev/tinyim/internal/proto/im"
	"github.com/ashureev/tinyim/internal/rpcpool"
)

// DirectoryChats resolves the chat service through the directory and the
// shared channel pool.
type DirectoryChats struct {
	dir  *directory.Directory
	pool *rpcpool.Pool
}

// NewDirectoryChats wires chat-service resolution and observes the name.
func NewDirectoryChats(dir *directory.Directory, pool *rpcpool.Pool) *DirectoryChats {
	dir.Observe(directory.ServiceChat)
	return &DirectoryChats{dir: dir, pool: pool}
}

// Chat resolves a live chat-service client.
func (c *DirectoryChats) Chat(ctx context.Context) (im.ChatServiceClient, error) {
	addr, err := c.dir.Discover(ctx, directory.ServiceChat)
	if err != nil {
		return nil, err
	}
	cc, err := c.pool.Get(addr)
	if err != nil {
		return nil, err
	}
	return im.NewChatServiceClient(cc), nil
}
