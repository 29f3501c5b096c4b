// Package kv wraps the Redis client with the ephemeral-state vocabulary of
// the system: session tokens, location records, per-owner sequence
// counters, service records and the kick pub/sub channel.
//
// Key namespaces:
//
//	session:{user_id}        hash device -> token
//	location:{user_id}       hash device -> push-endpoint address
//	seq:{owner_id}           integer, INCR-allocated
//	service:{name}:{addr}    string addr, TTL-bounded
//	kick                     pub/sub channel, payload "{user_id}:{device}"
package kv

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ashureev/tinyim/internal/config"
	"github.com/redis/go-redis/v9"
)

const kickChannel = "kick"

// Client is a thin domain wrapper over one pooled Redis client. Pub/sub
// subscriptions get their own dedicated connection from go-redis since
// subscribing mutates connection state.
type Client struct {
	rdb *redis.Client
}

// New connects and verifies the server is reachable.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Client{rdb: rdb}, nil
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

func sessionKey(userID int64) string  { return "session:" + strconv.FormatInt(userID, 10) }
func locationKey(userID int64) string { return "location:" + strconv.FormatInt(userID, 10) }
func seqKey(ownerID int64) string     { return "seq:" + strconv.FormatInt(ownerID, 10) }
func serviceKey(name, addr string) string {
	return "service:" + name + ":" + addr
}

// SessionToken returns the stored token for (user, device), or "" when no
// session record exists.
func (c *Client) SessionToken(ctx context.Context, userID int64, device string) (string, error) {
	token, err := c.rdb.HGet(ctx, sessionKey(userID), device).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("hget session: %w", err)
	}
	return token, nil
}

// SetSessionToken stores the token for (user, device) and refreshes the TTL
// of the whole session hash.
func (c *Client) SetSessionToken(ctx context.Context, userID int64, device, token string, ttl time.Duration) error {
	key := sessionKey(userID)
	if err := c.rdb.HSet(ctx, key, device, token).Err(); err != nil {
		return fmt.Errorf("hset session: %w", err)
	}
	if err := c.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("expire session: %w", err)
	}
	return nil
}

// DeleteSessionDevice removes one device's session record.
func (c *Client) DeleteSessionDevice(ctx context.Context, userID int64, device string) error {
	if err := c.rdb.HDel(ctx, sessionKey(userID), device).Err(); err != nil {
		return fmt.Errorf("hdel session: %w", err)
	}
	return nil
}

// DeleteSession removes every device's session record for the user.
func (c *Client) DeleteSession(ctx context.Context, userID int64) error {
	if err := c.rdb.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("del session: %w", err)
	}
	return nil
}

// SessionExists reports whether the user has any live session record.
func (c *Client) SessionExists(ctx context.Context, userID int64) (bool, error) {
	n, err := c.rdb.Exists(ctx, sessionKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("exists session: %w", err)
	}
	return n > 0, nil
}

// SetLocation records the push-endpoint address of the gateway holding the
// (user, device) session and bounds the record with a TTL so a crashed
// gateway's entries self-expire.
func (c *Client) SetLocation(ctx context.Context, userID int64, device, pushAddr string, ttl time.Duration) error {
	key := locationKey(userID)
	if err := c.rdb.HSet(ctx, key, device, pushAddr).Err(); err != nil {
		return fmt.Errorf("hset location: %w", err)
	}
	if err := c.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("expire location: %w", err)
	}
	return nil
}

// RefreshLocation extends the TTL of the user's location hash. The owning
// gateway calls this periodically, once for each user with a live session.
func (c *Client) RefreshLocation(ctx context.Context, userID int64, ttl time.Duration) error {
	if err := c.rdb.Expire(ctx, locationKey(userID), ttl).Err(); err != nil {
		return fmt.Errorf("expire location: %w", err)
	}
	return nil
}

// DeleteLocation removes one device's location record.
func (c *Client) DeleteLocation(ctx context.Context, userID int64, device string) error {
	if err := c.rdb.HDel(ctx, locationKey(userID), device).Err(); err != nil {
		return fmt.Errorf("hdel location: %w", err)
	}
	return nil
}

// Locations returns device -> push-endpoint address for the user.
func (c *Client) Locations(ctx context.Context, userID int64) (map[string]string, error) {
	locs, err := c.rdb.HGetAll(ctx, locationKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall location: %w", err)
	}
	return locs, nil
}

// NextSeq atomically allocates the next timeline sequence for the owner.
// Returned values are strictly increasing; the counter is authoritative
// for new inserts only.
func (c *Client) NextSeq(ctx context.Context, ownerID int64) (int64, error) {
	seq, err := c.rdb.Incr(ctx, seqKey(ownerID)).Result()
	if err != nil {
		return 0, fmt.Errorf("incr seq: %w", err)
	}
	return seq, nil
}

// PublishKick broadcasts a same-device eviction to every gateway.
func (c *Client) PublishKick(ctx context.Context, userID int64, device string) error {
	payload := strconv.FormatInt(userID, 10) + ":" + device
	if err := c.rdb.Publish(ctx, kickChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish kick: %w", err)
	}
	return nil
}

// SubscribeKick blocks consuming kick events until ctx is cancelled,
// invoking fn for each. Malformed payloads are logged and skipped; the
// subscriber never stops on a bad message.
func (c *Client) SubscribeKick(ctx context.Context, fn func(userID int64, device string)) error {
	sub := c.rdb.Subscribe(ctx, kickChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			userID, device, err := parseKickPayload(msg.Payload)
			if err != nil {
				slog.Warn("Dropping malformed kick payload", "payload", msg.Payload, "error", err)
				continue
			}
			fn(userID, device)
		}
	}
}

func parseKickPayload(payload string) (int64, string, error) {
	idx := strings.IndexByte(payload, ':')
	if idx <= 0 {
		return 0, "", fmt.Errorf("missing separator in %q", payload)
	}
	userID, err := strconv.ParseInt(payload[:idx], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("bad user id in %q: %w", payload, err)
	}
	return userID, payload[idx+1:], nil
}

// SetServiceRecord writes (or refreshes) a service registration with a TTL.
func (c *Client) SetServiceRecord(ctx context.Context, name, addr string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, serviceKey(name, addr), addr, ttl).Err(); err != nil {
		return fmt.Errorf("set service record: %w", err)
	}
	return nil
}

// DeleteServiceRecord removes a registration eagerly on shutdown. TTL
// expiry covers crashed owners.
func (c *Client) DeleteServiceRecord(ctx context.Context, name, addr string) error {
	if err := c.rdb.Del(ctx, serviceKey(name, addr)).Err(); err != nil {
		return fmt.Errorf("del service record: %w", err)
	}
	return nil
}

// ServiceAddrs enumerates the live addresses registered under a service
// name. Uses SCAN rather than KEYS to keep the server responsive.
func (c *Client) ServiceAddrs(ctx context.Context, name string) ([]string, error) {
	var addrs []string
	iter := c.rdb.Scan(ctx, 0, "service:"+name+":*", 100).Iterator()
	for iter.Next(ctx) {
		val, err := c.rdb.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			continue // expired between SCAN and GET
		}
		if err != nil {
			return nil, fmt.Errorf("get service record: %w", err)
		}
		if val != "" {
			addrs = append(addrs, val)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan service records: %w", err)
	}
	return addrs, nil
}
