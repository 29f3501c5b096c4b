package gateway

import (
	"context"
	"log/slog"
	"time"
)

// StartLocationRefresher keeps the location records of this node's live
// sessions from expiring: a location exists iff a session engine on some
// node owns that (user, device), and TTL expiry is what clears entries a
// crashed gateway left behind. Failures are logged and retried next tick.
func StartLocationRefresher(ctx context.Context, registry *Registry, locations LocationStore, interval, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for _, userID := range registry.ActiveUsers() {
					if err := locations.RefreshLocation(ctx, userID, ttl); err != nil && ctx.Err() == nil {
						slog.Warn("Location refresh failed", "user_id", userID, "error", err)
					}
				}
			}
		}
	}()
}
