package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus is the last-known state of the service's backing stores,
// served as-is on /health. Mail delivery is deliberately not probed: SendGrid
// failures are best-effort and a probe would burn quota.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor probes Mongo and the named Redis clients on an interval
// and keeps the snapshot in memory. The first probe runs immediately so
// /health is meaningful right after startup.
func StartHealthMonitor(ctx context.Context, interval time.Duration, mongoClient *mongo.Client, redisClients map[string]*redis.Client) {
	if interval <= 0 {
		interval = time.Minute
	}
	probe := func() {
		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		status := HealthStatus{
			Redis:     make(map[string]bool, len(redisClients)),
			CheckedAt: time.Now(),
		}
		status.Mongo = mongoClient.Ping(probeCtx, nil) == nil
		if !status.Mongo {
			GetLogger().Warn("health probe: mongo unreachable")
		}
		for name, client := range redisClients {
			ok := client.Ping(probeCtx).Err() == nil
			status.Redis[name] = ok
			if !ok {
				GetLogger().Warn("health probe: redis unreachable", zap.String("client", name))
			}
		}

		healthMu.Lock()
		currentHealth = status
		healthMu.Unlock()
	}

	go func() {
		probe()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				probe()
			}
		}
	}()
}
