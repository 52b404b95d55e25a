package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"logistics.app/pricing/model"
)

// TTL bounds how long a replayed admin mutation returns its first response.
const TTL = 24 * time.Hour

var Cluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Entries holds one record per (resource, key). Resource is the method and
// path of the call, so a key reused on another endpoint is a new request.
var Entries = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "pricing-idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(TTL),
	},
)
