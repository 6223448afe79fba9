// Package constants holds configuration values shared across layers.
package constants

// Role change publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderHTTP   = "http"
	PubSubProviderGoogle = "google"
)

// Snapshot and challenge stores.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)
