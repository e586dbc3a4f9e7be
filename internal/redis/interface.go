package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the go-redis universal client. Loadout storage only needs the
// string and key commands, but keeping the full surface lets miniredis backed
// tests and production share one constructor.
type Client interface {
	redis.UniversalClient
}
