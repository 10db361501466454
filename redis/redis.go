package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roam-rides/site/config"
)

var Client *redis.Client

// Init constructs the shared client. Call after config.Load so addresses
// from a .env file are honored; a package-level initializer would capture
// the config before godotenv ran.
func Init() {
	Client = redis.NewClient(&redis.Options{
		Addr:         config.RedisAddress,
		Password:     config.RedisPassword,
		DialTimeout:  2 * time.Second, // How long to wait when establishing connection
		ReadTimeout:  1 * time.Second, // How long to wait for response
		WriteTimeout: 1 * time.Second, // How long to wait when sending data
	})
}

const (
	keyRecentSearches = "search:recent:%s"
	recentSearchMax   = 8
	recentSearchTTL   = 30 * 24 * time.Hour
)

// SaveRecentSearch pushes a destination onto the session's recent-search
// list. Redis being down is tolerated: recent searches are a convenience,
// not state the search flow depends on.
func SaveRecentSearch(sessionID, destination string) {
	if Client == nil || sessionID == "" || destination == "" {
		return
	}
	ctx := context.Background()
	key := fmt.Sprintf(keyRecentSearches, sessionID)

	pipe := Client.TxPipeline()
	pipe.LRem(ctx, key, 0, destination)
	pipe.LPush(ctx, key, destination)
	pipe.LTrim(ctx, key, 0, recentSearchMax-1)
	pipe.Expire(ctx, key, recentSearchTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[redis] saving recent search failed: %v", err)
	}
}

// RecentSearches returns the session's most recent destinations, newest
// first. Returns nil when Redis is unavailable.
func RecentSearches(sessionID string, limit int) []string {
	if Client == nil || sessionID == "" {
		return nil
	}
	ctx := context.Background()
	key := fmt.Sprintf(keyRecentSearches, sessionID)

	values, err := Client.LRange(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil
	}
	return values
}

// Ping reports whether Redis is reachable.
func Ping() error {
	if Client == nil {
		return errors.New("redis client not initialized")
	}
	return Client.Ping(context.Background()).Err()
}

// StartHealthCheck starts a background goroutine that periodically checks Redis health
func StartHealthCheck() {
	go func() {
		ticker := time.NewTicker(30 * time.Second) // Check every 30 seconds
		defer ticker.Stop()

		log.Printf("[redis] Starting health check for Redis at %s", config.RedisAddress)

		for range ticker.C {
			if err := Ping(); err != nil {
				log.Printf("[redis] HEALTH CHECK FAILED - Redis server at %s is down: %v", config.RedisAddress, err)
			}
		}
	}()
}
