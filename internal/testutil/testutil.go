package testutil

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Cleanup(func())
}

// DefaultTestRedisAddr returns the Redis address used by integration
// tests. Defaults to the local instance from the docker-compose test
// profile; CI should set TEST_REDIS_ADDR explicitly.
func DefaultTestRedisAddr() string {
	return getEnvOrDefault("TEST_REDIS_ADDR", "localhost:6379")
}

// SetupTestRedis creates a Redis client for testing, skipping the test
// when no instance is reachable (or failing when TEST_REQUIRE_REDIS=true).
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: DefaultTestRedisAddr(),
		DB:   redisTestDB(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		closeErr := client.Close()
		if requireRedis() {
			t.Fatal("Test redis not available:", err, closeErr)
		}
		t.Skip("Test redis not available:", err)
	}

	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("test redis close failed: %v", err)
		}
	})
	return client
}

func redisTestDB() int {
	raw := getEnvOrDefault("TEST_REDIS_DB", "9")
	db, err := strconv.Atoi(raw)
	if err != nil {
		return 9
	}
	return db
}

func requireRedis() bool {
	return getEnvOrDefault("TEST_REQUIRE_REDIS", "false") == "true"
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// UniqueKey builds a per-test storage key to keep parallel tests from
// clobbering each other on a shared Redis DB.
func UniqueKey(prefix string) string {
	return fmt.Sprintf("%s:test:%d", prefix, time.Now().UnixNano())
}
