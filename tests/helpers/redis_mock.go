package helpers

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// MockRedis represents a mocked Redis connection for testing
type MockRedis struct {
	Client *redis.Client
	Mock   redismock.ClientMock
}

// NewMockRedis creates a new mock Redis client
func NewMockRedis() *MockRedis {
	client, mock := redismock.NewClientMock()

	return &MockRedis{
		Client: client,
		Mock:   mock,
	}
}

// Close closes the mock Redis connection
func (m *MockRedis) Close() error {
	return m.Client.Close()
}

// ExpectationsWereMet checks if all expected Redis interactions were met
func (m *MockRedis) ExpectationsWereMet(t *testing.T) {
	require.NoError(t, m.Mock.ExpectationsWereMet())
}

// ExpectCacheHit sets up expectation for a cache hit
func (m *MockRedis) ExpectCacheHit(key, value string) {
	m.Mock.ExpectGet(key).SetVal(value)
}

// ExpectCacheMiss sets up expectation for a cache miss
func (m *MockRedis) ExpectCacheMiss(key string) {
	m.Mock.ExpectGet(key).RedisNil()
}

// ExpectCacheSet sets up expectation for setting a cache value with TTL
func (m *MockRedis) ExpectCacheSet(key string, value []byte, ttl time.Duration) {
	m.Mock.ExpectSet(key, value, ttl).SetVal("OK")
}

// ExpectCacheSetError sets up a failing set expectation
func (m *MockRedis) ExpectCacheSetError(key string, value []byte, ttl time.Duration, err error) {
	m.Mock.ExpectSet(key, value, ttl).SetErr(err)
}

// ExpectCacheGetError sets up a failing get expectation
func (m *MockRedis) ExpectCacheGetError(key string, err error) {
	m.Mock.ExpectGet(key).SetErr(err)
}
