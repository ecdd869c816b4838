// Package cache keeps decoded Forecast API responses in Redis so that
// repeated lookups for the same location and options do not burn
// upstream API calls.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/valpere/forecastio/pkg/forecastio"
)

// Cache is a cache-aside store for forecast responses. Forecast
// entries expire quickly; time machine entries describe the past and
// can live much longer.
type Cache struct {
	client         *redis.Client
	forecastTTL    time.Duration
	timeMachineTTL time.Duration
}

func New(client *redis.Client, forecastTTL, timeMachineTTL time.Duration) *Cache {
	return &Cache{
		client:         client,
		forecastTTL:    forecastTTL,
		timeMachineTTL: timeMachineTTL,
	}
}

// GetForecast returns the cached response for the request, or false on
// a miss. Backend errors count as misses.
func (c *Cache) GetForecast(ctx context.Context, request forecastio.ForecastRequest) (*forecastio.Response, bool) {
	return c.get(ctx, ForecastKey(request))
}

// SetForecast stores the response under the request's cache key.
func (c *Cache) SetForecast(ctx context.Context, request forecastio.ForecastRequest, response *forecastio.Response) error {
	return c.set(ctx, ForecastKey(request), response, c.forecastTTL)
}

// GetTimeMachine returns the cached response for the request, or false
// on a miss.
func (c *Cache) GetTimeMachine(ctx context.Context, request forecastio.TimeMachineRequest) (*forecastio.Response, bool) {
	return c.get(ctx, TimeMachineKey(request))
}

// SetTimeMachine stores the response under the request's cache key.
func (c *Cache) SetTimeMachine(ctx context.Context, request forecastio.TimeMachineRequest, response *forecastio.Response) error {
	return c.set(ctx, TimeMachineKey(request), response, c.timeMachineTTL)
}

func (c *Cache) get(ctx context.Context, key string) (*forecastio.Response, bool) {
	cached, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var response forecastio.Response
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		return nil, false
	}

	return &response, true
}

func (c *Cache) set(ctx context.Context, key string, response *forecastio.Response, ttl time.Duration) error {
	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}

	return nil
}

// ForecastKey derives the cache key for a forecast request. The API
// key is deliberately left out: responses are keyed by what was asked,
// not by whose credential asked it.
func ForecastKey(request forecastio.ForecastRequest) string {
	return fmt.Sprintf("forecast:%.4f:%.4f:%s",
		request.Latitude, request.Longitude,
		optionsFingerprint(request.Exclude, request.Extend, request.Lang, request.Units))
}

// TimeMachineKey derives the cache key for a time machine request.
func TimeMachineKey(request forecastio.TimeMachineRequest) string {
	return fmt.Sprintf("timemachine:%.4f:%.4f:%d:%s",
		request.Latitude, request.Longitude, request.Time,
		optionsFingerprint(request.Exclude, "", request.Lang, request.Units))
}

func optionsFingerprint(exclude []forecastio.Block, extend forecastio.ExtendBy, lang forecastio.Lang, units forecastio.Units) string {
	names := make([]string, len(exclude))
	for i, block := range exclude {
		names[i] = string(block)
	}
	return fmt.Sprintf("x=%s:e=%s:l=%s:u=%s", strings.Join(names, ","), extend, lang, units)
}
