package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/forecastio/pkg/forecastio"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client, 10*time.Minute, 24*time.Hour), mr
}

func sampleResponse() *forecastio.Response {
	return &forecastio.Response{
		Latitude:  40.7128,
		Longitude: -74.006,
		Timezone:  "America/New_York",
		Currently: &forecastio.DataPoint{
			Time:        1477353600,
			Temperature: 66.1,
			Icon:        forecastio.IconRain,
		},
	}
}

func TestCache_ForecastRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	request := forecastio.NewForecastRequest("key", 40.7128, -74.006).
		Units(forecastio.UnitsSI).
		Build()

	_, ok := c.GetForecast(ctx, request)
	assert.False(t, ok)

	require.NoError(t, c.SetForecast(ctx, request, sampleResponse()))

	cached, ok := c.GetForecast(ctx, request)
	require.True(t, ok)
	assert.Equal(t, "America/New_York", cached.Timezone)
	require.NotNil(t, cached.Currently)
	assert.Equal(t, 66.1, cached.Currently.Temperature)
	assert.Equal(t, forecastio.IconRain, cached.Currently.Icon)
}

func TestCache_ForecastExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	request := forecastio.NewForecastRequest("key", 40.7128, -74.006).Build()
	require.NoError(t, c.SetForecast(ctx, request, sampleResponse()))

	mr.FastForward(11 * time.Minute)

	_, ok := c.GetForecast(ctx, request)
	assert.False(t, ok)
}

func TestCache_TimeMachineOutlivesForecastTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	request := forecastio.NewTimeMachineRequest("key", 40.7128, -74.006, 1477353600).Build()
	require.NoError(t, c.SetTimeMachine(ctx, request, sampleResponse()))

	mr.FastForward(11 * time.Minute)

	cached, ok := c.GetTimeMachine(ctx, request)
	require.True(t, ok)
	assert.Equal(t, 40.7128, cached.Latitude)
}

func TestCache_OptionsChangeTheKey(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	si := forecastio.NewForecastRequest("key", 40.7128, -74.006).
		Units(forecastio.UnitsSI).
		Build()
	us := forecastio.NewForecastRequest("key", 40.7128, -74.006).
		Units(forecastio.UnitsUS).
		Build()

	require.NoError(t, c.SetForecast(ctx, si, sampleResponse()))

	_, ok := c.GetForecast(ctx, us)
	assert.False(t, ok)
}

func TestCache_KeyLeavesOutAPIKey(t *testing.T) {
	request := forecastio.NewForecastRequest("super_secret", 1.5, 2.5).Build()

	assert.NotContains(t, ForecastKey(request), "super_secret")
}

func TestCache_CorruptEntryIsAMiss(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	request := forecastio.NewForecastRequest("key", 1.5, 2.5).Build()
	require.NoError(t, mr.Set(ForecastKey(request), "not json"))

	_, ok := c.GetForecast(ctx, request)
	assert.False(t, ok)
}
