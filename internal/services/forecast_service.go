package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/valpere/forecastio/internal/cache"
	"github.com/valpere/forecastio/internal/config"
	"github.com/valpere/forecastio/pkg/forecastio"
	"github.com/valpere/forecastio/pkg/metrics"
)

// ForecastService wraps the API client with caching, client-side rate
// limiting, metrics and structured logging. The cache may be nil, in
// which case every call goes to the API.
type ForecastService struct {
	client  *forecastio.Client
	cache   *cache.Cache
	limiter *rate.Limiter
	logger  *zerolog.Logger
	metrics *metrics.Metrics
}

func NewForecastService(
	client *forecastio.Client,
	responseCache *cache.Cache,
	rateCfg *config.RateLimitConfig,
	logger *zerolog.Logger,
	collector *metrics.Metrics,
) *ForecastService {
	return &ForecastService{
		client:  client,
		cache:   responseCache,
		limiter: rate.NewLimiter(rate.Limit(rateCfg.RequestsPerSecond), rateCfg.Burst),
		logger:  logger,
		metrics: collector,
	}
}

// Forecast returns current conditions and the upcoming forecast,
// serving from cache when possible. Cache hits bypass the rate
// limiter.
func (s *ForecastService) Forecast(ctx context.Context, request forecastio.ForecastRequest) (*forecastio.Response, error) {
	logger := s.requestLogger("forecast", request.Latitude, request.Longitude)

	if s.cache != nil {
		if response, ok := s.cache.GetForecast(ctx, request); ok {
			s.metrics.IncrementCounter("forecast_cache_total", "forecast", "hit")
			logger.Debug().Msg("Serving forecast from cache")
			return response, nil
		}
		s.metrics.IncrementCounter("forecast_cache_total", "forecast", "miss")
	}

	response, err := s.fetch(ctx, "forecast", logger, func(ctx context.Context) (*forecastio.Response, error) {
		return s.client.Forecast(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetForecast(ctx, request, response); err != nil {
			logger.Debug().Err(err).Msg("Failed to cache forecast response")
		}
	}

	return response, nil
}

// TimeMachine returns conditions at an arbitrary point in time,
// serving from cache when possible.
func (s *ForecastService) TimeMachine(ctx context.Context, request forecastio.TimeMachineRequest) (*forecastio.Response, error) {
	logger := s.requestLogger("time_machine", request.Latitude, request.Longitude)

	if s.cache != nil {
		if response, ok := s.cache.GetTimeMachine(ctx, request); ok {
			s.metrics.IncrementCounter("forecast_cache_total", "time_machine", "hit")
			logger.Debug().Msg("Serving time machine response from cache")
			return response, nil
		}
		s.metrics.IncrementCounter("forecast_cache_total", "time_machine", "miss")
	}

	response, err := s.fetch(ctx, "time_machine", logger, func(ctx context.Context) (*forecastio.Response, error) {
		return s.client.TimeMachine(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetTimeMachine(ctx, request, response); err != nil {
			logger.Debug().Err(err).Msg("Failed to cache time machine response")
		}
	}

	return response, nil
}

func (s *ForecastService) fetch(
	ctx context.Context,
	endpoint string,
	logger zerolog.Logger,
	call func(context.Context) (*forecastio.Response, error),
) (*forecastio.Response, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	response, err := call(ctx)
	s.metrics.ObserveHistogram("forecast_api_duration_seconds", time.Since(start).Seconds(), endpoint)

	if err != nil {
		s.metrics.IncrementCounter("forecast_requests_total", endpoint, "error")
		logger.Error().Err(err).Msg("Forecast API request failed")
		return nil, err
	}

	s.metrics.IncrementCounter("forecast_requests_total", endpoint, "success")
	if response.APICalls > 0 {
		s.metrics.SetGauge("forecast_api_calls_today", float64(response.APICalls))
	}

	logger.Debug().
		Int("api_calls", response.APICalls).
		Str("upstream_time", response.ResponseTime).
		Msg("Forecast API request completed")

	return response, nil
}

// requestLogger attaches a correlation id and call parameters so that
// all log lines of one lookup can be tied together.
func (s *ForecastService) requestLogger(endpoint string, lat, lon float64) zerolog.Logger {
	return s.logger.With().
		Str("request_id", uuid.NewString()).
		Str("endpoint", endpoint).
		Float64("lat", lat).
		Float64("lon", lon).
		Logger()
}
