package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/valpere/forecastio/internal/cache"
	"github.com/valpere/forecastio/internal/config"
	"github.com/valpere/forecastio/internal/services"
	"github.com/valpere/forecastio/internal/version"
	"github.com/valpere/forecastio/pkg/forecastio"
	"github.com/valpere/forecastio/pkg/metrics"
)

func main() {
	// Command-line flags
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	lat := flag.Float64("lat", 0, "Latitude of the location")
	lon := flag.Float64("lon", 0, "Longitude of the location")
	at := flag.Int64("time", 0, "Unix timestamp for a time machine request (0 = current forecast)")
	units := flag.String("units", "", "Measurement units: auto, ca, uk2, us, si")
	lang := flag.String("lang", "", "Language code for text summaries")
	exclude := flag.String("exclude", "", "Comma-separated blocks to exclude (currently,minutely,hourly,daily,alerts,flags)")
	extendHourly := flag.Bool("extend-hourly", false, "Extend hourly data from 48 to 168 hours")
	flag.Parse()

	if *versionFlag {
		fmt.Println(version.GetInfo().String())
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)

	client := forecastio.NewClient(
		forecastio.WithBaseURL(cfg.Forecast.BaseURL),
		forecastio.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Forecast.TimeoutSeconds) * time.Second,
		}),
	)

	service := services.NewForecastService(
		client,
		connectCache(cfg, &logger),
		&cfg.RateLimit,
		&logger,
		metrics.New(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	response, err := fetch(ctx, service, cfg.Forecast.APIKey, *lat, *lon, *at, *units, *lang, *exclude, *extendHourly)
	if err != nil {
		logger.Fatal().Err(err).Msg("Lookup failed")
	}

	printResponse(response, *at != 0)
}

func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// connectCache wires up the Redis-backed cache, or returns nil when
// caching is disabled or Redis is unreachable. A missing cache only
// costs API calls.
func connectCache(cfg *config.Config, logger *zerolog.Logger) *cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, running without cache")
		_ = client.Close()
		return nil
	}

	return cache.New(
		client,
		time.Duration(cfg.Cache.ForecastTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.TimeMachineTTLSeconds)*time.Second,
	)
}

func fetch(
	ctx context.Context,
	service *services.ForecastService,
	apiKey string,
	lat, lon float64,
	at int64,
	units, lang, exclude string,
	extendHourly bool,
) (*forecastio.Response, error) {
	excludeBlocks := parseExcludes(exclude)

	if at != 0 {
		builder := forecastio.NewTimeMachineRequest(apiKey, lat, lon, at).
			ExcludeBlocks(excludeBlocks...)
		if units != "" {
			builder.Units(forecastio.Units(units))
		}
		if lang != "" {
			builder.Lang(forecastio.Lang(lang))
		}
		return service.TimeMachine(ctx, builder.Build())
	}

	builder := forecastio.NewForecastRequest(apiKey, lat, lon).
		ExcludeBlocks(excludeBlocks...)
	if extendHourly {
		builder.Extend(forecastio.ExtendHourly)
	}
	if units != "" {
		builder.Units(forecastio.Units(units))
	}
	if lang != "" {
		builder.Lang(forecastio.Lang(lang))
	}
	return service.Forecast(ctx, builder.Build())
}

func parseExcludes(raw string) []forecastio.Block {
	if raw == "" {
		return nil
	}

	var blocks []forecastio.Block
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			blocks = append(blocks, forecastio.Block(name))
		}
	}
	return blocks
}

func printResponse(response *forecastio.Response, timeMachine bool) {
	fmt.Printf("Location: %.4f, %.4f (%s)\n", response.Latitude, response.Longitude, response.Timezone)

	if response.Currently != nil {
		label := "Currently"
		if timeMachine {
			label = "Conditions"
		}
		fmt.Printf("%s: %s, %.1f°", label, response.Currently.Summary, response.Currently.Temperature)
		if response.Currently.PrecipProbability > 0 {
			fmt.Printf(", %.0f%% chance of %s", response.Currently.PrecipProbability*100, response.Currently.PrecipType)
		}
		fmt.Println()
	}

	if response.Daily != nil {
		if response.Daily.Summary != "" {
			fmt.Printf("Week: %s\n", response.Daily.Summary)
		}
		for _, day := range response.Daily.Data {
			fmt.Printf("  %s  %5.1f° / %5.1f°  %s\n",
				time.Unix(day.Time, 0).UTC().Format("Mon Jan 02"),
				day.TemperatureMin, day.TemperatureMax, day.Summary)
		}
	}

	for _, alert := range response.Alerts {
		fmt.Printf("ALERT: %s (expires %s)\n  %s\n",
			alert.Title, time.Unix(alert.Expires, 0).UTC().Format(time.RFC1123), alert.URI)
	}

	if response.APICalls > 0 {
		fmt.Printf("API calls today: %d\n", response.APICalls)
	}
}
