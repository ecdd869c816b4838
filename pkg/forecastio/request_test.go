package forecastio

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey    = "some_api_key"
	testLatitude  = 6.66
	testLongitude = 66.6
	testTime      = int64(666)
)

func TestForecastRequestBuilder_Defaults(t *testing.T) {
	request := NewForecastRequest(testAPIKey, testLatitude, testLongitude).Build()

	assert.Equal(t, testAPIKey, request.APIKey)
	assert.Equal(t, testLatitude, request.Latitude)
	assert.Equal(t, testLongitude, request.Longitude)
	assert.Empty(t, request.Exclude)
	assert.Empty(t, request.Extend)
	assert.Empty(t, request.Lang)
	assert.Empty(t, request.Units)
}

func TestForecastRequestBuilder_Chained(t *testing.T) {
	request := NewForecastRequest(testAPIKey, testLatitude, testLongitude).
		ExcludeBlock(BlockHourly).
		ExcludeBlocks(BlockDaily, BlockAlerts).
		Extend(ExtendHourly).
		Lang(LangArabic).
		Units(UnitsUS).
		Build()

	expected := ForecastRequest{
		APIKey:    testAPIKey,
		Latitude:  testLatitude,
		Longitude: testLongitude,
		Exclude:   []Block{BlockHourly, BlockDaily, BlockAlerts},
		Extend:    ExtendHourly,
		Lang:      LangArabic,
		Units:     UnitsUS,
	}

	assert.Equal(t, expected, request)
}

func TestForecastRequestBuilder_Stepwise(t *testing.T) {
	builder := NewForecastRequest(testAPIKey, testLatitude, testLongitude)
	builder = builder.ExcludeBlock(BlockHourly)
	builder = builder.ExcludeBlocks(BlockDaily, BlockAlerts)
	builder = builder.Extend(ExtendHourly)
	builder = builder.Lang(LangArabic)
	builder = builder.Units(UnitsUS)

	expected := ForecastRequest{
		APIKey:    testAPIKey,
		Latitude:  testLatitude,
		Longitude: testLongitude,
		Exclude:   []Block{BlockHourly, BlockDaily, BlockAlerts},
		Extend:    ExtendHourly,
		Lang:      LangArabic,
		Units:     UnitsUS,
	}

	assert.Equal(t, expected, builder.Build())
}

func TestForecastRequestBuilder_BuildCopiesExcludes(t *testing.T) {
	builder := NewForecastRequest(testAPIKey, testLatitude, testLongitude).
		ExcludeBlock(BlockMinutely)

	first := builder.Build()
	builder.ExcludeBlock(BlockFlags)
	second := builder.Build()

	assert.Equal(t, []Block{BlockMinutely}, first.Exclude)
	assert.Equal(t, []Block{BlockMinutely, BlockFlags}, second.Exclude)
}

func TestTimeMachineRequestBuilder_Defaults(t *testing.T) {
	request := NewTimeMachineRequest(testAPIKey, testLatitude, testLongitude, testTime).Build()

	assert.Equal(t, testAPIKey, request.APIKey)
	assert.Equal(t, testLatitude, request.Latitude)
	assert.Equal(t, testLongitude, request.Longitude)
	assert.Equal(t, testTime, request.Time)
	assert.Empty(t, request.Exclude)
	assert.Empty(t, request.Lang)
	assert.Empty(t, request.Units)
}

func TestTimeMachineRequestBuilder_Chained(t *testing.T) {
	request := NewTimeMachineRequest(testAPIKey, testLatitude, testLongitude, testTime).
		ExcludeBlock(BlockHourly).
		ExcludeBlocks(BlockDaily, BlockAlerts).
		Lang(LangArabic).
		Units(UnitsUS).
		Build()

	expected := TimeMachineRequest{
		APIKey:    testAPIKey,
		Latitude:  testLatitude,
		Longitude: testLongitude,
		Time:      testTime,
		Exclude:   []Block{BlockHourly, BlockDaily, BlockAlerts},
		Lang:      LangArabic,
		Units:     UnitsUS,
	}

	assert.Equal(t, expected, request)
}

func TestForecastRequest_URL_Bare(t *testing.T) {
	request := NewForecastRequest(testAPIKey, testLatitude, testLongitude).Build()

	assert.Equal(t,
		"https://api.darksky.net/forecast/some_api_key/6.66,66.6",
		request.URL(DefaultBaseURL),
	)
}

func TestForecastRequest_URL_AllParams(t *testing.T) {
	request := NewForecastRequest(testAPIKey, 40.7128, -74.006).
		ExcludeBlocks(BlockMinutely, BlockFlags).
		Extend(ExtendHourly).
		Lang(LangUkrainian).
		Units(UnitsSI).
		Build()

	raw := request.URL("https://api.darksky.net/forecast")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/forecast/some_api_key/40.7128,-74.006", parsed.Path)
	assert.Equal(t, "minutely,flags", parsed.Query().Get("exclude"))
	assert.Equal(t, "hourly", parsed.Query().Get("extend"))
	assert.Equal(t, "uk", parsed.Query().Get("lang"))
	assert.Equal(t, "si", parsed.Query().Get("units"))
}

func TestForecastRequest_URL_UnsetParamsAbsent(t *testing.T) {
	request := NewForecastRequest(testAPIKey, testLatitude, testLongitude).
		Units(UnitsCA).
		Build()

	raw := request.URL(DefaultBaseURL)

	assert.True(t, strings.HasSuffix(raw, "?units=ca"), "got %q", raw)
	assert.NotContains(t, raw, "exclude")
	assert.NotContains(t, raw, "extend")
	assert.NotContains(t, raw, "lang")
}

func TestTimeMachineRequest_URL(t *testing.T) {
	request := NewTimeMachineRequest(testAPIKey, -33.8688, 151.2093, 1477353600).
		ExcludeBlock(BlockCurrently).
		Build()

	raw := request.URL(DefaultBaseURL)
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/forecast/some_api_key/-33.8688,151.2093,1477353600", parsed.Path)
	assert.Equal(t, "currently", parsed.Query().Get("exclude"))
}
