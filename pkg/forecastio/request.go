package forecastio

import (
	"net/url"
	"strconv"
	"strings"
)

// ForecastRequest describes a request for current conditions and the
// upcoming forecast at a location.
type ForecastRequest struct {
	APIKey    string
	Latitude  float64
	Longitude float64
	Exclude   []Block
	Extend    ExtendBy
	Lang      Lang
	Units     Units
}

// TimeMachineRequest describes a request for observed or predicted
// conditions at a location at an arbitrary point in time.
type TimeMachineRequest struct {
	APIKey    string
	Latitude  float64
	Longitude float64
	Time      int64
	Exclude   []Block
	Lang      Lang
	Units     Units
}

// ForecastRequestBuilder assembles a ForecastRequest.
type ForecastRequestBuilder struct {
	req ForecastRequest
}

// NewForecastRequest starts building a forecast request for the given
// coordinates.
func NewForecastRequest(apiKey string, latitude, longitude float64) *ForecastRequestBuilder {
	return &ForecastRequestBuilder{
		req: ForecastRequest{
			APIKey:    apiKey,
			Latitude:  latitude,
			Longitude: longitude,
		},
	}
}

// ExcludeBlock adds a single block to the exclusion list.
func (b *ForecastRequestBuilder) ExcludeBlock(block Block) *ForecastRequestBuilder {
	b.req.Exclude = append(b.req.Exclude, block)
	return b
}

// ExcludeBlocks adds blocks to the exclusion list, preserving order.
func (b *ForecastRequestBuilder) ExcludeBlocks(blocks ...Block) *ForecastRequestBuilder {
	b.req.Exclude = append(b.req.Exclude, blocks...)
	return b
}

// Extend widens the reporting window of the given block.
func (b *ForecastRequestBuilder) Extend(extend ExtendBy) *ForecastRequestBuilder {
	b.req.Extend = extend
	return b
}

// Lang sets the language for text summaries.
func (b *ForecastRequestBuilder) Lang(lang Lang) *ForecastRequestBuilder {
	b.req.Lang = lang
	return b
}

// Units sets the measurement system for response values.
func (b *ForecastRequestBuilder) Units(units Units) *ForecastRequestBuilder {
	b.req.Units = units
	return b
}

// Build returns the assembled request. The builder can keep being used
// afterwards; the returned request holds its own copy of the exclusion
// list.
func (b *ForecastRequestBuilder) Build() ForecastRequest {
	req := b.req
	req.Exclude = append([]Block(nil), b.req.Exclude...)
	return req
}

// TimeMachineRequestBuilder assembles a TimeMachineRequest.
type TimeMachineRequestBuilder struct {
	req TimeMachineRequest
}

// NewTimeMachineRequest starts building a time machine request for the
// given coordinates and unix timestamp.
func NewTimeMachineRequest(apiKey string, latitude, longitude float64, time int64) *TimeMachineRequestBuilder {
	return &TimeMachineRequestBuilder{
		req: TimeMachineRequest{
			APIKey:    apiKey,
			Latitude:  latitude,
			Longitude: longitude,
			Time:      time,
		},
	}
}

// ExcludeBlock adds a single block to the exclusion list.
func (b *TimeMachineRequestBuilder) ExcludeBlock(block Block) *TimeMachineRequestBuilder {
	b.req.Exclude = append(b.req.Exclude, block)
	return b
}

// ExcludeBlocks adds blocks to the exclusion list, preserving order.
func (b *TimeMachineRequestBuilder) ExcludeBlocks(blocks ...Block) *TimeMachineRequestBuilder {
	b.req.Exclude = append(b.req.Exclude, blocks...)
	return b
}

// Lang sets the language for text summaries.
func (b *TimeMachineRequestBuilder) Lang(lang Lang) *TimeMachineRequestBuilder {
	b.req.Lang = lang
	return b
}

// Units sets the measurement system for response values.
func (b *TimeMachineRequestBuilder) Units(units Units) *TimeMachineRequestBuilder {
	b.req.Units = units
	return b
}

// Build returns the assembled request.
func (b *TimeMachineRequestBuilder) Build() TimeMachineRequest {
	req := b.req
	req.Exclude = append([]Block(nil), b.req.Exclude...)
	return req
}

// URL renders the request against the given API base URL.
func (r ForecastRequest) URL(baseURL string) string {
	path := baseURL + "/" + r.APIKey + "/" +
		formatCoordinate(r.Latitude) + "," + formatCoordinate(r.Longitude)
	return path + encodeQuery(r.Exclude, r.Extend, r.Lang, r.Units)
}

// URL renders the request against the given API base URL.
func (r TimeMachineRequest) URL(baseURL string) string {
	path := baseURL + "/" + r.APIKey + "/" +
		formatCoordinate(r.Latitude) + "," + formatCoordinate(r.Longitude) + "," +
		strconv.FormatInt(r.Time, 10)
	return path + encodeQuery(r.Exclude, "", r.Lang, r.Units)
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// encodeQuery builds the query string shared by both request kinds.
// Unset parameters are left out entirely.
func encodeQuery(exclude []Block, extend ExtendBy, lang Lang, units Units) string {
	query := url.Values{}

	if len(exclude) > 0 {
		names := make([]string, len(exclude))
		for i, block := range exclude {
			names[i] = string(block)
		}
		query.Set("exclude", strings.Join(names, ","))
	}
	if extend != "" {
		query.Set("extend", string(extend))
	}
	if lang != "" {
		query.Set("lang", string(lang))
	}
	if units != "" {
		query.Set("units", string(units))
	}

	if len(query) == 0 {
		return ""
	}
	return "?" + query.Encode()
}
