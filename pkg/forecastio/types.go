package forecastio

// Icon identifies the machine-readable summary icon for a data point or
// data block.
type Icon string

const (
	IconClearDay          Icon = "clear-day"
	IconClearNight        Icon = "clear-night"
	IconRain              Icon = "rain"
	IconSnow              Icon = "snow"
	IconSleet             Icon = "sleet"
	IconWind              Icon = "wind"
	IconFog               Icon = "fog"
	IconCloudy            Icon = "cloudy"
	IconPartlyCloudyDay   Icon = "partly-cloudy-day"
	IconPartlyCloudyNight Icon = "partly-cloudy-night"
	IconHail              Icon = "hail"
	IconThunderstorm      Icon = "thunderstorm"
	IconTornado           Icon = "tornado"
)

// PrecipType is the kind of precipitation occurring at a particular time.
type PrecipType string

const (
	PrecipRain  PrecipType = "rain"
	PrecipSnow  PrecipType = "snow"
	PrecipSleet PrecipType = "sleet"
)

// Block names a section of the API response. Blocks can be excluded
// from a request to save bandwidth.
type Block string

const (
	BlockCurrently Block = "currently"
	BlockMinutely  Block = "minutely"
	BlockHourly    Block = "hourly"
	BlockDaily     Block = "daily"
	BlockAlerts    Block = "alerts"
	BlockFlags     Block = "flags"
)

// ExtendBy widens the reporting window of a block. The API currently
// supports extending hourly data from 48 to 168 hours.
type ExtendBy string

const ExtendHourly ExtendBy = "hourly"

// Units selects the measurement system used for response values.
type Units string

const (
	UnitsAuto Units = "auto"
	UnitsCA   Units = "ca"
	UnitsUK   Units = "uk2"
	UnitsUS   Units = "us"
	UnitsSI   Units = "si"
)

// Lang selects the language for text summaries.
type Lang string

const (
	LangArabic             Lang = "ar"
	LangAzerbaijani        Lang = "az"
	LangBelarusian         Lang = "be"
	LangBosnian            Lang = "bs"
	LangCzech              Lang = "cz"
	LangGerman             Lang = "de"
	LangGreek              Lang = "el"
	LangEnglish            Lang = "en"
	LangSpanish            Lang = "es"
	LangFrench             Lang = "fr"
	LangCroatian           Lang = "hr"
	LangHungarian          Lang = "hu"
	LangIndonesian         Lang = "id"
	LangItalian            Lang = "it"
	LangIcelandic          Lang = "is"
	LangCornish            Lang = "kw"
	LangNorwegianBokmal    Lang = "nb"
	LangDutch              Lang = "nl"
	LangPolish             Lang = "pl"
	LangPortuguese         Lang = "pt"
	LangRussian            Lang = "ru"
	LangSlovak             Lang = "sk"
	LangSerbian            Lang = "sr"
	LangSwedish            Lang = "sv"
	LangTetum              Lang = "tet"
	LangTurkish            Lang = "tr"
	LangUkrainian          Lang = "uk"
	LangPigLatin           Lang = "x-pig-latin"
	LangSimplifiedChinese  Lang = "zh"
	LangTraditionalChinese Lang = "zh-tw"
)

// DataPoint holds the weather conditions at a single moment, or the
// aggregate conditions over the period the containing block covers.
// Time is always present; every other field is optional and omitted
// by the API when no data is available.
type DataPoint struct {
	ApparentTemperature        float64    `json:"apparentTemperature,omitempty"`
	ApparentTemperatureMax     float64    `json:"apparentTemperatureMax,omitempty"`
	ApparentTemperatureMaxTime int64      `json:"apparentTemperatureMaxTime,omitempty"`
	ApparentTemperatureMin     float64    `json:"apparentTemperatureMin,omitempty"`
	ApparentTemperatureMinTime int64      `json:"apparentTemperatureMinTime,omitempty"`
	CloudCover                 float64    `json:"cloudCover,omitempty"`
	DewPoint                   float64    `json:"dewPoint,omitempty"`
	Humidity                   float64    `json:"humidity,omitempty"`
	Icon                       Icon       `json:"icon,omitempty"`
	MoonPhase                  float64    `json:"moonPhase,omitempty"`
	NearestStormBearing        float64    `json:"nearestStormBearing,omitempty"`
	NearestStormDistance       float64    `json:"nearestStormDistance,omitempty"`
	Ozone                      float64    `json:"ozone,omitempty"`
	PrecipAccumulation         float64    `json:"precipAccumulation,omitempty"`
	PrecipIntensity            float64    `json:"precipIntensity,omitempty"`
	PrecipIntensityMax         float64    `json:"precipIntensityMax,omitempty"`
	PrecipIntensityMaxTime     int64      `json:"precipIntensityMaxTime,omitempty"`
	PrecipProbability          float64    `json:"precipProbability,omitempty"`
	PrecipType                 PrecipType `json:"precipType,omitempty"`
	Pressure                   float64    `json:"pressure,omitempty"`
	Summary                    string     `json:"summary,omitempty"`
	SunriseTime                int64      `json:"sunriseTime,omitempty"`
	SunsetTime                 int64      `json:"sunsetTime,omitempty"`
	Temperature                float64    `json:"temperature,omitempty"`
	TemperatureMax             float64    `json:"temperatureMax,omitempty"`
	TemperatureMaxTime         int64      `json:"temperatureMaxTime,omitempty"`
	TemperatureMin             float64    `json:"temperatureMin,omitempty"`
	TemperatureMinTime         int64      `json:"temperatureMinTime,omitempty"`
	Time                       int64      `json:"time"`
	Visibility                 float64    `json:"visibility,omitempty"`
	WindBearing                float64    `json:"windBearing,omitempty"`
	WindSpeed                  float64    `json:"windSpeed,omitempty"`
}

// DataBlock is a sequence of data points covering a period of time,
// with an optional human-readable summary of the whole period.
type DataBlock struct {
	Data    []DataPoint `json:"data"`
	Summary string      `json:"summary,omitempty"`
	Icon    Icon        `json:"icon,omitempty"`
}

// Alert is a severe weather warning issued by a government authority
// for the requested location.
type Alert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Expires     int64  `json:"expires"`
	URI         string `json:"uri"`
}

// Flags carries miscellaneous metadata about the request.
type Flags struct {
	DarkskyUnavailable string   `json:"darksky-unavailable,omitempty"`
	MetnoLicense       string   `json:"metno-license,omitempty"`
	Sources            []string `json:"sources"`
	Units              Units    `json:"units"`
}

// Response is a decoded Forecast or Time Machine API response.
//
// APICalls and ResponseTime are taken from the X-Forecast-API-Calls
// and X-Response-Time response headers, not from the JSON body, and
// are zero when the headers are absent.
type Response struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Offset    float64    `json:"offset,omitempty"`
	Currently *DataPoint `json:"currently,omitempty"`
	Minutely  *DataBlock `json:"minutely,omitempty"`
	Hourly    *DataBlock `json:"hourly,omitempty"`
	Daily     *DataBlock `json:"daily,omitempty"`
	Alerts    []Alert    `json:"alerts,omitempty"`
	Flags     *Flags     `json:"flags,omitempty"`

	APICalls     int    `json:"-"`
	ResponseTime string `json:"-"`
}
