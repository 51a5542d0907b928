package weather

import (
	"strings"
	"time"
)

type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	LocalTime string `json:"local_time"`
}

// Label is the header text shown for a fetched snapshot.
func (l Location) Label() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{l.Name, l.Region} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) == 0 {
		return strings.TrimSpace(l.Country)
	}

	return strings.Join(parts, ", ")
}

type Current struct {
	TemperatureC    float64 `json:"temperature_c"`
	Condition       string  `json:"condition"`
	ConditionIcon   string  `json:"condition_icon,omitempty"`
	WindSpeedKph    float64 `json:"wind_speed_kph"`
	WindDirection   string  `json:"wind_direction"`
	HumidityPct     int     `json:"humidity_pct"`
	PrecipitationMm float64 `json:"precipitation_mm"`
}

type DayForecast struct {
	Date            string  `json:"date"`
	MaxTempC        float64 `json:"max_temp_c"`
	MinTempC        float64 `json:"min_temp_c"`
	Condition       string  `json:"condition"`
	ChanceOfRainPct int     `json:"chance_of_rain_pct"`
	TotalPrecipMm   float64 `json:"total_precip_mm"`
	AvgHumidityPct  float64 `json:"avg_humidity_pct"`
	MaxWindKph      float64 `json:"max_wind_kph"`
}

// Snapshot is the result of one successful fetch. It is never mutated after
// construction; a newer fetch replaces it as a whole.
type Snapshot struct {
	Location  Location      `json:"location"`
	Current   Current       `json:"current"`
	Forecast  []DayForecast `json:"forecast"`
	FetchedAt time.Time     `json:"fetched_at"`
}

func (s Snapshot) Today() (DayForecast, bool) {
	if len(s.Forecast) == 0 {
		return DayForecast{}, false
	}
	return s.Forecast[0], true
}

// Clone returns a copy that shares no slice storage with s.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Forecast != nil {
		out.Forecast = make([]DayForecast, len(s.Forecast))
		copy(out.Forecast, s.Forecast)
	}
	return out
}
