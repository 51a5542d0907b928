package weatherquery

import (
	"time"
)

type WeatherQuery struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FetchID      string    `json:"fetch_id" gorm:"column:fetch_id;size:36"`
	Query        string    `json:"query" gorm:"index:idx_query;index:idx_query_created_at"`
	LocationName string    `json:"location_name" gorm:"column:location_name"`
	TemperatureC float64   `json:"temperature_c" gorm:"column:temperature_c"`
	Condition    string    `json:"condition"`
	ForecastDays int       `json:"forecast_days" gorm:"column:forecast_days"`
	Success      bool      `json:"success"`
	ErrorKind    string    `json:"error_kind,omitempty" gorm:"column:error_kind"`
	RequestCount int       `json:"request_count" gorm:"column:request_count"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_query_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
