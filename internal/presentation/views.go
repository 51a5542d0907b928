package presentation

import (
	"ulascansenturk/weatherapp/internal/conditions"
	"ulascansenturk/weatherapp/internal/weather"
)

type InfoCard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CurrentView struct {
	Location    string             `json:"location"`
	Background  conditions.AssetID `json:"background"`
	Icon        conditions.AssetID `json:"icon"`
	Temperature string             `json:"temperature"`
	Condition   string             `json:"condition"`
	HighLow     string             `json:"high_low,omitempty"`
	Cards       []InfoCard         `json:"cards"`
}

type DailyItem struct {
	Date          string             `json:"date"`
	DayLabel      string             `json:"day_label"`
	Condition     string             `json:"condition"`
	Icon          conditions.AssetID `json:"icon"`
	High          string             `json:"high"`
	Low           string             `json:"low"`
	Wind          string             `json:"wind"`
	Humidity      string             `json:"humidity"`
	Precipitation string             `json:"precipitation"`
	ChanceOfRain  string             `json:"chance_of_rain"`
}

type DailyView struct {
	Location   string             `json:"location"`
	Background conditions.AssetID `json:"background"`
	Days       []DailyItem        `json:"days"`
}

func NewCurrentView(s weather.Snapshot) CurrentView {
	assets := conditions.Map(s.Current.Condition)

	view := CurrentView{
		Location:    s.Location.Label(),
		Background:  assets.Background,
		Icon:        assets.Icon,
		Temperature: Temperature(s.Current.TemperatureC),
		Condition:   s.Current.Condition,
		Cards: []InfoCard{
			{Label: "Wind Direction", Value: s.Current.WindDirection},
			{Label: "Wind Speed", Value: WindSpeed(s.Current.WindSpeedKph)},
			{Label: "Humidity", Value: Percent(s.Current.HumidityPct)},
			{Label: "Precipitation", Value: Millimeters(s.Current.PrecipitationMm)},
		},
	}

	if today, ok := s.Today(); ok {
		view.HighLow = HighLow(today.MaxTempC, today.MinTempC)
		view.Cards = append(view.Cards, InfoCard{
			Label: "Chance of Precipitation",
			Value: Percent(today.ChanceOfRainPct),
		})
	}

	return view
}

// NewDailyView keeps the provider's day order.
func NewDailyView(s weather.Snapshot) DailyView {
	view := DailyView{
		Location:   s.Location.Label(),
		Background: conditions.Map(s.Current.Condition).Background,
		Days:       make([]DailyItem, 0, len(s.Forecast)),
	}

	for _, day := range s.Forecast {
		view.Days = append(view.Days, DailyItem{
			Date:          day.Date,
			DayLabel:      DayLabel(day.Date),
			Condition:     day.Condition,
			Icon:          conditions.Map(day.Condition).Icon,
			High:          Degrees(day.MaxTempC),
			Low:           Degrees(day.MinTempC),
			Wind:          WindSpeed(day.MaxWindKph),
			Humidity:      Percent(day.AvgHumidityPct),
			Precipitation: Millimeters(day.TotalPrecipMm),
			ChanceOfRain:  Percent(day.ChanceOfRainPct),
		})
	}

	return view
}
