package presentation

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 40

func RenderCurrent(w io.Writer, v CurrentView) error {
	var b strings.Builder

	fmt.Fprintln(&b, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(&b, "%s  [%s]\n", v.Location, v.Icon)
	fmt.Fprintln(&b, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(&b, "%s  %s\n", v.Temperature, v.Condition)
	if v.HighLow != "" {
		fmt.Fprintln(&b, v.HighLow)
	}
	fmt.Fprintln(&b)
	for _, card := range v.Cards {
		fmt.Fprintf(&b, "%-24s %s\n", card.Label+":", card.Value)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func RenderDaily(w io.Writer, v DailyView) error {
	var b strings.Builder

	fmt.Fprintln(&b, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(&b, v.Location)
	fmt.Fprintln(&b, strings.Repeat("=", ruleWidth))
	for _, d := range v.Days {
		fmt.Fprintf(&b, "%s  %s [%s]\n", d.DayLabel, d.Condition, d.Icon)
		fmt.Fprintf(&b, "  High: %s  Low: %s\n", d.High, d.Low)
		fmt.Fprintf(&b, "  Wind: %s  Humidity: %s\n", d.Wind, d.Humidity)
		fmt.Fprintf(&b, "  Precipitation: %s  Chance: %s\n", d.Precipitation, d.ChanceOfRain)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
