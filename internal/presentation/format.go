package presentation

import (
	"fmt"
	"math"
	"time"
)

const LoadingLabel = "Loading..."

func round(v float64) int {
	return int(math.Round(v))
}

func Temperature(c float64) string {
	return fmt.Sprintf("%d°C", round(c))
}

func Degrees(c float64) string {
	return fmt.Sprintf("%d°", round(c))
}

func HighLow(maxC, minC float64) string {
	return fmt.Sprintf("H: %s  L: %s", Degrees(maxC), Degrees(minC))
}

func WindSpeed(kph float64) string {
	return fmt.Sprintf("%d km/h", round(kph))
}

func Percent[T int | float64](p T) string {
	return fmt.Sprintf("%d%%", round(float64(p)))
}

// Millimeters keeps one decimal for amounts below 10 mm.
func Millimeters(mm float64) string {
	if mm > 0 && mm < 10 && mm != math.Trunc(mm) {
		return fmt.Sprintf("%.1f mm", mm)
	}
	return fmt.Sprintf("%d mm", round(mm))
}

// DayLabel turns a provider date (2025-05-02) into "Fri, May 2". Anything
// that does not parse is returned as is.
func DayLabel(date string) string {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return t.Format("Mon, Jan 2")
}
