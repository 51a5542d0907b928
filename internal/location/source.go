package location

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weatherapp/internal/weather"
)

const DefaultPlace = "Halifax"

// Source resolves the location query sent to the weather provider.
type Source interface {
	Query(ctx context.Context) (string, error)
}

type Coordinates struct {
	Lat float64
	Lon float64
}

func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %f out of range", weather.ErrInvalidQuery, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %f out of range", weather.ErrInvalidQuery, c.Lon)
	}
	return nil
}

// Query formats the coordinates the way the provider expects them: "lat,lon".
func (c Coordinates) Query() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

func ParseCoordinates(s string) (Coordinates, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinates{}, fmt.Errorf("%w: expected \"lat,lon\", got %q", weather.ErrInvalidQuery, s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: bad latitude: %v", weather.ErrInvalidQuery, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: bad longitude: %v", weather.ErrInvalidQuery, err)
	}

	c := Coordinates{Lat: lat, Lon: lon}
	return c, c.Validate()
}

type StaticSource struct {
	Place string
}

func (s StaticSource) Query(_ context.Context) (string, error) {
	place := strings.TrimSpace(s.Place)
	if place == "" {
		return "", fmt.Errorf("%w: static place is empty", weather.ErrInvalidQuery)
	}
	return place, nil
}

// CoordinateSource stands in for the device's last known position. A nil
// Coordinates means access was refused or no fix exists.
type CoordinateSource struct {
	Coordinates *Coordinates
}

func (s CoordinateSource) Query(_ context.Context) (string, error) {
	if s.Coordinates == nil {
		return "", weather.ErrPermissionDenied
	}
	if err := s.Coordinates.Validate(); err != nil {
		return "", err
	}
	return s.Coordinates.Query(), nil
}

// FallbackSource uses Fallback only when Primary reports ErrPermissionDenied.
type FallbackSource struct {
	Primary  Source
	Fallback Source
}

func (s FallbackSource) Query(ctx context.Context) (string, error) {
	q, err := s.Primary.Query(ctx)
	if err == nil {
		return q, nil
	}

	if !errors.Is(err, weather.ErrPermissionDenied) {
		return "", err
	}

	log.Warn().Err(err).Msg("device location unavailable, using fallback place")
	return s.Fallback.Query(ctx)
}
