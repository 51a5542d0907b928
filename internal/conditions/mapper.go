package conditions

import "strings"

type AssetID string

const (
	ThunderstormBackground AssetID = "thunderstorm_background"
	ThunderstormIcon       AssetID = "thunderstorm"
	SnowBackground         AssetID = "snow_background"
	SnowIcon               AssetID = "snow"
	RainyBackground        AssetID = "rainy_background"
	RainyIcon              AssetID = "rainy"
	FogBackground          AssetID = "fog_background"
	FogIcon                AssetID = "fog"
	CloudyBackground       AssetID = "cloudy_background"
	CloudyIcon             AssetID = "cloudy"
	SunnyBackground        AssetID = "sunny_background"
	SunnyIcon              AssetID = "sunny"
)

type Assets struct {
	Background AssetID `json:"background"`
	Icon       AssetID `json:"icon"`
}

type rule struct {
	kind     string
	keywords []string
	assets   Assets
}

// rules are evaluated top to bottom; the first rule with a keyword contained
// in the condition text wins. Background and icon share this one table.
var rules = []rule{
	{"thunderstorm", []string{"thunder", "storm"}, Assets{ThunderstormBackground, ThunderstormIcon}},
	{"snow", []string{"snow"}, Assets{SnowBackground, SnowIcon}},
	{"rain", []string{"rain"}, Assets{RainyBackground, RainyIcon}},
	{"fog", []string{"fog", "mist"}, Assets{FogBackground, FogIcon}},
	{"cloudy", []string{"cloud", "overcast"}, Assets{CloudyBackground, CloudyIcon}},
	{"sunny", []string{"sunny"}, Assets{SunnyBackground, SunnyIcon}},
}

const defaultKind = "sunny"

var defaultAssets = Assets{SunnyBackground, SunnyIcon}

func Map(text string) Assets {
	if r, ok := match(text); ok {
		return r.assets
	}
	return defaultAssets
}

// Kind returns the name of the matched rule, "sunny" when nothing matches.
func Kind(text string) string {
	if r, ok := match(text); ok {
		return r.kind
	}
	return defaultKind
}

func match(text string) (rule, bool) {
	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r, true
			}
		}
	}
	return rule{}, false
}
