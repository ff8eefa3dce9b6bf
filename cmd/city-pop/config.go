package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every flag name to form its environment
// variable, e.g. CITYPOP_FILE or CITYPOP_SKIP_MALFORMED.
const envPrefix = "CITYPOP"

// defaultRadiusKm applies when --near is set without --radius.
const defaultRadiusKm = 50.0

// config is the resolved command line configuration.
type config struct {
	File          string
	Quiet         bool
	Debug         bool
	Fuzzy         int
	SkipMalformed bool
	Near          *point
	RadiusKm      float64
}

type point struct {
	Lat, Lng float64
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringP("file", "f", "", "Choose an input file, instead of using STDIN.")
	fs.BoolP("quiet", "q", false, "Silences errors and warnings.")
	fs.Int("fuzzy", 0, "Accept city names within this many edits (max 3).")
	fs.String("near", "", "Only match cities near `lat,lng`.")
	fs.Float64("radius", defaultRadiusKm, "Radius in km for --near.")
	fs.Bool("skip-malformed", false, "Skip malformed records instead of failing.")
	fs.Bool("debug", false, "Enable debug logging on stderr.")
}

// loadConfig resolves flags and CITYPOP_* environment variables. Flags set
// on the command line win over the environment.
func loadConfig(fs *pflag.FlagSet) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, fmt.Errorf("binding flags: %w", err)
	}

	cfg := config{
		File:          v.GetString("file"),
		Quiet:         v.GetBool("quiet"),
		Debug:         v.GetBool("debug"),
		Fuzzy:         v.GetInt("fuzzy"),
		SkipMalformed: v.GetBool("skip-malformed"),
		RadiusKm:      v.GetFloat64("radius"),
	}

	if cfg.Fuzzy < 0 {
		return config{}, fmt.Errorf("invalid --fuzzy %d: must not be negative", cfg.Fuzzy)
	}

	if near := v.GetString("near"); near != "" {
		p, err := parsePoint(near)
		if err != nil {
			return config{}, fmt.Errorf("invalid --near %q: %w", near, err)
		}
		if cfg.RadiusKm <= 0 {
			return config{}, fmt.Errorf("invalid --radius %v: must be positive", cfg.RadiusKm)
		}
		cfg.Near = &p
	}
	return cfg, nil
}

// parsePoint parses "lat,lng" in decimal degrees.
func parsePoint(s string) (point, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return point{}, fmt.Errorf("want lat,lng")
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return point{}, fmt.Errorf("latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return point{}, fmt.Errorf("longitude: %w", err)
	}
	if lat < -90 || lat > 90 {
		return point{}, fmt.Errorf("latitude %v out of range", lat)
	}
	if lng < -180 || lng > 180 {
		return point{}, fmt.Errorf("longitude %v out of range", lng)
	}
	return point{Lat: lat, Lng: lng}, nil
}
