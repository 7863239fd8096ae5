// Package config holds the settings of the iso8601 command: the ambient zone,
// the reference time and how results are written.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/imarsman/iso8601"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
)

// Environment variables read by ApplyEnv
const (
	EnvLocation  = "ISO8601_LOCATION"
	EnvReference = "ISO8601_REFERENCE"
	EnvFormat    = "ISO8601_FORMAT"
	EnvJSON      = "ISO8601_JSON"
)

// Output formats
const (
	FormatDefault  = "default"
	FormatExtended = "extended"
	FormatBasic    = "basic"
	FormatRFC3339  = "rfc3339"
)

// Zone names with a meaning beyond the tz database
const (
	ZoneLocal = "Local"
	ZoneCET   = "CET"
)

var errUnknownFormat = errors.New("unknown output format")

type Config struct {
	Zone      ZoneConfig      `toml:"zone"`
	Reference ReferenceConfig `toml:"reference"`
	Output    OutputConfig    `toml:"output"`
}

type ZoneConfig struct {
	// Location is an IANA name, Local for the host zone or CET for the
	// built-in CET/CEST rule.
	Location string `toml:"location"`
}

type ReferenceConfig struct {
	// Time is an ISO 8601 string. Empty means now.
	Time string `toml:"time"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	JSON   bool   `toml:"json"`
}

func GetDefaultConfig() Config {
	return Config{
		Zone: ZoneConfig{
			Location: ZoneLocal,
		},
		Output: OutputConfig{
			Format: FormatDefault,
		},
	}
}

// LoadConfig read a TOML file over a copy of defaultConfig. Keys missing from
// the file keep their default.
func LoadConfig(filename string, defaultConfig *Config) (*Config, error) {
	config := *defaultConfig

	data, err := toml.LoadFile(filename)
	if err != nil {
		return nil, err
	}

	if err := data.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadEnv load a .env file into the process environment if there is one.
// Variables already set are not overwritten.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	var present []string
	for _, f := range filenames {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}

	return godotenv.Load(present...)
}

// ApplyEnv override settings from the environment
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvLocation); ok && v != "" {
		c.Zone.Location = v
	}
	if v, ok := os.LookupEnv(EnvReference); ok && v != "" {
		c.Reference.Time = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvJSON); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Output.JSON = b
	}

	return nil
}

// ZoneProvider the ambient zone named by Zone.Location
func (c *Config) ZoneProvider() (iso8601.ZoneProvider, error) {
	switch c.Zone.Location {
	case "", ZoneLocal:
		return iso8601.LocationZone{Location: time.Local}, nil
	case ZoneCET:
		return iso8601.CentralEuropeanZone, nil
	}

	l, err := time.LoadLocation(c.Zone.Location)
	if err != nil {
		return nil, err
	}
	return iso8601.LocationZone{Location: l}, nil
}

// ReferenceTime the configured reference, or now in the ambient zone of p.
// The reference is itself parsed with p, with now as its own reference.
func (c *Config) ReferenceTime(p *iso8601.Parser, now time.Time) (time.Time, error) {
	now = p.In(now)
	if c.Reference.Time == "" {
		return now, nil
	}
	ts, err := p.ParseAt(c.Reference.Time, now)
	if err != nil {
		return time.Time{}, err
	}
	return ts.Time(), nil
}

// Formatter the function writing a timestamp in the configured format
func (c *Config) Formatter() (func(iso8601.Timestamp) string, error) {
	switch c.Output.Format {
	case "", FormatDefault:
		return iso8601.Timestamp.String, nil
	case FormatExtended:
		return iso8601.Timestamp.ISO8601, nil
	case FormatBasic:
		return iso8601.Timestamp.ISO8601Compact, nil
	case FormatRFC3339:
		return iso8601.Timestamp.RFC3339, nil
	}
	return nil, errUnknownFormat
}
