// Package config loads the devtoggle configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Microsoft/devtoggle/internal/devstate"
)

// DefaultFileName is looked up in the directory of the executable when no
// configuration path is given.
const DefaultFileName = "devtoggle.toml"

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the devtoggle configuration file.
//
//	log_level = "debug"
//	log_format = "json"
//	log_file = 'C:\ProgramData\devtoggle\devtoggle.log'
//	notify = false
//	trace = true
//	etw = true
//	require_elevation = true
//
//	[aliases]
//	webcam = 'USB\VID_046D&PID_0825\8A2B7C10'
type Config struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	// LogFile, if set, receives log output instead of stderr. The file is
	// rotated once it reaches 10 MB.
	LogFile string `toml:"log_file"`
	// Notify shows a message box when a state change fails. Defaults to true.
	Notify *bool `toml:"notify"`
	// Trace exports OpenCensus spans to the log.
	Trace bool `toml:"trace"`
	// ETW forwards log entries to Event Tracing for Windows.
	ETW bool `toml:"etw"`
	// RequireElevation fails before any device lookup when the process token
	// is not elevated.
	RequireElevation bool `toml:"require_elevation"`
	// Aliases maps short names to device instance IDs.
	Aliases map[string]string `toml:"aliases"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

// Load reads the configuration at path. If path is "" the default location,
// DefaultFileName next to the executable, is used if it exists, and Default()
// otherwise.
func Load(path string) (*Config, error) {
	if path != "" {
		return readConfig(path)
	}
	if path, exists := configPresent(); exists {
		return readConfig(path)
	}
	return Default(), nil
}

// Parse decodes and validates a TOML configuration document.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config data")
	}
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NotifyEnabled returns whether failures should be shown to the user.
func (c *Config) NotifyEnabled() bool {
	return c.Notify == nil || *c.Notify
}

// Validate checks the log settings and that every alias names a usable device
// instance ID.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("invalid log_format %q: must be %q or %q", c.LogFormat, FormatText, FormatJSON)
	}
	for name, id := range c.Aliases {
		if name == "" {
			return errors.New("alias names cannot be empty")
		}
		if err := devstate.ValidateIdentifier(id); err != nil {
			return errors.Wrapf(err, "invalid alias %q", name)
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = logrus.WarnLevel.String()
	}
	if c.LogFormat == "" {
		c.LogFormat = FormatText
	}
}

func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return c, nil
}

// Checks to see if there is a devtoggle.toml in the directory of the executable.
func configPresent() (string, bool) {
	path, err := os.Executable()
	if err != nil {
		return "", false
	}
	path = filepath.Join(filepath.Dir(path), DefaultFileName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
