// Package config loads the host configuration from flags, environment and an
// optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Program selects what the binary does after parsing.
type Program int

const (
	ProgramMain Program = iota
	ProgramHelp
	ProgramVersion
)

// Config holds the host settings.
type Config struct {
	// Zoom is the default zoom factor (the --zoom percentage / 100).
	Zoom float32
	// ScaleFactor overrides the DPI derived from the terminal when > 0.
	ScaleFactor float32
	FPS         float32
	Debug       bool
	Bitmap      bool
	SixelOnly   bool
	// ConfigFile is the resolved config file path, read if it exists.
	ConfigFile string
	Program    Program
	// Args are the raw arguments Load was called with.
	Args []string
}

const envPrefix = "TERMBRIDGE"

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("termbridge", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Float32P("zoom", "z", 100, "default page zoom in percent")
	flags.Float32P("scale", "s", 0, "device scale factor (0 derives it from the terminal)")
	flags.Float32P("fps", "f", 60, "maximum frames per second")
	flags.BoolP("debug", "d", false, "write a debug log")
	flags.BoolP("bitmap", "b", false, "render pages as bitmaps")
	flags.Bool("sixel-only", true, "draw graphics with sixel only")
	flags.Bool("legacy-text", false, "use legacy text rendering (disables --sixel-only)")
	flags.StringP("config", "c", "", "path to a TOML config file")
	flags.BoolP("help", "h", false, "show help")
	flags.BoolP("version", "v", false, "show version")
	return flags
}

// Usage returns the flag summary.
func Usage() string {
	return newFlagSet().FlagUsages()
}

// Load parses args (without the program name) and merges environment
// variables prefixed with TERMBRIDGE_ and the config file on top of the
// defaults. Flags win over environment, which wins over the file.
func Load(args []string) (Config, error) {
	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	path, explicit, err := configPath(v.GetString("config"))
	if err != nil {
		return Config{}, err
	}
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := Config{
		ConfigFile: path,
		Args:       append([]string(nil), args...),
	}

	percent, err := cast.ToFloat32E(v.Get("zoom"))
	if err != nil {
		return Config{}, fmt.Errorf("zoom: %w", err)
	}
	c.Zoom = percent / 100

	if c.ScaleFactor, err = cast.ToFloat32E(v.Get("scale")); err != nil {
		return Config{}, fmt.Errorf("scale: %w", err)
	}
	if c.FPS, err = cast.ToFloat32E(v.Get("fps")); err != nil {
		return Config{}, fmt.Errorf("fps: %w", err)
	}

	c.Debug = parseSwitch(v.GetString("debug"), false)
	c.Bitmap = parseSwitch(v.GetString("bitmap"), false)
	c.SixelOnly = parseSwitch(v.GetString("sixel-only"), true)
	if parseSwitch(v.GetString("legacy-text"), false) {
		c.SixelOnly = false
	}

	switch {
	case parseSwitch(v.GetString("help"), false):
		c.Program = ProgramHelp
	case parseSwitch(v.GetString("version"), false):
		c.Program = ProgramVersion
	}
	return c, nil
}

// Reload parses the arguments of a previous Load again, picking up config
// file and environment changes.
func Reload(c Config) (Config, error) {
	return Load(c.Args)
}

func configPath(flagValue string) (string, bool, error) {
	if flagValue != "" {
		return filepath.Clean(flagValue), true, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false, fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "termbridge", "config.toml"), false, nil
}

// parseSwitch reads a boolean flag or environment value. Unknown values fall
// back to def.
func parseSwitch(value string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	case "0", "false", "off", "no":
		return false
	default:
		return def
	}
}
