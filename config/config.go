package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = "config.yaml"
	// appDir names the per-user config directory under XDG_CONFIG_HOME.
	appDir = "image-cropper"

	DefaultTargetWidth  = 700
	DefaultTargetHeight = 900
)

// Config holds the output settings read once at startup.
type Config struct {
	Debug        bool   `yaml:"debug"`
	OutputFolder string `yaml:"output_folder"`
	TargetWidth  int    `yaml:"target_width"`
	TargetHeight int    `yaml:"target_height"`
}

// ReadError reports a config file that exists but could not be read or parsed.
// Callers recover by using the defaults returned alongside it.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("config %s: %v", e.Path, e.Err) }

func (e *ReadError) Unwrap() error { return e.Err }

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		OutputFolder: DefaultOutputFolder(),
		TargetWidth:  DefaultTargetWidth,
		TargetHeight: DefaultTargetHeight,
	}
}

// DefaultOutputFolder returns the user's Downloads directory under home.
func DefaultOutputFolder() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return "Downloads"
	}
	return filepath.Join(home, "Downloads")
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.TargetWidth <= 0 {
		c.TargetWidth = DefaultTargetWidth
	}
	if c.TargetHeight <= 0 {
		c.TargetHeight = DefaultTargetHeight
	}
	if c.OutputFolder == "" {
		c.OutputFolder = DefaultOutputFolder()
		return nil
	}
	expanded, err := homedir.Expand(c.OutputFolder)
	if err != nil {
		return err
	}
	c.OutputFolder = filepath.Clean(expanded)
	return nil
}

// Locate returns the first existing config file: FileName in the working
// directory, then the per-user XDG config file. When none exists the working
// directory candidate is returned so Load falls back to defaults.
func Locate() string {
	candidates := []string{FileName}
	if p, err := xdg.SearchConfigFile(filepath.Join(appDir, FileName)); err == nil {
		candidates = append(candidates, p)
	}
	for _, p := range candidates {
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p
		}
	}
	return FileName
}

// Load reads configuration from the YAML file at path. A missing file yields
// DefaultConfig() and no error. An unreadable or malformed file yields
// DefaultConfig() together with a *ReadError.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &ReadError{Path: path, Err: err}
	}
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, &ReadError{Path: path, Err: err}
	}
	if err := parsed.Validate(); err != nil {
		return cfg, &ReadError{Path: path, Err: err}
	}
	return &parsed, nil
}
