package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the optional configuration file read from the working directory.
const FileName = "inplace.yaml"

// Config represents the optional inplace.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Theme   ThemeConfig   `yaml:"theme"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Title string `yaml:"title,omitempty"`
}

// ThemeConfig contains presentation settings.
type ThemeConfig struct {
	Padding *int   `yaml:"padding,omitempty"`
	Accent  string `yaml:"accent,omitempty"`
}

// MetricsConfig controls the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root        string
	Title       string
	Padding     int
	Accent      string
	MetricsAddr string
}

// DefaultAccent is used when theme.accent is unset.
const DefaultAccent = "#ffb000"

// LoadOptional reads inplace.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads inplace.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.App.Title)
	if title == "" {
		title = defaultTitle(dir)
	}

	padding := 1
	if cfg.Theme.Padding != nil {
		padding = *cfg.Theme.Padding
	}
	if padding < 0 {
		return nil, fmt.Errorf("theme.padding cannot be negative (got %d)", padding)
	}

	accent := strings.TrimSpace(cfg.Theme.Accent)
	if accent == "" {
		accent = DefaultAccent
	}

	addr := strings.TrimSpace(cfg.Metrics.Addr)
	if addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return nil, fmt.Errorf("metrics.addr is not host:port (%q): %w", addr, err)
		}
	}

	return &Resolved{
		Root:        dir,
		Title:       title,
		Padding:     padding,
		Accent:      accent,
		MetricsAddr: addr,
	}, nil
}

// defaultTitle names the app after the enclosing module, falling back to the
// directory name.
func defaultTitle(dir string) string {
	base := filepath.Base(dir)
	if path := modulePath(dir); path != "" {
		modName, _, ok := module.SplitPathVersion(path)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "inplace"
	}
	return base
}

func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}
