package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Nil fields were not set
// and fall through to the next source.
type FileConfig struct {
	Workers         *int    `yaml:"workers"`
	Recursive       *bool   `yaml:"recursive"`
	Include         *string `yaml:"include"`
	Exclude         *string `yaml:"exclude"`
	DefaultExcludes *bool   `yaml:"default_excludes"`
	Classifier      *string `yaml:"classifier"`
	ModelPath       *string `yaml:"model_path"`
	NoColor         *bool   `yaml:"no_color"`
	FailOn          *string `yaml:"fail_on"`
	Mask            *bool   `yaml:"mask"`
	AuditLog        *string `yaml:"audit_log"`
}

// ErrNotFound is returned by LoadLocal and LoadGlobal when no file exists.
var ErrNotFound = errors.New("no config file")

var (
	validClassifiers = map[string]bool{"bootstrap": true, "artifact": true}
	validFailOn      = map[string]bool{"none": true, "low": true, "medium": true, "high": true, "critical": true}
)

// Validate checks enumerated values and cross-field requirements.
func (fc FileConfig) Validate() error {
	if fc.Workers != nil && *fc.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", *fc.Workers)
	}
	if fc.Classifier != nil && !validClassifiers[*fc.Classifier] {
		return fmt.Errorf("unknown classifier %q (want bootstrap or artifact)", *fc.Classifier)
	}
	if fc.Classifier != nil && *fc.Classifier == "artifact" && (fc.ModelPath == nil || *fc.ModelPath == "") {
		return errors.New("classifier: artifact requires model_path")
	}
	if fc.FailOn != nil && !validFailOn[*fc.FailOn] {
		return fmt.Errorf("unknown fail_on %q", *fc.FailOn)
	}
	return nil
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LocalNames lists the local config file names in search order.
var LocalNames = []string{".datahunter.yml", ".datahunter.yaml", "datahunter.yml", "datahunter.yaml"}

// LoadLocal searches for a config file in dir.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// GlobalPath returns the global config location under the XDG base directory
// or ~/.config.
func GlobalPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return "", fmt.Errorf("%w: no config dir", ErrNotFound)
	}
	return filepath.Join(base, "datahunter", "config.yml"), nil
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p, err := GlobalPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, fmt.Errorf("%w at %s", ErrNotFound, p)
}

const starter = `# datahunter configuration
# CLI flags override this file; this file overrides ~/.config/datahunter/config.yml.

# concurrent filename scans during directory walks (0 = number of CPUs)
workers: 0
recursive: true
# comma-separated doublestar globs relative to the scan root
include: ""
exclude: ""
# skip .git, node_modules and similar tool directories
default_excludes: false
# bootstrap trains the built-in model at startup; artifact loads model_path
classifier: bootstrap
model_path: ""
no_color: false
# none | low | medium | high | critical
fail_on: high
# mask matched values in JSON and SARIF output
mask: false
# append one JSON line per scan to this file (empty = off)
audit_log: ""
`

// WriteStarter writes a commented starter config to path. It refuses to
// overwrite an existing file unless force is set.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(starter), 0o644)
}
