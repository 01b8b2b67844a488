package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultFilename = "gangway.yaml"

// File is the declarative entry-point document. It names the application
// adapter to run and carries the few process options an application is
// allowed to pin down; flags and environment still override.
type File struct {
	App           string `yaml:"app"`
	Greeting      string `yaml:"greeting"`
	Port          int    `yaml:"port"`
	HandleTimeout string `yaml:"handle_timeout"`
}

func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(raw)
}

func LoadBytes(raw []byte) (*File, error) {
	file := &File{}
	if err := yaml.Unmarshal(raw, file); err != nil {
		return nil, fmt.Errorf("entry-point file: %v", err)
	}

	if file.App == "" {
		return nil, fmt.Errorf("entry-point file: missing app name")
	}
	if file.Port < 0 || file.Port > 65535 {
		return nil, fmt.Errorf("entry-point file: invalid port: %d", file.Port)
	}

	return file, nil
}

// Timeout parses the handle_timeout value, falling back to the given
// default when the file leaves it empty.
func (f *File) Timeout(fallback time.Duration) (time.Duration, error) {
	if f.HandleTimeout == "" {
		return fallback, nil
	}

	timeout, err := time.ParseDuration(f.HandleTimeout)
	if err != nil {
		return 0, fmt.Errorf("entry-point file: handle_timeout: %v", err)
	}
	if timeout < 0 {
		return 0, fmt.Errorf("entry-point file: handle_timeout: cannot be negative: '%s'", f.HandleTimeout)
	}

	return timeout, nil
}
