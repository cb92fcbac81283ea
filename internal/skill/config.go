package skill

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigName is the registry file looked up by FindConfig.
const ConfigName = "skillstub.yaml"

type registryFile struct {
	Skills []skillEntry `yaml:"skills"`
}

type skillEntry struct {
	Name     string `yaml:"name"`
	Outcome  string `yaml:"outcome"`
	Duration string `yaml:"duration"`
}

// LoadRegistry reads a YAML registry file and builds a Registry from it.
// Validation (duplicate names, unknown outcomes, bad durations) happens
// at load time so a bad file never reaches dispatch.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening registry file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var file registryFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	descs := make([]Descriptor, 0, len(file.Skills))
	for _, e := range file.Skills {
		outcome, err := parseOutcome(e.Outcome)
		if err != nil {
			return nil, fmt.Errorf("skill %q: %w", e.Name, err)
		}

		var dur time.Duration
		if e.Duration != "" {
			dur, err = time.ParseDuration(e.Duration)
			if err != nil {
				return nil, fmt.Errorf("skill %q: invalid duration %q: %w", e.Name, e.Duration, err)
			}
		}

		descs = append(descs, Descriptor{Name: e.Name, Outcome: outcome, Duration: dur})
	}

	reg, err := NewRegistry(descs...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

func parseOutcome(s string) (Status, error) {
	switch s {
	case "success":
		return StatusSuccess, nil
	case "failure":
		return StatusFailure, nil
	default:
		return StatusError, fmt.Errorf("unknown outcome %q (want success or failure)", s)
	}
}

// FindConfig walks upward from startDir looking for ConfigName.
// A miss is a clean result: empty path and nil error.
func FindConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, ConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
