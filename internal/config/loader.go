package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Script describes a demo run: which builtin command handles which
// notification, which recorder mediators exist, and the steps to perform.
type Script struct {
	Commands        []CommandBinding `json:"commands" yaml:"commands" toml:"commands"`
	Mediators       []MediatorSpec   `json:"mediators" yaml:"mediators" toml:"mediators"`
	Steps           []Step           `json:"steps" yaml:"steps" toml:"steps"`
	ContinueOnError bool             `json:"continue_on_error" yaml:"continue_on_error" toml:"continue_on_error"`
}

// CommandBinding maps a notification name to a builtin command name.
type CommandBinding struct {
	Notification string `json:"notification" yaml:"notification" toml:"notification"`
	Command      string `json:"command" yaml:"command" toml:"command"`
}

// MediatorSpec declares a recorder mediator and its notification interests.
type MediatorSpec struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Interests []string `json:"interests" yaml:"interests" toml:"interests"`
}

// Step is one action of a run. Exactly one of Notification, RemoveCommand or
// RemoveMediator is set.
type Step struct {
	Notification   string `json:"notification,omitempty" yaml:"notification,omitempty" toml:"notification,omitempty"`
	Body           any    `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
	Type           string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	RemoveCommand  string `json:"remove_command,omitempty" yaml:"remove_command,omitempty" toml:"remove_command,omitempty"`
	RemoveMediator string `json:"remove_mediator,omitempty" yaml:"remove_mediator,omitempty" toml:"remove_mediator,omitempty"`
}

// Load reads a script file based on its extension.
// Supports: .yaml/.yml, .json, .toml. A leading "~/" is expanded.
func Load(path string) (Script, error) {
	var s Script
	if path == "" {
		return s, fmt.Errorf("empty script path")
	}
	path, err := scriptPath(path)
	if err != nil {
		return s, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &s); err != nil {
			return s, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &s); err != nil {
			return s, fmt.Errorf("parse json: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &s); err != nil {
			return s, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return s, fmt.Errorf("unsupported script extension: %s", ext)
	}
	return s, s.Validate()
}

// Validate checks the structural rules Load relies on.
func (s Script) Validate() error {
	for i, c := range s.Commands {
		if c.Notification == "" || c.Command == "" {
			return fmt.Errorf("commands[%d]: notification and command are required", i)
		}
	}
	seen := map[string]bool{}
	for i, m := range s.Mediators {
		if m.Name == "" {
			return fmt.Errorf("mediators[%d]: name is required", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("mediators[%d]: duplicate name %q", i, m.Name)
		}
		seen[m.Name] = true
	}
	for i, st := range s.Steps {
		n := 0
		for _, v := range []string{st.Notification, st.RemoveCommand, st.RemoveMediator} {
			if v != "" {
				n++
			}
		}
		if n != 1 {
			return fmt.Errorf("steps[%d]: exactly one of notification, remove_command, remove_mediator is required", i)
		}
	}
	return nil
}
