// Package config handles loading and parsing attribute sheet files.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"clampvar/internal/attribute"
	"clampvar/internal/pathutil"

	"gopkg.in/yaml.v3"
)

// Actions that run a sheet method instead of a single attribute operation.
const (
	ActionRegenerate = "regenerate"
	ActionDamage     = "damage"
)

// Config is the top-level sheet file.
type Config struct {
	Version string          `yaml:"version"`
	Sheet   attribute.Sheet `yaml:"sheet"`
	Effects []Effect        `yaml:"effects"`
}

// Effect is one step applied to the sheet. Either Action is set, or Target
// and Op are set together with exactly one of Amount or From.
type Effect struct {
	Name   string `yaml:"name,omitempty"`
	Action string `yaml:"action,omitempty"`
	Target string `yaml:"target,omitempty"`
	Op     string `yaml:"op,omitempty"`
	Amount any    `yaml:"amount,omitempty"`
	From   string `yaml:"from,omitempty"`
	When   any    `yaml:"when,omitempty"`
}

// Label returns the effect name, or a description derived from its fields.
func (e Effect) Label() string {
	if e.Name != "" {
		return e.Name
	}
	switch {
	case e.Action == ActionRegenerate:
		return e.Action
	case e.Action != "":
		return fmt.Sprintf("%s %v", e.Action, e.Amount)
	case e.From != "":
		return fmt.Sprintf("%s %s %s", e.Target, e.Op, e.From)
	}
	return fmt.Sprintf("%s %s %v", e.Target, e.Op, e.Amount)
}

// Load reads and parses a sheet file from the given path.
func Load(path string) (*Config, error) {
	expanded := pathutil.Expand(path)

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates sheet file content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == "" {
		return nil, errors.New("config missing version field")
	}

	if cfg.Version != "1" {
		return nil, fmt.Errorf("unsupported config version: %s", cfg.Version)
	}

	for i, e := range cfg.Effects {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("effect %d: %w", i+1, err)
		}
	}

	return &cfg, nil
}

func (e Effect) validate() error {
	switch e.Action {
	case "":
	case ActionRegenerate:
		if e.Target != "" || e.Op != "" || e.Amount != nil || e.From != "" {
			return errors.New("regenerate takes no target, op, amount or from")
		}
		return nil
	case ActionDamage:
		if e.Amount == nil {
			return errors.New("damage requires an amount")
		}
		if e.Target != "" || e.Op != "" || e.From != "" {
			return errors.New("damage takes only an amount")
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", e.Action)
	}

	if e.Target == "" {
		return errors.New("target cannot be empty")
	}
	if !slices.Contains(attribute.Names(), e.Target) {
		return fmt.Errorf("%w: %q", attribute.ErrUnknownAttribute, e.Target)
	}
	if _, err := attribute.ParseOp(e.Op); err != nil {
		return err
	}

	hasAmount, hasFrom := e.Amount != nil, e.From != ""
	if hasAmount == hasFrom {
		return errors.New("exactly one of amount or from is required")
	}
	if hasFrom && !slices.Contains(attribute.Names(), e.From) {
		return fmt.Errorf("%w: %q", attribute.ErrUnknownAttribute, e.From)
	}
	return nil
}
