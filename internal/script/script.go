// Package script runs YAML step scripts against a roster of Arrakeener
// characters
package script

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Actions
const (
	ActionMine  = "mine"
	ActionEat   = "eat"
	ActionSell  = "sell"
	ActionClone = "clone"
	ActionAlias = "alias"
	ActionSet   = "set"
	ActionShow  = "show"
)

// Fields accepted by the set action
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldAffiliation = "affiliation"
	FieldOccupation  = "occupation"
)

//go:embed scenarios/*.yaml
var scenarioFS embed.FS

// Script is a named list of characters and the steps applied to them
type Script struct {
	Name       string      `yaml:"name"`
	Characters []Character `yaml:"characters"`
	Steps      []Step      `yaml:"steps"`
}

// Character declares a handle and the identity of a new Arrakeener
type Character struct {
	Handle      string `yaml:"handle"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Affiliation string `yaml:"affiliation"`
	Occupation  string `yaml:"occupation"`
}

// Step is one action taken through a handle.
//
// For mine, eat and sell the amount is Amount when set, otherwise the
// actor's current spice divided by Divisor, otherwise current spice plus
// Excess, otherwise the operation default.
type Step struct {
	Actor  string `yaml:"actor"`
	Action string `yaml:"action"`

	Amount  *int64 `yaml:"amount,omitempty"`
	Divisor int64  `yaml:"divisor,omitempty"`
	Excess  int64  `yaml:"excess,omitempty"`

	// Target is the new handle for clone and alias
	Target string `yaml:"target,omitempty"`

	// Field and Value are used by set
	Field string `yaml:"field,omitempty"`
	Value string `yaml:"value,omitempty"`

	// ExpectError makes the step pass only if it fails with a message
	// containing this text
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Parse decodes and validates a YAML script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// Load reads a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Scenario loads one of the embedded scenarios by name
func Scenario(name string) (*Script, error) {
	data, err := scenarioFS.ReadFile(path.Join("scenarios", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(Scenarios(), ", "))
	}
	return Parse(data)
}

// Scenarios lists the embedded scenario names
func Scenarios() []string {
	entries, err := scenarioFS.ReadDir("scenarios")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Validate checks the script structure without running it
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script has no steps")
	}

	for i, c := range s.Characters {
		if c.Handle == "" {
			return fmt.Errorf("character %d: handle is required", i)
		}
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	return nil
}

func (st Step) validate() error {
	if st.Actor == "" {
		return fmt.Errorf("actor is required")
	}

	switch st.Action {
	case ActionMine, ActionEat, ActionSell:
		if st.Divisor < 0 {
			return fmt.Errorf("divisor must not be negative")
		}
		if st.Excess < 0 {
			return fmt.Errorf("excess must not be negative")
		}
	case ActionClone, ActionAlias:
		if st.Target == "" {
			return fmt.Errorf("%s requires a target", st.Action)
		}
	case ActionSet:
		switch st.Field {
		case FieldFirstName, FieldLastName, FieldAffiliation, FieldOccupation:
		default:
			return fmt.Errorf("unknown field %q", st.Field)
		}
	case ActionShow:
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}

	return nil
}
