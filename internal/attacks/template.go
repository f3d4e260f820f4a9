// Package attacks provides attack-template loading, parsing, and variable substitution.
package attacks

import (
	"fmt"
	"time"
)

// Template represents a loaded attack template with metadata.
type Template struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	AttackType  string         `yaml:"attack_type"`
	Variables   []VariableSpec `yaml:"variables"`
	Tags        []string       `yaml:"tags,omitempty"`
	Body        string         `yaml:"-"` // The template body (not in frontmatter)
	Source      Source         `yaml:"-"` // Where this template came from
	SourcePath  string         `yaml:"-"` // File path if from file
}

// VariableSpec describes a template variable.
type VariableSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
	Default     string `yaml:"default,omitempty"`
}

// Source indicates where a template was loaded from.
type Source int

const (
	SourceBuiltin Source = iota
	SourceUser
)

func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "builtin"
	case SourceUser:
		return "user"
	default:
		return "unknown"
	}
}

// BuiltinVariables returns the built-in variables available in all templates.
func BuiltinVariables() map[string]string {
	now := time.Now()

	return map[string]string{
		"date": now.Format("2006-01-02"),
		"time": now.Format("15:04:05"),
	}
}

// Validate checks that all required variables are provided.
func (t *Template) Validate(vars map[string]string) error {
	for _, v := range t.Variables {
		if !v.Required {
			continue
		}
		if _, ok := vars[v.Name]; ok {
			continue
		}
		if v.Default != "" {
			continue
		}
		return fmt.Errorf("missing required variable: %s", v.Name)
	}
	return nil
}

// HasVariable checks if a variable is defined in the template.
func (t *Template) HasVariable(name string) bool {
	for _, v := range t.Variables {
		if v.Name == name {
			return true
		}
	}
	return false
}
