package attacks

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse parses an attack template from markdown content with YAML frontmatter.
// Format:
//
//	---
//	name: advprefix_default
//	attack_type: advprefix
//	description: Prefix-generation attack against a chat endpoint
//	variables:
//	  - name: goal
//	    description: Attack goal sentence
//	    required: true
//	---
//	The template body with {{variable}} placeholders.
func Parse(content string) (*Template, error) {
	tmpl := &Template{}

	if strings.HasPrefix(content, "---") {
		parts := strings.SplitN(content, "---", 3)
		if len(parts) >= 3 {
			if err := yaml.Unmarshal([]byte(parts[1]), tmpl); err != nil {
				return nil, err
			}
			tmpl.Body = strings.TrimSpace(parts[2])
		} else {
			// No valid frontmatter, treat entire content as body
			tmpl.Body = strings.TrimSpace(content)
		}
	} else {
		// No frontmatter, entire content is body
		tmpl.Body = strings.TrimSpace(content)
	}

	return tmpl, nil
}

// Execute substitutes variables in the template body.
// Precedence: defaults < builtins < caller vars.
func (t *Template) Execute(vars map[string]string) (string, error) {
	if err := t.Validate(vars); err != nil {
		return "", err
	}

	merged := make(map[string]string)

	for _, v := range t.Variables {
		if v.Default != "" {
			merged[v.Name] = v.Default
		}
	}

	for k, v := range BuiltinVariables() {
		merged[k] = v
	}

	for k, v := range vars {
		merged[k] = v
	}

	result := t.Body

	// Expand conditionals {{#var}}...{{/var}} before simple substitution
	result = expandConditionals(result, merged)
	result = substituteVariables(result, merged)

	return result, nil
}

// substituteVariables replaces {{variable}} placeholders with values.
func substituteVariables(body string, vars map[string]string) string {
	re := regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*)\}\}`)

	return re.ReplaceAllStringFunc(body, func(match string) string {
		name := match[2 : len(match)-2]

		if val, ok := vars[name]; ok {
			return val
		}
		return match // Leave unmatched variables as-is
	})
}

// expandConditionals handles {{#variable}}...{{/variable}} blocks.
// If the variable is set and non-empty, the block content is included.
// Otherwise, the entire block is removed.
func expandConditionals(body string, vars map[string]string) string {
	openRe := regexp.MustCompile(`\{\{#([a-zA-Z_][a-zA-Z0-9_]*)\}\}`)

	// Process until no more matches (handles nested conditionals)
	for {
		matches := openRe.FindStringSubmatchIndex(body)
		if matches == nil {
			break
		}

		varName := body[matches[2]:matches[3]]
		openStart := matches[0]
		openEnd := matches[1]

		closeTag := "{{/" + varName + "}}"
		closeStart := strings.Index(body[openEnd:], closeTag)
		if closeStart == -1 {
			// No matching close tag, leave as-is
			break
		}
		closeStart += openEnd
		closeEnd := closeStart + len(closeTag)

		content := body[openEnd:closeStart]

		var replacement string
		if val, ok := vars[varName]; ok && val != "" {
			replacement = content
		}

		body = body[:openStart] + replacement + body[closeEnd:]
	}

	return body
}

// ExtractVariables finds all variable references in a template body.
// Returns both simple variables ({{var}}) and conditional variables ({{#var}}).
func ExtractVariables(body string) []string {
	seen := make(map[string]bool)
	var vars []string

	simpleRe := regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*)\}\}`)
	for _, m := range simpleRe.FindAllStringSubmatch(body, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			vars = append(vars, m[1])
		}
	}

	condRe := regexp.MustCompile(`\{\{#([a-zA-Z_][a-zA-Z0-9_]*)\}\}`)
	for _, m := range condRe.FindAllStringSubmatch(body, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			vars = append(vars, m[1])
		}
	}

	return vars
}
