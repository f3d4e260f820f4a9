package attacks

import (
	"strings"
	"testing"
)

func TestParseWithFrontmatter(t *testing.T) {
	content := `---
name: advprefix_custom
attack_type: advprefix
description: Custom prefix attack
variables:
  - name: goal
    description: Attack goal
    required: true
  - name: budget
    default: "256"
---
Goal: {{goal}}
Budget: {{budget}}`

	tmpl, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tmpl.Name != "advprefix_custom" {
		t.Errorf("Name = %q, want advprefix_custom", tmpl.Name)
	}
	if tmpl.AttackType != "advprefix" {
		t.Errorf("AttackType = %q, want advprefix", tmpl.AttackType)
	}
	if len(tmpl.Variables) != 2 {
		t.Fatalf("Variables = %d, want 2", len(tmpl.Variables))
	}
	if !tmpl.Variables[0].Required {
		t.Error("goal should be required")
	}
	if tmpl.Variables[1].Default != "256" {
		t.Errorf("budget default = %q, want 256", tmpl.Variables[1].Default)
	}
	if !strings.HasPrefix(tmpl.Body, "Goal:") {
		t.Errorf("Body = %q, want body after frontmatter", tmpl.Body)
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	tmpl, err := Parse("Just a body with {{goal}}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tmpl.Name != "" {
		t.Errorf("Name = %q, want empty", tmpl.Name)
	}
	if tmpl.Body != "Just a body with {{goal}}" {
		t.Errorf("Body = %q", tmpl.Body)
	}
}

func TestParseBadYAML(t *testing.T) {
	content := "---\nname: [unclosed\n---\nbody"
	if _, err := Parse(content); err == nil {
		t.Fatal("expected error for invalid frontmatter")
	}
}

func TestExecuteSubstitutesVariables(t *testing.T) {
	tmpl := &Template{
		Body: "Goal: {{goal}}, Channel: {{channel}}",
		Variables: []VariableSpec{
			{Name: "goal", Required: true},
			{Name: "channel", Default: "document"},
		},
	}

	out, err := tmpl.Execute(map[string]string{"goal": "exfiltrate data"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "Goal: exfiltrate data, Channel: document" {
		t.Errorf("Execute = %q", out)
	}
}

func TestExecuteMissingRequired(t *testing.T) {
	tmpl := &Template{
		Body:      "Goal: {{goal}}",
		Variables: []VariableSpec{{Name: "goal", Required: true}},
	}

	if _, err := tmpl.Execute(nil); err == nil {
		t.Fatal("expected error for missing required variable")
	}
}

func TestExecuteCallerOverridesDefault(t *testing.T) {
	tmpl := &Template{
		Body:      "{{channel}}",
		Variables: []VariableSpec{{Name: "channel", Default: "document"}},
	}

	out, err := tmpl.Execute(map[string]string{"channel": "url"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "url" {
		t.Errorf("Execute = %q, want url", out)
	}
}

func TestExecuteConditionals(t *testing.T) {
	tmpl := &Template{
		Body: "start{{#notes}} notes: {{notes}}{{/notes}} end",
	}

	out, err := tmpl.Execute(map[string]string{"notes": "watch rate limits"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "start notes: watch rate limits end" {
		t.Errorf("Execute with var = %q", out)
	}

	out, err = tmpl.Execute(nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "start end" {
		t.Errorf("Execute without var = %q", out)
	}
}

func TestExecuteLeavesUnknownVariables(t *testing.T) {
	tmpl := &Template{Body: "keep {{unknown}}"}

	out, err := tmpl.Execute(nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "keep {{unknown}}" {
		t.Errorf("Execute = %q", out)
	}
}

func TestExtractVariables(t *testing.T) {
	body := "{{goal}} and {{#notes}}{{notes}}{{/notes}} and {{goal}} again"
	vars := ExtractVariables(body)

	want := map[string]bool{"goal": true, "notes": true}
	if len(vars) != len(want) {
		t.Fatalf("ExtractVariables = %v, want 2 unique names", vars)
	}
	for _, v := range vars {
		if !want[v] {
			t.Errorf("unexpected variable %q", v)
		}
	}
}

func TestHasVariable(t *testing.T) {
	tmpl := &Template{Variables: []VariableSpec{{Name: "goal"}}}
	if !tmpl.HasVariable("goal") {
		t.Error("expected HasVariable(goal) = true")
	}
	if tmpl.HasVariable("other") {
		t.Error("expected HasVariable(other) = false")
	}
}
