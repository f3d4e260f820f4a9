package attacks

import (
	"os"
	"path/filepath"
	"strings"
)

// Loader finds and loads attack templates from template directories plus
// the builtin set.
type Loader struct {
	dirs []string
}

// NewLoader creates a loader over the given template directories, searched
// in order. Earlier directories shadow later ones and builtins.
func NewLoader(dirs ...string) *Loader {
	return &Loader{dirs: dirs}
}

// Load finds and loads a template by name.
// Search order: template dirs (in order) > builtin.
func (l *Loader) Load(name string) (*Template, error) {
	name = strings.TrimSuffix(name, ".md")

	for _, dir := range l.dirs {
		tmpl, err := l.loadFromDir(dir, name)
		if err == nil {
			return tmpl, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if tmpl := GetBuiltin(name); tmpl != nil {
		return tmpl, nil
	}

	return nil, &NotFoundError{Name: name}
}

func (l *Loader) loadFromDir(dir, name string) (*Template, error) {
	path := filepath.Join(dir, name+".md")

	// Reject names that escape the template dir
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, os.ErrNotExist
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tmpl, err := Parse(string(content))
	if err != nil {
		return nil, err
	}

	if tmpl.Name == "" {
		tmpl.Name = name
	}
	tmpl.Source = SourceUser
	tmpl.SourcePath = path

	return tmpl, nil
}

// List returns all templates visible to the loader, deduplicated by name.
// Directory templates shadow builtins of the same name.
func (l *Loader) List() ([]*Template, error) {
	seen := make(map[string]bool)
	var templates []*Template

	for _, dir := range l.dirs {
		tmpls, err := l.listFromDir(dir)
		if err != nil {
			continue
		}
		for _, t := range tmpls {
			if !seen[t.Name] {
				seen[t.Name] = true
				templates = append(templates, t)
			}
		}
	}

	for _, t := range ListBuiltins() {
		if !seen[t.Name] {
			seen[t.Name] = true
			templates = append(templates, t)
		}
	}

	return templates, nil
}

func (l *Loader) listFromDir(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".md")
		path := filepath.Join(dir, entry.Name())

		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		tmpl, err := Parse(string(content))
		if err != nil {
			continue
		}

		if tmpl.Name == "" {
			tmpl.Name = name
		}
		tmpl.Source = SourceUser
		tmpl.SourcePath = path

		templates = append(templates, tmpl)
	}

	return templates, nil
}

// NotFoundError indicates a template was not found.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "attack template not found: " + e.Name
}
