package note

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// frontMatter is the optional YAML header of a note.
type frontMatter struct {
	Source    string `yaml:"source"`
	User      string `yaml:"user,omitempty"`
	Operation string `yaml:"operation"`
	Kind      string `yaml:"kind"`
	Period    string `yaml:"period,omitempty"`
	From      string `yaml:"from,omitempty"`
	To        string `yaml:"to,omitempty"`
	Created   string `yaml:"created"`
	Items     int    `yaml:"items"`
}

// render returns the header delimited by "---" lines.
func (fm frontMatter) render() (string, error) {
	out, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal front matter: %w", err)
	}
	return "---\n" + string(out) + "---\n", nil
}
