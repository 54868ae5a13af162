package enricher

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultSystemPrompt instructs the model on its role.
const defaultSystemPrompt = "You are a helpful assistant that researches loyalty programs."

// defaultUserTemplate is the fixed instruction template; %s is the competitor name.
const defaultUserTemplate = `Research and provide a concise summary of %s's loyalty program.
Focus on key features like:
- Program name
- How points are earned
- Main benefits and rewards
- Special features

Provide this with 3 key bullet points and then a single, well-formatted paragraph.`

// namePlaceholder marks where the competitor name goes in an override template.
const namePlaceholder = "{{name}}"

// PromptTemplate holds the system and user prompt templates used for
// summary generation. The user template contains a {{name}} placeholder.
type PromptTemplate struct {
	system string
	user   string
}

// DefaultPromptTemplate returns the built-in loyalty-program template.
func DefaultPromptTemplate() PromptTemplate {
	return PromptTemplate{
		system: defaultSystemPrompt,
		user:   strings.ReplaceAll(defaultUserTemplate, "%s", namePlaceholder),
	}
}

// LoadPromptTemplate reads a YAML template override from path. Missing keys
// fall back to the built-in template.
//
// File format:
//
//	system: You are ...
//	user: |
//	  Summarize {{name}}'s loyalty program ...
func LoadPromptTemplate(path string) (PromptTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PromptTemplate{}, fmt.Errorf("read prompt template: %w", err)
	}

	var raw struct {
		System string `yaml:"system"`
		User   string `yaml:"user"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return PromptTemplate{}, fmt.Errorf("parse prompt template: %w", err)
	}

	tpl := DefaultPromptTemplate()
	if s := strings.TrimSpace(raw.System); s != "" {
		tpl.system = s
	}
	if u := strings.TrimSpace(raw.User); u != "" {
		if !strings.Contains(u, namePlaceholder) {
			return PromptTemplate{}, fmt.Errorf("prompt template %s: user template missing %s placeholder", path, namePlaceholder)
		}
		tpl.user = u
	}
	return tpl, nil
}

// System returns the system prompt.
func (t PromptTemplate) System() string { return t.system }

// Render returns the user prompt for the given competitor name.
func (t PromptTemplate) Render(name string) string {
	return strings.ReplaceAll(t.user, namePlaceholder, name)
}
