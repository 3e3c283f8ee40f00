package templates

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config controls template engine behavior. It is the key/value
// configuration surface for the resolution collaborator: where template
// files are loaded from, whether parsed templates are cached, and which
// template name a generation pass uses.
type Config struct {
	ResourcePath string `yaml:"resource_path"`
	Cache        bool   `yaml:"cache"`
	Template     string `yaml:"template"`
}

// DefaultConfig returns the engine defaults: builtin templates only,
// caching enabled, the standard entity template.
func DefaultConfig() Config {
	return Config{
		Cache:    true,
		Template: DefaultTemplateName,
	}
}

// LoadConfig reads engine configuration from a YAML file. An empty path
// yields the defaults; keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read engine config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse engine config %s: %w", path, err)
	}

	if config.Template == "" {
		config.Template = DefaultTemplateName
	}

	return config, nil
}
