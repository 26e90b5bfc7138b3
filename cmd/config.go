package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/martinc1991/zod-prisma-types/compiler/gen"
)

// fileConfig is the YAML shape of the optional generator config file.
type fileConfig struct {
	InputTypePath string `yaml:"inputTypePath"`
	ClientPath    string `yaml:"clientPath"`
}

// loadOptions reads the config file (when given) and maps it to graph
// options. A missing path yields the generator defaults.
func loadOptions(path string) ([]gen.Option, error) {
	if path == "" {
		return nil, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(buf, &fc); err != nil {
		return nil, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	var opts []gen.Option
	if fc.InputTypePath != "" {
		opts = append(opts, gen.WithInputTypePath(fc.InputTypePath))
	}
	if fc.ClientPath != "" {
		opts = append(opts, gen.WithClientPath(fc.ClientPath))
	}
	return opts, nil
}
