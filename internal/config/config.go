package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Patterns   []string `yaml:"patterns,omitempty"`
	IgnoreDirs []string `yaml:"ignoredirs,omitempty"`
	Recursive  *bool    `yaml:"recursive,omitempty"`
	Workers    int      `yaml:"workers,omitempty"`
	Format     string   `yaml:"format,omitempty"`
}

const EnvConfFile = "TEXTMEMO_CONF"

func boolPtr(b bool) *bool { return &b }

func DefaultConfig() Config {
	return Config{
		Patterns:   []string{"*.txt"},
		IgnoreDirs: []string{".git", ".idea", "node_modules", "dist", "target", "__pycache__", "build", ".venv", "venv"},
		Recursive:  boolPtr(true),
		Workers:    0,
		Format:     "yaml",
	}
}

// GetConfig reads TEXTMEMO_CONF (or config.yaml) over the defaults.
// Missing or malformed files leave the defaults untouched.
func GetConfig() Config {
	conffilename, exists := os.LookupEnv(EnvConfFile)
	if !exists { conffilename = "config.yaml" }
	return ReadConfig(conffilename)
}

func ReadConfig(conffilename string) Config {
	config := DefaultConfig()

	data, err := os.ReadFile(conffilename)
	if err != nil { return config }

	var yamlConfig Config
	err = yaml.Unmarshal(data, &yamlConfig)
	if err != nil { return config }

	// read yaml config and override
	if len(yamlConfig.Patterns) > 0 { config.Patterns = yamlConfig.Patterns }
	if yamlConfig.IgnoreDirs != nil { config.IgnoreDirs = yamlConfig.IgnoreDirs }
	if yamlConfig.Recursive != nil { config.Recursive = yamlConfig.Recursive }
	if yamlConfig.Workers > 0 { config.Workers = yamlConfig.Workers }
	if yamlConfig.Format != "" { config.Format = yamlConfig.Format }

	return config
}

func (c Config) IsRecursive() bool { return c.Recursive == nil || *c.Recursive }
