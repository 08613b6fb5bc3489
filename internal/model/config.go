package model

// DefaultConfigPath is looked up in the working directory when no config path
// is given.
const DefaultConfigPath Path = ".fromback.yaml"

// Config holds settings read from a config file. Zero fields mean "not set".
type Config struct {
	Unit     Unit              `yaml:"unit,omitempty"`
	Parallel int               `yaml:"parallel,omitempty"`
	Strict   bool              `yaml:"strict,omitempty"`
	Aliases  map[string]string `yaml:"aliases,omitempty"`
}
