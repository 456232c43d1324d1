package config

// SettingsFile represents the structure of the fanout.yaml configuration file.
type SettingsFile struct {
	Version                string   `yaml:"version"`
	Capacity               int      `yaml:"capacity"`
	AlwaysBuildAllProjects bool     `yaml:"alwaysBuildAllProjects"`
	Projects               []string `yaml:"projects"`
	BuildAllPatterns       []string `yaml:"buildAllPatterns"`
	Ignore                 []string `yaml:"ignore"`
	Manifest               string   `yaml:"manifest"`
}
