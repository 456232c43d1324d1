package discovery

// Manifest represents a per-project marker file. The file's directory is the
// project directory; name defaults to that directory's repo-relative path.
type Manifest struct {
	Name      string   `yaml:"name"`
	DependsOn []string `yaml:"dependsOn"`
}
