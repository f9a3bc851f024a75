package types

// ClassIndexFile is the persisted form of an indexed schema directory.
type ClassIndexFile struct {
	SchemaDir string            `yaml:"schema_dir"`
	Files     []ClassIndexEntry `yaml:"files"`
}

type ClassIndexEntry struct {
	Path    string            `yaml:"path"`
	Classes []ClassIndexClass `yaml:"classes,omitempty"`
	Depends []string          `yaml:"depends,omitempty"`
}

type ClassIndexClass struct {
	Name string `yaml:"name"`
	Base string `yaml:"base,omitempty"`
}
