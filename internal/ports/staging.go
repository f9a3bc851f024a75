package ports

// StagingPort copies required schema files into a staging directory,
// keeping their layout relative to the schema directory.
type StagingPort interface {
	StageFiles(schemaDir string, files []string, stageDir string) ([]string, error)
}
