package app

import "mofprune/internal/types"

type PruneRequest struct {
	SchemaDir   string
	ClassIndex  string
	Roots       []string
	Output      string
	Format      string
	ForwardRefs string
	Workers     int
	StageDir    string
	IncludeName string
}

type PruneResult struct {
	Required    []string
	Lines       []string
	Unresolved  []string
	OutputPath  string
	Staged      []string
	IncludePath string
}

type IndexRequest struct {
	SchemaDir   string
	Output      string
	ForwardRefs string
	Workers     int
}

type IndexResult struct {
	OutputPath string
	FileCount  int
	ClassCount int
}

type InspectRequest struct {
	Files       []string
	ForwardRefs string
}

type InspectResult struct {
	Files []types.MofFile
}

type GraphExportRequest struct {
	SchemaDir   string
	ClassIndex  string
	ForwardRefs string
	Workers     int
	URI         string
	User        string
	Password    string
	Clean       bool
}

type GraphExportResult struct {
	FileCount  int
	ClassCount int
	EdgeCount  int
}
