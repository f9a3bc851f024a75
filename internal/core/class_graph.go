package core

import (
	"mofprune/internal/ports"
	"mofprune/internal/types"
)

// BuildClassGraph lists every class with its defining file and every
// inheritance edge. A class defined by several files is attributed to the
// file the repository resolves it to.
func BuildClassGraph(repository ports.MofRepositoryPort) types.ClassGraph {
	var graph types.ClassGraph
	seenClass := map[string]struct{}{}
	seenEdge := map[types.InheritanceEdge]struct{}{}
	for _, file := range repository.AllMofFiles() {
		graph.Files = append(graph.Files, file.Path)
		for _, decl := range file.Declarations {
			if _, ok := seenClass[decl.Name]; !ok {
				seenClass[decl.Name] = struct{}{}
				owner, _ := repository.FileDefiningClass(decl.Name)
				graph.Nodes = append(graph.Nodes, types.ClassNode{Name: decl.Name, File: owner.Path})
			}
			if decl.Base == "" {
				continue
			}
			edge := types.InheritanceEdge{Class: decl.Name, Base: decl.Base}
			if _, ok := seenEdge[edge]; ok {
				continue
			}
			seenEdge[edge] = struct{}{}
			graph.Edges = append(graph.Edges, edge)
		}
	}
	return graph
}
