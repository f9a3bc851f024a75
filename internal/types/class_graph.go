package types

// ClassNode is a class together with the file that defines it.
type ClassNode struct {
	Name string
	File string
}

// InheritanceEdge links a class to the base class it derives from.
type InheritanceEdge struct {
	Class string
	Base  string
}

// ClassGraph is the inheritance graph of an indexed schema directory.
type ClassGraph struct {
	Files []string
	Nodes []ClassNode
	Edges []InheritanceEdge
}
