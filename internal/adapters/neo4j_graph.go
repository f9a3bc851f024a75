package adapters

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"

	"mofprune/internal/ports"
	"mofprune/internal/types"
)

// Neo4jGraphAdapter loads a class inheritance graph into Neo4j using
// batched UNWIND queries.
type Neo4jGraphAdapter struct {
	driver neo4j.DriverWithContext
}

// NewNeo4jGraphAdapter connects to Neo4j and verifies the connection.
func NewNeo4jGraphAdapter(ctx context.Context, uri string, user string, password string) (ports.GraphExporterPort, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to create neo4j driver").
			WithCause(err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("neo4j is not reachable").
			WithCause(err)
	}
	return &Neo4jGraphAdapter{driver: driver}, nil
}

func (a *Neo4jGraphAdapter) Close(ctx context.Context) error {
	return a.driver.Close(ctx)
}

func (a *Neo4jGraphAdapter) Clean(ctx context.Context) error {
	queries := []string{
		"MATCH ()-[r:INHERITS]->() DELETE r",
		"MATCH ()-[r:DEFINED_IN]->() DELETE r",
		"MATCH (n:MofClass) DETACH DELETE n",
		"MATCH (n:MofFile) DETACH DELETE n",
	}
	for _, query := range queries {
		if err := a.run(ctx, query, nil); err != nil {
			return err
		}
	}
	return nil
}

func (a *Neo4jGraphAdapter) Export(ctx context.Context, graph types.ClassGraph) error {
	indexes := []string{
		"CREATE INDEX mof_class_name IF NOT EXISTS FOR (n:MofClass) ON (n.name)",
		"CREATE INDEX mof_file_path IF NOT EXISTS FOR (n:MofFile) ON (n.path)",
	}
	for _, query := range indexes {
		if err := a.run(ctx, query, nil); err != nil {
			return err
		}
	}

	params := graphParams(graph)
	log.Ctx(ctx).Info().
		Int("files", len(graph.Files)).
		Int("classes", len(graph.Nodes)).
		Int("edges", len(graph.Edges)).
		Msg("exporting class graph")
	if err := a.run(ctx,
		`UNWIND $batch AS row
		 MERGE (f:MofFile {path: row.path})`,
		map[string]any{"batch": params.files},
	); err != nil {
		return err
	}
	if err := a.run(ctx,
		`UNWIND $batch AS row
		 MERGE (c:MofClass {name: row.name})
		 WITH c, row
		 MATCH (f:MofFile {path: row.file})
		 MERGE (c)-[:DEFINED_IN]->(f)`,
		map[string]any{"batch": params.nodes},
	); err != nil {
		return err
	}
	return a.run(ctx,
		`UNWIND $batch AS row
		 MERGE (c:MofClass {name: row.class})
		 MERGE (b:MofClass {name: row.base})
		 MERGE (c)-[:INHERITS]->(b)`,
		map[string]any{"batch": params.edges},
	)
}

func (a *Neo4jGraphAdapter) run(ctx context.Context, query string, params map[string]any) error {
	if _, err := neo4j.ExecuteQuery(ctx, a.driver, query, params, neo4j.EagerResultTransformer); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("neo4j query failed").
			WithCause(err)
	}
	return nil
}

type graphBatches struct {
	files []map[string]any
	nodes []map[string]any
	edges []map[string]any
}

func graphParams(graph types.ClassGraph) graphBatches {
	batches := graphBatches{
		files: make([]map[string]any, 0, len(graph.Files)),
		nodes: make([]map[string]any, 0, len(graph.Nodes)),
		edges: make([]map[string]any, 0, len(graph.Edges)),
	}
	for _, path := range graph.Files {
		batches.files = append(batches.files, map[string]any{"path": path})
	}
	for _, node := range graph.Nodes {
		batches.nodes = append(batches.nodes, map[string]any{"name": node.Name, "file": node.File})
	}
	for _, edge := range graph.Edges {
		batches.edges = append(batches.edges, map[string]any{"class": edge.Class, "base": edge.Base})
	}
	return batches
}

var _ ports.GraphExporterFactory = NewNeo4jGraphAdapter
