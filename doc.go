// Package vertexrank ranks the vertices of an undirected graph by
// centrality, one connected component at a time.
//
// What is vertexrank?
//
//	An in-memory toolkit that brings together:
//		• Core primitives: integer-labelled undirected graph, safe under R/W locks
//		• Loading: whitespace-separated edge lists with duplicate suppression
//		• Decomposition: connected components by iterative DFS
//		• Traversal: BFS distances with context and visit hooks
//		• Centrality: degree, closeness, betweenness (Brandes), Katz-style decay
//		• Ranking: deterministic top-k per component
//		• Orchestration: concurrent per-component runs, console report, CLI
//
// Packages:
//
//	core/        - Graph type and its thread-safe primitives
//	loader/      - edge-list reader (io.Reader or file)
//	components/  - connected component labelling and splitting
//	bfs/         - breadth-first search and distance maps
//	centrality/  - the four measures, Compute dispatch and Top ranking
//	builder/     - deterministic fixtures: Path, Cycle, Star, Complete, Isolated
//	converters/  - core.Graph <-> gonum graph adapters
//	config/      - Viper-backed settings and zerolog logger factory
//	pipeline/    - load → split → compute on a bounded worker pool
//	report/      - plain-text report writer
//	cmd/vertexrank - command-line entry point
//
// Quick ASCII example:
//
//	    1───2      7───8
//	    │   │
//	    4───3
//
//	is two components; every vertex of the square scores the same degree,
//	closeness and betweenness, so the ranking falls back to ascending labels.
//
//	go install github.com/katalvlaran/vertexrank/cmd/vertexrank@latest
//	vertexrank edges.txt betweenness
package vertexrank
