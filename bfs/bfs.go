// Package bfs computes single-source shortest-path hop distances over a
// core.Graph by breadth-first search.
//
// It is the distance engine shared by closeness, Katz and (in spirit)
// betweenness centrality.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/vertexrank/core"
)

// queueItem pairs a vertex label with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	start int
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ctx.Err() on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// Every vertex starts Unreached.
	vertices := g.Vertices()
	n := len(vertices)
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		start: start,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order: make([]int, 0, n),
			Depth: make(map[int]int, n),
		},
	}
	for _, v := range vertices {
		w.res.Depth[v] = Unreached
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// Distances returns the hop count from source to every vertex of g.
// Vertices in other components keep the Unreached sentinel.
func Distances(g *core.Graph, source int, opts ...Option) (map[int]int, error) {
	res, err := BFS(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// enqueue records v's depth and adds it to the queue.
func (w *walker) enqueue(v, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors walks item's neighbor list in stored order and enqueues
// each vertex still at Unreached. The start vertex is skipped explicitly even
// though its depth of 0 would already keep it out of the queue.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.v, err)
	}
	for _, nbr := range neighbors {
		if nbr == w.start {
			continue
		}
		if d, ok := w.res.Depth[nbr]; !ok || d == Unreached {
			w.enqueue(nbr, item.depth+1)
		}
	}
	return nil
}
