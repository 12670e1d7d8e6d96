// Package components defines the errors and result type for connected
// component decomposition.
package components

import "errors"

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Split or Label.
	ErrGraphNil = errors.New("components: graph is nil")
)

// Labeling is the outcome of component labelling.
type Labeling struct {
	// ID maps each vertex label to its component id (0-based).
	ID map[int]int

	// Count is the number of components found.
	Count int

	// Members lists each component's labels in ascending order, indexed by id.
	Members [][]int
}
