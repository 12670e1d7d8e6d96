package loader_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vertexrank/loader"
)

// ExampleRead builds a graph from an in-memory edge list; the repeated
// pair "1 2" is stored once.
func ExampleRead() {
	g, err := loader.Read(strings.NewReader("1 2\n2 3\n1 2\n40 41\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices(), g.VertexCount(), g.EdgeCount())

	// Output:
	// [1 2 3 40 41] 5 3
}
