// Package loader builds a core.Graph from a whitespace-separated edge list:
// a stream of integer tokens read two at a time as (u, v) pairs.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/vertexrank/core"
)

// Sentinel errors for graph ingestion.
var (
	// ErrFileAccess is returned when the edge-list source cannot be opened or read.
	ErrFileAccess = errors.New("loader: cannot access edge list")

	// ErrParse is returned for a token that is not an integer, or for a final
	// token left without a partner.
	ErrParse = errors.New("loader: malformed edge list")
)

// ReadPairs scans r for integer tokens and groups them into edge pairs.
// Pairs may span lines; any whitespace separates tokens.
func ReadPairs(r io.Reader) ([][2]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		pairs   [][2]int
		pending int
		half    bool
		token   int
	)
	for sc.Scan() {
		token++
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q is not an integer", ErrParse, token, sc.Text())
		}
		if !half {
			pending, half = n, true
			continue
		}
		pairs = append(pairs, [2]int{pending, n})
		half = false
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if half {
		return nil, fmt.Errorf("%w: vertex %d (token %d) has no partner", ErrParse, pending, token)
	}

	return pairs, nil
}

// UniqueVertices returns the sorted distinct labels of the edge list in r.
func UniqueVertices(r io.Reader) ([]int, error) {
	pairs, err := ReadPairs(r)
	if err != nil {
		return nil, err
	}

	return core.UniqueVertices(pairs), nil
}

// Read builds a Graph from the edge list in r. A pair (u, v) is skipped when
// v is already listed under u, so repeating a pair does not create a
// parallel edge. The declared vertex count is the number of unique labels.
// On error no partial graph is returned.
func Read(r io.Reader) (*core.Graph, error) {
	pairs, err := ReadPairs(r)
	if err != nil {
		return nil, err
	}

	return core.FromPairs(pairs), nil
}

// ReadFile opens path and builds a Graph from its contents (see Read).
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
